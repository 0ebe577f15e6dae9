package ports

import "context"

// ProofStore stores proof-of-delivery images and returns a retrievable URL.
//
// Store may be slow; callers must not hold any order lock while it runs. A
// failed store leaves nothing to clean up on the order side: the record is
// only touched after the store confirms success.
type ProofStore interface {
	Store(ctx context.Context, image []byte) (string, error)
}
