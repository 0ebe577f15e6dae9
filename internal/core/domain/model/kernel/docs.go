// Package kernel contains shared value objects used across the domain model.
//
// Value objects in this package are immutable, validated at construction, and
// safe for concurrent use. They carry no behavior beyond what their value
// semantics require.
package kernel
