package cmd

import (
	"deliverytrack/internal/adapters/out/jwtauth"
	"deliverytrack/internal/adapters/out/postgres"
	"deliverytrack/internal/adapters/out/proofstore"
	"deliverytrack/internal/core/application/usecases/commands"
	"deliverytrack/internal/core/application/usecases/queries"
	"deliverytrack/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB       *gorm.DB
	uowFactory   postgres.GormUnitOfWorkFactory
	proofStore   ports.ProofStore
	authProvider ports.AuthProvider
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) (CompositionRoot, error) {
	proofStore, err := proofstore.NewDiskProofStore(configs.ProofStoreDir, configs.ProofBaseURL)
	if err != nil {
		return CompositionRoot{}, err
	}

	authProvider, err := jwtauth.NewProvider([]byte(configs.JWTSecret))
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:       gormDB,
		uowFactory:   *postgres.NewGormUnitOfWorkFactory(gormDB),
		proofStore:   proofStore,
		authProvider: authProvider,
	}, nil
}

func (c *CompositionRoot) CreateTransitionOrderCommandHandler() commands.TransitionOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateSubmitProofCommandHandler() commands.SubmitProofCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitProofCommandHandler(f, c.proofStore)
}

func (c *CompositionRoot) CreateGetAssignedOrdersQueryHandler() queries.GetAssignedOrdersQueryHandler {
	return queries.NewGetAssignedOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStalledOrdersQueryHandler() queries.GetStalledOrdersQueryHandler {
	return queries.NewGetStalledOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) AuthProvider() ports.AuthProvider {
	return c.authProvider
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
