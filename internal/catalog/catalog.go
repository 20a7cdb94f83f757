// Package catalog assembles the repositories, use cases and dispatch table
// shared by the HTTP front end and the gRPC worker.
package catalog

import (
	"github.com/fekuna/omnipos-catalog-service/internal/database/postgres"
	"github.com/fekuna/omnipos-catalog-service/internal/location"
	locRepo "github.com/fekuna/omnipos-catalog-service/internal/location/repository"
	locUC "github.com/fekuna/omnipos-catalog-service/internal/location/usecase"
	"github.com/fekuna/omnipos-catalog-service/internal/logger"
	"github.com/fekuna/omnipos-catalog-service/internal/product"
	prodRepo "github.com/fekuna/omnipos-catalog-service/internal/product/repository"
	prodUC "github.com/fekuna/omnipos-catalog-service/internal/product/usecase"
	"github.com/fekuna/omnipos-catalog-service/internal/proxy"
	"github.com/fekuna/omnipos-catalog-service/internal/uom"
	uomRepo "github.com/fekuna/omnipos-catalog-service/internal/uom/repository"
	uomUC "github.com/fekuna/omnipos-catalog-service/internal/uom/usecase"
	"github.com/fekuna/omnipos-catalog-service/internal/variant"
	varRepo "github.com/fekuna/omnipos-catalog-service/internal/variant/repository"
	varUC "github.com/fekuna/omnipos-catalog-service/internal/variant/usecase"
)

type Repositories struct {
	Products  product.Repository
	Variants  variant.Repository
	UOMs      uom.Repository
	Locations location.Repository
}

func PostgresRepositories(pool *postgres.Pool) Repositories {
	return Repositories{
		Products:  prodRepo.NewPGRepository(pool),
		Variants:  varRepo.NewPGRepository(pool),
		UOMs:      uomRepo.NewPGRepository(pool),
		Locations: locRepo.NewPGRepository(pool),
	}
}

func MemoryRepositories() Repositories {
	return Repositories{
		Products:  prodRepo.NewMemoryRepository(),
		Variants:  varRepo.NewMemoryRepository(),
		UOMs:      uomRepo.NewMemoryRepository(),
		Locations: locRepo.NewMemoryRepository(),
	}
}

// NewRegistry builds the operation table once, at startup.
func NewRegistry(repos Repositories, log logger.ZapLogger) (*proxy.Registry, error) {
	return proxy.NewRegistry(log,
		product.Routes(prodUC.NewProductUseCase(repos.Products, log)),
		variant.Routes(varUC.NewVariantUseCase(repos.Variants, log)),
		uom.Routes(uomUC.NewUOMUseCase(repos.UOMs, log)),
		location.Routes(locUC.NewLocationUseCase(repos.Locations, log)),
	)
}

// Clients are the typed call sites handlers use. They behave the same over
// either transport.
type Clients struct {
	Products  *product.Client
	Variants  *variant.Client
	UOMs      *uom.Client
	Locations *location.Client
}

func NewClients(p *proxy.Proxy) Clients {
	return Clients{
		Products:  product.NewClient(p),
		Variants:  variant.NewClient(p),
		UOMs:      uom.NewClient(p),
		Locations: location.NewClient(p),
	}
}
