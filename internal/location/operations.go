package location

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/location/dto"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/proxy"
	"github.com/fekuna/omnipos-catalog-service/internal/query"
)

const (
	OpList      proxy.Operation = "location.list"
	OpGet       proxy.Operation = "location.get"
	OpGetByCode proxy.Operation = "location.getByCode"
	OpCreate    proxy.Operation = "location.create"
	OpUpdate    proxy.Operation = "location.update"
	OpDelete    proxy.Operation = "location.delete"

	DefaultSort = "code,asc"
)

func Routes(uc UseCase) []proxy.Route {
	return []proxy.Route{
		proxy.Handle(OpList, uc.ListLocations),
		proxy.Handle(OpGet, func(ctx context.Context, req dto.LocationID) (*model.Location, error) {
			return uc.GetLocation(ctx, req.LocationID)
		}),
		proxy.Handle(OpGetByCode, func(ctx context.Context, req dto.LocationCode) (*model.Location, error) {
			return uc.GetLocationByCode(ctx, req.Code)
		}),
		proxy.Handle(OpCreate, uc.CreateLocation),
		proxy.Handle(OpUpdate, uc.UpdateLocation),
		proxy.Handle(OpDelete, func(ctx context.Context, req dto.LocationID) (proxy.Empty, error) {
			return proxy.Empty{}, uc.DeleteLocation(ctx, req.LocationID)
		}),
	}
}

type Client struct {
	proxy *proxy.Proxy
}

func NewClient(p *proxy.Proxy) *Client {
	return &Client{proxy: p}
}

func (c *Client) List(ctx context.Context, f *dto.LocationFilters) *proxy.Future[query.Page[model.Location]] {
	return proxy.Invoke[query.Page[model.Location]](ctx, c.proxy, OpList, f)
}

func (c *Client) Get(ctx context.Context, id string) *proxy.Future[*model.Location] {
	return proxy.Invoke[*model.Location](ctx, c.proxy, OpGet, dto.LocationID{LocationID: id})
}

func (c *Client) GetByCode(ctx context.Context, code string) *proxy.Future[*model.Location] {
	return proxy.Invoke[*model.Location](ctx, c.proxy, OpGetByCode, dto.LocationCode{Code: code})
}

func (c *Client) Create(ctx context.Context, in *dto.CreateLocationInput) *proxy.Future[*model.Location] {
	return proxy.Invoke[*model.Location](ctx, c.proxy, OpCreate, in)
}

func (c *Client) Update(ctx context.Context, in *dto.UpdateLocationInput) *proxy.Future[*model.Location] {
	return proxy.Invoke[*model.Location](ctx, c.proxy, OpUpdate, in)
}

func (c *Client) Delete(ctx context.Context, id string) *proxy.Future[proxy.Empty] {
	return proxy.Invoke[proxy.Empty](ctx, c.proxy, OpDelete, dto.LocationID{LocationID: id})
}
