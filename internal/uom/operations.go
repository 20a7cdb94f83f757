package uom

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/proxy"
	"github.com/fekuna/omnipos-catalog-service/internal/query"
	"github.com/fekuna/omnipos-catalog-service/internal/uom/dto"
)

const (
	OpList   proxy.Operation = "uom.list"
	OpGet    proxy.Operation = "uom.get"
	OpCreate proxy.Operation = "uom.create"
	OpUpdate proxy.Operation = "uom.update"
	OpDelete proxy.Operation = "uom.delete"

	DefaultSort = "code,asc"
)

func Routes(uc UseCase) []proxy.Route {
	return []proxy.Route{
		proxy.Handle(OpList, uc.ListUOMs),
		proxy.Handle(OpGet, func(ctx context.Context, req dto.UOMID) (*model.UnitOfMeasure, error) {
			return uc.GetUOM(ctx, req.UOMID)
		}),
		proxy.Handle(OpCreate, uc.CreateUOM),
		proxy.Handle(OpUpdate, uc.UpdateUOM),
		proxy.Handle(OpDelete, func(ctx context.Context, req dto.UOMID) (proxy.Empty, error) {
			return proxy.Empty{}, uc.DeleteUOM(ctx, req.UOMID)
		}),
	}
}

type Client struct {
	proxy *proxy.Proxy
}

func NewClient(p *proxy.Proxy) *Client {
	return &Client{proxy: p}
}

func (c *Client) List(ctx context.Context, f *dto.UOMFilters) *proxy.Future[query.Page[model.UnitOfMeasure]] {
	return proxy.Invoke[query.Page[model.UnitOfMeasure]](ctx, c.proxy, OpList, f)
}

func (c *Client) Get(ctx context.Context, id string) *proxy.Future[*model.UnitOfMeasure] {
	return proxy.Invoke[*model.UnitOfMeasure](ctx, c.proxy, OpGet, dto.UOMID{UOMID: id})
}

func (c *Client) Create(ctx context.Context, in *dto.CreateUOMInput) *proxy.Future[*model.UnitOfMeasure] {
	return proxy.Invoke[*model.UnitOfMeasure](ctx, c.proxy, OpCreate, in)
}

func (c *Client) Update(ctx context.Context, in *dto.UpdateUOMInput) *proxy.Future[*model.UnitOfMeasure] {
	return proxy.Invoke[*model.UnitOfMeasure](ctx, c.proxy, OpUpdate, in)
}

func (c *Client) Delete(ctx context.Context, id string) *proxy.Future[proxy.Empty] {
	return proxy.Invoke[proxy.Empty](ctx, c.proxy, OpDelete, dto.UOMID{UOMID: id})
}
