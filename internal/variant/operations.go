package variant

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/proxy"
	"github.com/fekuna/omnipos-catalog-service/internal/query"
	"github.com/fekuna/omnipos-catalog-service/internal/variant/dto"
)

const (
	OpList   proxy.Operation = "variant.list"
	OpGet    proxy.Operation = "variant.get"
	OpCreate proxy.Operation = "variant.create"
	OpUpdate proxy.Operation = "variant.update"
	OpDelete proxy.Operation = "variant.delete"

	DefaultSort = "sku,asc"
)

func Routes(uc UseCase) []proxy.Route {
	return []proxy.Route{
		proxy.Handle(OpList, uc.ListVariants),
		proxy.Handle(OpGet, uc.GetVariant),
		proxy.Handle(OpCreate, uc.CreateVariant),
		proxy.Handle(OpUpdate, uc.UpdateVariant),
		proxy.Handle(OpDelete, func(ctx context.Context, ref dto.VariantRef) (proxy.Empty, error) {
			return proxy.Empty{}, uc.DeleteVariant(ctx, ref)
		}),
	}
}

type Client struct {
	proxy *proxy.Proxy
}

func NewClient(p *proxy.Proxy) *Client {
	return &Client{proxy: p}
}

func (c *Client) List(ctx context.Context, f *dto.VariantFilters) *proxy.Future[query.Page[model.ProductVariant]] {
	return proxy.Invoke[query.Page[model.ProductVariant]](ctx, c.proxy, OpList, f)
}

func (c *Client) Get(ctx context.Context, ref dto.VariantRef) *proxy.Future[*model.ProductVariant] {
	return proxy.Invoke[*model.ProductVariant](ctx, c.proxy, OpGet, ref)
}

func (c *Client) Create(ctx context.Context, in *dto.CreateVariantInput) *proxy.Future[*model.ProductVariant] {
	return proxy.Invoke[*model.ProductVariant](ctx, c.proxy, OpCreate, in)
}

func (c *Client) Update(ctx context.Context, in *dto.UpdateVariantInput) *proxy.Future[*model.ProductVariant] {
	return proxy.Invoke[*model.ProductVariant](ctx, c.proxy, OpUpdate, in)
}

func (c *Client) Delete(ctx context.Context, ref dto.VariantRef) *proxy.Future[proxy.Empty] {
	return proxy.Invoke[proxy.Empty](ctx, c.proxy, OpDelete, ref)
}
