package product

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/product/dto"
	"github.com/fekuna/omnipos-catalog-service/internal/proxy"
	"github.com/fekuna/omnipos-catalog-service/internal/query"
)

const (
	OpList   proxy.Operation = "product.list"
	OpGet    proxy.Operation = "product.get"
	OpCreate proxy.Operation = "product.create"
	OpUpdate proxy.Operation = "product.update"
	OpDelete proxy.Operation = "product.delete"

	DefaultSort = "sku,asc"
)

func Routes(uc UseCase) []proxy.Route {
	return []proxy.Route{
		proxy.Handle(OpList, uc.ListProducts),
		proxy.Handle(OpGet, func(ctx context.Context, req dto.ProductID) (*model.Product, error) {
			return uc.GetProduct(ctx, req.ProductID)
		}),
		proxy.Handle(OpCreate, uc.CreateProduct),
		proxy.Handle(OpUpdate, uc.UpdateProduct),
		proxy.Handle(OpDelete, func(ctx context.Context, req dto.ProductID) (proxy.Empty, error) {
			return proxy.Empty{}, uc.DeleteProduct(ctx, req.ProductID)
		}),
	}
}

// Client invokes product operations through the proxy.
type Client struct {
	proxy *proxy.Proxy
}

func NewClient(p *proxy.Proxy) *Client {
	return &Client{proxy: p}
}

func (c *Client) List(ctx context.Context, f *dto.ProductFilters) *proxy.Future[query.Page[model.Product]] {
	return proxy.Invoke[query.Page[model.Product]](ctx, c.proxy, OpList, f)
}

func (c *Client) Get(ctx context.Context, id string) *proxy.Future[*model.Product] {
	return proxy.Invoke[*model.Product](ctx, c.proxy, OpGet, dto.ProductID{ProductID: id})
}

func (c *Client) Create(ctx context.Context, in *dto.CreateProductInput) *proxy.Future[*model.Product] {
	return proxy.Invoke[*model.Product](ctx, c.proxy, OpCreate, in)
}

func (c *Client) Update(ctx context.Context, in *dto.UpdateProductInput) *proxy.Future[*model.Product] {
	return proxy.Invoke[*model.Product](ctx, c.proxy, OpUpdate, in)
}

func (c *Client) Delete(ctx context.Context, id string) *proxy.Future[proxy.Empty] {
	return proxy.Invoke[proxy.Empty](ctx, c.proxy, OpDelete, dto.ProductID{ProductID: id})
}
