package handler

import (
	"net/http"

	"github.com/fekuna/omnipos-catalog-service/internal/http/request"
	"github.com/fekuna/omnipos-catalog-service/internal/http/response"
	"github.com/fekuna/omnipos-catalog-service/internal/logger"
	"github.com/fekuna/omnipos-catalog-service/internal/product"
	"github.com/fekuna/omnipos-catalog-service/internal/product/dto"
	"github.com/go-chi/chi/v5"
)

type ProductHandler struct {
	client *product.Client
	logger logger.ZapLogger
}

func NewProductHandler(client *product.Client, log logger.ZapLogger) *ProductHandler {
	return &ProductHandler{
		client: client,
		logger: log,
	}
}

// Mount registers the product routes on r, relative to /products.
func (h *ProductHandler) Mount(r chi.Router) {
	r.Get("/", h.ListProducts)
	r.Post("/", h.CreateProduct)
	r.Get("/{productId}", h.GetProduct)
	r.Put("/{productId}", h.UpdateProduct)
	r.Delete("/{productId}", h.DeleteProduct)
}

func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	params, err := request.PageParams(r, product.DefaultSort)
	if err != nil {
		response.Error(w, r, h.logger, "list products", err)
		return
	}
	q := r.URL.Query()
	filters := &dto.ProductFilters{
		Params:      params,
		Name:        q.Get("name"),
		ProductType: q.Get("productType"),
	}

	page, err := h.client.List(r.Context(), filters).Await(r.Context())
	if err != nil {
		response.Error(w, r, h.logger, "list products", err)
		return
	}
	response.JSON(w, http.StatusOK, page)
}

func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var input dto.CreateProductInput
	if err := request.Decode(r, &input); err != nil {
		response.Error(w, r, h.logger, "create product", err)
		return
	}

	p, err := h.client.Create(r.Context(), &input).Await(r.Context())
	if err != nil {
		response.Error(w, r, h.logger, "create product", err)
		return
	}
	response.Data(w, http.StatusCreated, p)
}

func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	p, err := h.client.Get(r.Context(), chi.URLParam(r, "productId")).Await(r.Context())
	if err != nil {
		response.Error(w, r, h.logger, "get product", err)
		return
	}
	response.Data(w, http.StatusOK, p)
}

func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var input dto.UpdateProductInput
	if err := request.Decode(r, &input); err != nil {
		response.Error(w, r, h.logger, "update product", err)
		return
	}
	input.ProductID = chi.URLParam(r, "productId")

	p, err := h.client.Update(r.Context(), &input).Await(r.Context())
	if err != nil {
		response.Error(w, r, h.logger, "update product", err)
		return
	}
	response.Data(w, http.StatusOK, p)
}

func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if _, err := h.client.Delete(r.Context(), chi.URLParam(r, "productId")).Await(r.Context()); err != nil {
		response.Error(w, r, h.logger, "delete product", err)
		return
	}
	response.NoContent(w)
}
