package handler

import (
	"net/http"

	"github.com/fekuna/omnipos-catalog-service/internal/http/request"
	"github.com/fekuna/omnipos-catalog-service/internal/http/response"
	"github.com/fekuna/omnipos-catalog-service/internal/logger"
	"github.com/fekuna/omnipos-catalog-service/internal/variant"
	"github.com/fekuna/omnipos-catalog-service/internal/variant/dto"
	"github.com/go-chi/chi/v5"
)

type VariantHandler struct {
	client *variant.Client
	logger logger.ZapLogger
}

func NewVariantHandler(client *variant.Client, log logger.ZapLogger) *VariantHandler {
	return &VariantHandler{
		client: client,
		logger: log,
	}
}

// Mount registers the variant routes on r, relative to
// /products/{productId}/variants.
func (h *VariantHandler) Mount(r chi.Router) {
	r.Get("/", h.ListVariants)
	r.Post("/", h.CreateVariant)
	r.Get("/{variantId}", h.GetVariant)
	r.Put("/{variantId}", h.UpdateVariant)
	r.Delete("/{variantId}", h.DeleteVariant)
}

func ref(r *http.Request) dto.VariantRef {
	return dto.VariantRef{
		ProductID: chi.URLParam(r, "productId"),
		VariantID: chi.URLParam(r, "variantId"),
	}
}

func (h *VariantHandler) ListVariants(w http.ResponseWriter, r *http.Request) {
	params, err := request.PageParams(r, variant.DefaultSort)
	if err != nil {
		response.Error(w, r, h.logger, "list variants", err)
		return
	}
	filters := &dto.VariantFilters{
		Params:    params,
		ProductID: chi.URLParam(r, "productId"),
		Name:      r.URL.Query().Get("name"),
	}

	page, err := h.client.List(r.Context(), filters).Await(r.Context())
	if err != nil {
		response.Error(w, r, h.logger, "list variants", err)
		return
	}
	response.JSON(w, http.StatusOK, page)
}

func (h *VariantHandler) CreateVariant(w http.ResponseWriter, r *http.Request) {
	var input dto.CreateVariantInput
	if err := request.Decode(r, &input); err != nil {
		response.Error(w, r, h.logger, "create variant", err)
		return
	}
	input.ProductID = chi.URLParam(r, "productId")

	v, err := h.client.Create(r.Context(), &input).Await(r.Context())
	if err != nil {
		response.Error(w, r, h.logger, "create variant", err)
		return
	}
	response.Data(w, http.StatusCreated, v)
}

func (h *VariantHandler) GetVariant(w http.ResponseWriter, r *http.Request) {
	v, err := h.client.Get(r.Context(), ref(r)).Await(r.Context())
	if err != nil {
		response.Error(w, r, h.logger, "get variant", err)
		return
	}
	response.Data(w, http.StatusOK, v)
}

func (h *VariantHandler) UpdateVariant(w http.ResponseWriter, r *http.Request) {
	var input dto.UpdateVariantInput
	if err := request.Decode(r, &input); err != nil {
		response.Error(w, r, h.logger, "update variant", err)
		return
	}
	k := ref(r)
	input.ProductID, input.VariantID = k.ProductID, k.VariantID

	v, err := h.client.Update(r.Context(), &input).Await(r.Context())
	if err != nil {
		response.Error(w, r, h.logger, "update variant", err)
		return
	}
	response.Data(w, http.StatusOK, v)
}

func (h *VariantHandler) DeleteVariant(w http.ResponseWriter, r *http.Request) {
	if _, err := h.client.Delete(r.Context(), ref(r)).Await(r.Context()); err != nil {
		response.Error(w, r, h.logger, "delete variant", err)
		return
	}
	response.NoContent(w)
}
