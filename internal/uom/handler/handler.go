package handler

import (
	"net/http"

	"github.com/fekuna/omnipos-catalog-service/internal/http/request"
	"github.com/fekuna/omnipos-catalog-service/internal/http/response"
	"github.com/fekuna/omnipos-catalog-service/internal/logger"
	"github.com/fekuna/omnipos-catalog-service/internal/uom"
	"github.com/fekuna/omnipos-catalog-service/internal/uom/dto"
	"github.com/go-chi/chi/v5"
)

type UOMHandler struct {
	client *uom.Client
	logger logger.ZapLogger
}

func NewUOMHandler(client *uom.Client, log logger.ZapLogger) *UOMHandler {
	return &UOMHandler{
		client: client,
		logger: log,
	}
}

// Mount registers the routes relative to /unit-of-measures.
func (h *UOMHandler) Mount(r chi.Router) {
	r.Get("/", h.ListUOMs)
	r.Post("/", h.CreateUOM)
	r.Get("/{uomId}", h.GetUOM)
	r.Put("/{uomId}", h.UpdateUOM)
	r.Delete("/{uomId}", h.DeleteUOM)
}

func (h *UOMHandler) ListUOMs(w http.ResponseWriter, r *http.Request) {
	params, err := request.PageParams(r, uom.DefaultSort)
	if err != nil {
		response.Error(w, r, h.logger, "list UOM", err)
		return
	}
	q := r.URL.Query()
	filters := &dto.UOMFilters{
		Params: params,
		Code:   q.Get("code"),
		Name:   q.Get("name"),
	}

	page, err := h.client.List(r.Context(), filters).Await(r.Context())
	if err != nil {
		response.Error(w, r, h.logger, "list UOM", err)
		return
	}
	response.JSON(w, http.StatusOK, page)
}

func (h *UOMHandler) CreateUOM(w http.ResponseWriter, r *http.Request) {
	var input dto.CreateUOMInput
	if err := request.Decode(r, &input); err != nil {
		response.Error(w, r, h.logger, "create UOM", err)
		return
	}

	u, err := h.client.Create(r.Context(), &input).Await(r.Context())
	if err != nil {
		response.Error(w, r, h.logger, "create UOM", err)
		return
	}
	response.Data(w, http.StatusCreated, u)
}

func (h *UOMHandler) GetUOM(w http.ResponseWriter, r *http.Request) {
	u, err := h.client.Get(r.Context(), chi.URLParam(r, "uomId")).Await(r.Context())
	if err != nil {
		response.Error(w, r, h.logger, "get UOM", err)
		return
	}
	response.Data(w, http.StatusOK, u)
}

func (h *UOMHandler) UpdateUOM(w http.ResponseWriter, r *http.Request) {
	var input dto.UpdateUOMInput
	if err := request.Decode(r, &input); err != nil {
		response.Error(w, r, h.logger, "update UOM", err)
		return
	}
	input.UOMID = chi.URLParam(r, "uomId")

	u, err := h.client.Update(r.Context(), &input).Await(r.Context())
	if err != nil {
		response.Error(w, r, h.logger, "update UOM", err)
		return
	}
	response.Data(w, http.StatusOK, u)
}

func (h *UOMHandler) DeleteUOM(w http.ResponseWriter, r *http.Request) {
	if _, err := h.client.Delete(r.Context(), chi.URLParam(r, "uomId")).Await(r.Context()); err != nil {
		response.Error(w, r, h.logger, "delete UOM", err)
		return
	}
	response.NoContent(w)
}
