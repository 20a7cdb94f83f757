package handler

import (
	"net/http"

	"github.com/fekuna/omnipos-catalog-service/internal/http/request"
	"github.com/fekuna/omnipos-catalog-service/internal/http/response"
	"github.com/fekuna/omnipos-catalog-service/internal/location"
	"github.com/fekuna/omnipos-catalog-service/internal/location/dto"
	"github.com/fekuna/omnipos-catalog-service/internal/logger"
	"github.com/go-chi/chi/v5"
)

type LocationHandler struct {
	client *location.Client
	logger logger.ZapLogger
}

func NewLocationHandler(client *location.Client, log logger.ZapLogger) *LocationHandler {
	return &LocationHandler{
		client: client,
		logger: log,
	}
}

// Mount registers the location routes on r, relative to /locations.
func (h *LocationHandler) Mount(r chi.Router) {
	r.Get("/", h.ListLocations)
	r.Post("/", h.CreateLocation)
	r.Get("/by-code/{code}", h.GetLocationByCode)
	r.Get("/{locationId}", h.GetLocation)
	r.Put("/{locationId}", h.UpdateLocation)
	r.Delete("/{locationId}", h.DeleteLocation)
}

func (h *LocationHandler) ListLocations(w http.ResponseWriter, r *http.Request) {
	params, err := request.PageParams(r, location.DefaultSort)
	if err != nil {
		response.Error(w, r, h.logger, "list locations", err)
		return
	}
	activeOnly, err := request.Bool(r, "activeOnly", true)
	if err != nil {
		response.Error(w, r, h.logger, "list locations", err)
		return
	}
	q := r.URL.Query()
	filters := &dto.LocationFilters{
		Params:       params,
		Code:         q.Get("code"),
		Name:         q.Get("name"),
		LocationType: q.Get("locationType"),
		ActiveOnly:   activeOnly,
	}

	page, err := h.client.List(r.Context(), filters).Await(r.Context())
	if err != nil {
		response.Error(w, r, h.logger, "list locations", err)
		return
	}
	response.JSON(w, http.StatusOK, page)
}

func (h *LocationHandler) CreateLocation(w http.ResponseWriter, r *http.Request) {
	var input dto.CreateLocationInput
	if err := request.Decode(r, &input); err != nil {
		response.Error(w, r, h.logger, "create location", err)
		return
	}

	l, err := h.client.Create(r.Context(), &input).Await(r.Context())
	if err != nil {
		response.Error(w, r, h.logger, "create location", err)
		return
	}
	response.Data(w, http.StatusCreated, l)
}

func (h *LocationHandler) GetLocation(w http.ResponseWriter, r *http.Request) {
	l, err := h.client.Get(r.Context(), chi.URLParam(r, "locationId")).Await(r.Context())
	if err != nil {
		response.Error(w, r, h.logger, "get location", err)
		return
	}
	response.Data(w, http.StatusOK, l)
}

func (h *LocationHandler) GetLocationByCode(w http.ResponseWriter, r *http.Request) {
	l, err := h.client.GetByCode(r.Context(), chi.URLParam(r, "code")).Await(r.Context())
	if err != nil {
		response.Error(w, r, h.logger, "get location", err)
		return
	}
	response.Data(w, http.StatusOK, l)
}

func (h *LocationHandler) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	var input dto.UpdateLocationInput
	if err := request.Decode(r, &input); err != nil {
		response.Error(w, r, h.logger, "update location", err)
		return
	}
	input.LocationID = chi.URLParam(r, "locationId")

	l, err := h.client.Update(r.Context(), &input).Await(r.Context())
	if err != nil {
		response.Error(w, r, h.logger, "update location", err)
		return
	}
	response.Data(w, http.StatusOK, l)
}

func (h *LocationHandler) DeleteLocation(w http.ResponseWriter, r *http.Request) {
	if _, err := h.client.Delete(r.Context(), chi.URLParam(r, "locationId")).Await(r.Context()); err != nil {
		response.Error(w, r, h.logger, "delete location", err)
		return
	}
	response.NoContent(w)
}
