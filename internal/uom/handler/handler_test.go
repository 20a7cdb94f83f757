package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fekuna/omnipos-catalog-service/internal/apperr"
	"github.com/fekuna/omnipos-catalog-service/internal/logger"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/proxy"
	"github.com/fekuna/omnipos-catalog-service/internal/uom"
	"github.com/fekuna/omnipos-catalog-service/internal/uom/dto"
	"github.com/fekuna/omnipos-catalog-service/internal/uom/repository"
	"github.com/fekuna/omnipos-catalog-service/internal/uom/usecase"
	"github.com/go-chi/chi/v5"
)

// exhaustedRepo fails every call the way a saturated pool does.
type exhaustedRepo struct{}

func (exhaustedRepo) Create(context.Context, *model.UnitOfMeasure) (*model.UnitOfMeasure, error) {
	return nil, apperr.Transient("connection pool exhausted", nil)
}

func (exhaustedRepo) FindByID(context.Context, string) (*model.UnitOfMeasure, error) {
	return nil, apperr.Transient("connection pool exhausted", nil)
}

func (exhaustedRepo) FindAll(context.Context, *dto.UOMFilters) ([]model.UnitOfMeasure, int, error) {
	return nil, 0, apperr.Transient("connection pool exhausted", nil)
}

func (exhaustedRepo) Update(context.Context, *dto.UpdateUOMInput, time.Time) (*model.UnitOfMeasure, error) {
	return nil, apperr.Transient("connection pool exhausted", nil)
}

func (exhaustedRepo) Delete(context.Context, string) error {
	return apperr.Transient("connection pool exhausted", nil)
}

func (exhaustedRepo) CodeExists(context.Context, string) (bool, error) {
	return false, apperr.Transient("connection pool exhausted", nil)
}

func newRouter(t *testing.T, repo uom.Repository) http.Handler {
	t.Helper()
	log := logger.NewNop()
	reg, err := proxy.NewRegistry(log, uom.Routes(usecase.NewUOMUseCase(repo, log)))
	if err != nil {
		t.Fatal(err)
	}
	h := NewUOMHandler(uom.NewClient(proxy.New(proxy.NewLocalTransport(reg))), log)

	r := chi.NewRouter()
	r.Route("/unit-of-measures", h.Mount)
	return r
}

func do(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

type errorBody struct {
	Error   string `json:"error"`
	Status  int    `json:"status"`
	ErrorID string `json:"errorId"`
}

func TestUOMRoutes(t *testing.T) {
	h := newRouter(t, repository.NewMemoryRepository())

	w := do(h, "POST", "/unit-of-measures", `{"code":"KG","name":"Kilogram"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: %d %s", w.Code, w.Body.String())
	}
	var created struct {
		Data model.UnitOfMeasure `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(w.Body.String(), `"baseUnit":null`) {
		t.Fatalf("absent baseUnit should be null: %s", w.Body.String())
	}

	id := created.Data.UOMID
	if w = do(h, "PUT", "/unit-of-measures/"+id, `{"name":"Kilo","baseUnit":"G"}`); w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"baseUnit":"G"`) {
		t.Fatalf("update: %d %s", w.Code, w.Body.String())
	}
	if w = do(h, "DELETE", "/unit-of-measures/"+id, ""); w.Code != http.StatusNoContent {
		t.Fatalf("delete: %d", w.Code)
	}
	if w = do(h, "GET", "/unit-of-measures/"+id, ""); w.Code != http.StatusNotFound {
		t.Fatalf("get after delete: %d", w.Code)
	}
	if w = do(h, "POST", "/unit-of-measures", `{"code":"KG","name":"Kilogram"}`); w.Code != http.StatusCreated {
		t.Fatalf("reuse code: %d %s", w.Code, w.Body.String())
	}
	if w = do(h, "POST", "/unit-of-measures", `{"code":"KG"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("missing name: %d", w.Code)
	}
}

func TestStoreFailureIs500(t *testing.T) {
	h := newRouter(t, exhaustedRepo{})

	tests := []struct {
		method, path, body, want string
	}{
		{"GET", "/unit-of-measures", "", "Failed to list UOM: connection pool exhausted"},
		{"POST", "/unit-of-measures", `{"code":"KG","name":"Kilogram"}`, "Failed to create UOM: connection pool exhausted"},
		{"DELETE", "/unit-of-measures/x", "", "Failed to delete UOM: connection pool exhausted"},
	}
	for _, tt := range tests {
		w := do(h, tt.method, tt.path, tt.body)
		var e errorBody
		if err := json.Unmarshal(w.Body.Bytes(), &e); err != nil {
			t.Fatalf("%s %s: %v", tt.method, tt.path, err)
		}
		if w.Code != http.StatusInternalServerError || e.Status != 500 || e.Error != tt.want || e.ErrorID == "" {
			t.Errorf("%s %s: %d %+v", tt.method, tt.path, w.Code, e)
		}
	}
}

func TestHugePageIsRejected(t *testing.T) {
	h := newRouter(t, repository.NewMemoryRepository())

	w := do(h, "GET", "/unit-of-measures?page=461168601842738791&size=20", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d %s", w.Code, w.Body.String())
	}
	if w = do(h, "GET", "/unit-of-measures?page=100000000000&size=20", ""); w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"data":[]`) {
		t.Fatalf("far page: %d %s", w.Code, w.Body.String())
	}
}

func TestTrailingBodyIsRejected(t *testing.T) {
	h := newRouter(t, repository.NewMemoryRepository())

	w := do(h, "POST", "/unit-of-measures", `{"code":"KG","name":"Kilogram"} trailing`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d %s", w.Code, w.Body.String())
	}
	var e errorBody
	if err := json.Unmarshal(w.Body.Bytes(), &e); err != nil || e.Error != "invalid JSON body" {
		t.Fatalf("body %s (%v)", w.Body.String(), err)
	}
}
