package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fekuna/omnipos-catalog-service/config"
	"github.com/fekuna/omnipos-catalog-service/internal/catalog"
	"github.com/fekuna/omnipos-catalog-service/internal/logger"
	"github.com/fekuna/omnipos-catalog-service/internal/proxy"
	"github.com/prometheus/client_golang/prometheus"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	log := logger.NewNop()
	reg, err := catalog.NewRegistry(catalog.MemoryRepositories(), log)
	if err != nil {
		t.Fatal(err)
	}
	metrics := prometheus.NewRegistry()
	p := proxy.New(proxy.NewLocalTransport(reg),
		proxy.WithLogger(log),
		proxy.WithMetrics(proxy.NewMetrics(metrics)),
	)

	cfg := &config.ServerConfig{HTTPPort: ":0", ReadTimeout: 5, WriteTimeout: 5}
	srv := httptest.NewServer(NewServer(cfg, catalog.NewClients(p), metrics, log).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func send(t *testing.T, srv *httptest.Server, method, path, body string) (*http.Response, string) {
	t.Helper()
	req, err := http.NewRequest(method, srv.URL+path, strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := srv.Client().Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return resp, string(b)
}

func TestIndexHealthMetrics(t *testing.T) {
	srv := newTestServer(t)

	resp, body := send(t, srv, "GET", "/", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("index: %d", resp.StatusCode)
	}
	var idx struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Version string `json:"version"`
	}
	if err := json.Unmarshal([]byte(body), &idx); err != nil || !idx.Success || idx.Version != "1.0.0" {
		t.Fatalf("index body %s (%v)", body, err)
	}

	if resp, body = send(t, srv, "GET", "/health", ""); resp.StatusCode != http.StatusOK || body != "OK" {
		t.Fatalf("health: %d %q", resp.StatusCode, body)
	}

	send(t, srv, "GET", "/api/v1/products", "")
	resp, body = send(t, srv, "GET", "/metrics", "")
	if resp.StatusCode != http.StatusOK || !strings.Contains(body, `catalog_proxy_invocations_total{operation="product.list",outcome="ok"} 1`) {
		t.Fatalf("metrics: %d\n%s", resp.StatusCode, body)
	}
}

func TestProductScenario(t *testing.T) {
	srv := newTestServer(t)
	body := `{"sku":"ABC","name":"X","productType":"T","baseUom":"EA"}`

	if resp, b := send(t, srv, "POST", "/api/v1/products", body); resp.StatusCode != http.StatusCreated {
		t.Fatalf("create: %d %s", resp.StatusCode, b)
	}
	resp, b := send(t, srv, "POST", "/api/v1/products", body)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("repeat: %d %s", resp.StatusCode, b)
	}
	var e struct {
		Error   string `json:"error"`
		Status  int    `json:"status"`
		ErrorID string `json:"errorId"`
	}
	if err := json.Unmarshal([]byte(b), &e); err != nil || e.Status != 409 || e.ErrorID == "" {
		t.Fatalf("conflict body %s (%v)", b, err)
	}
}

func TestVariantsNestUnderProducts(t *testing.T) {
	srv := newTestServer(t)

	resp, b := send(t, srv, "POST", "/api/v1/products/p-1/variants", `{"sku":"V1","name":"Small"}`)
	if resp.StatusCode != http.StatusCreated || !strings.Contains(b, `"productId":"p-1"`) {
		t.Fatalf("create variant: %d %s", resp.StatusCode, b)
	}
	if resp, b = send(t, srv, "GET", "/api/v1/products/p-1/variants?sort=name,desc", ""); resp.StatusCode != http.StatusOK || !strings.Contains(b, `"totalElements":1`) {
		t.Fatalf("list variants: %d %s", resp.StatusCode, b)
	}
}

func TestOtherResources(t *testing.T) {
	srv := newTestServer(t)

	if resp, b := send(t, srv, "POST", "/api/v1/unit-of-measures", `{"code":"EA","name":"Each"}`); resp.StatusCode != http.StatusCreated {
		t.Fatalf("create uom: %d %s", resp.StatusCode, b)
	}
	if resp, b := send(t, srv, "POST", "/api/v1/locations", `{"code":"WH","name":"Main","locationType":"WAREHOUSE"}`); resp.StatusCode != http.StatusCreated {
		t.Fatalf("create location: %d %s", resp.StatusCode, b)
	}
	if resp, _ := send(t, srv, "GET", "/api/v1/locations/by-code/WH", ""); resp.StatusCode != http.StatusOK {
		t.Fatalf("by code: %d", resp.StatusCode)
	}
	if resp, _ := send(t, srv, "GET", "/api/v1/unit-of-measures?page=-1", ""); resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("negative page: %d", resp.StatusCode)
	}
}

func TestRequestIDIsEchoed(t *testing.T) {
	srv := newTestServer(t)

	req, _ := http.NewRequest("GET", srv.URL+"/api/v1/products/missing", nil)
	req.Header.Set("X-Request-ID", "req-42")
	resp, err := srv.Client().Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound || resp.Header.Get("X-Request-ID") != "req-42" {
		t.Fatalf("status %d, request id %q", resp.StatusCode, resp.Header.Get("X-Request-ID"))
	}
}
