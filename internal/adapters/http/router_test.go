package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	adapthttp "github.com/jsamuelsen11/catalog-admin-service/internal/adapters/http"
	"github.com/jsamuelsen11/catalog-admin-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/catalog-admin-service/internal/domain/catalog"
	"github.com/jsamuelsen11/catalog-admin-service/mocks"
)

type testServices struct {
	brands   *mocks.MockLinkedService[catalog.Brand]
	registry *mocks.MockHealthRegistry
}

func newTestRouter(t *testing.T, middlewares ...func(http.Handler) http.Handler) (http.Handler, testServices) {
	t.Helper()
	svcs := testServices{
		brands:   mocks.NewMockLinkedService[catalog.Brand](t),
		registry: mocks.NewMockHealthRegistry(t),
	}

	router := adapthttp.NewRouter(adapthttp.Handlers{
		Brands:         handlers.NewBrandHandler(svcs.brands),
		Tags:           handlers.NewTagHandler(mocks.NewMockLinkedService[catalog.Tag](t)),
		Collections:    handlers.NewCollectionHandler(mocks.NewMockCollectionService(t)),
		Menus:          handlers.NewMenuHandler(mocks.NewMockMenuService(t)),
		Reconciliation: handlers.NewReconciliationHandler(mocks.NewMockReconciliationService(t)),
		Health:         handlers.NewHealthHandler(svcs.registry),
	}, middlewares...)
	return router, svcs
}

func TestRouter_AllRoutesRegistered(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	expectedRoutes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/health/live"},
		{http.MethodGet, "/health/ready"},
		{http.MethodGet, "/api/v1/brands"},
		{http.MethodPost, "/api/v1/brands"},
		{http.MethodGet, "/api/v1/brands/b1"},
		{http.MethodPut, "/api/v1/brands/b1"},
		{http.MethodDelete, "/api/v1/brands/b1"},
		{http.MethodGet, "/api/v1/tags"},
		{http.MethodPost, "/api/v1/tags"},
		{http.MethodPut, "/api/v1/tags/t1"},
		{http.MethodDelete, "/api/v1/tags/t1"},
		{http.MethodPost, "/api/v1/collections"},
		{http.MethodGet, "/api/v1/collections/c1"},
		{http.MethodDelete, "/api/v1/collections/c1"},
		{http.MethodPost, "/api/v1/collections/c1/items"},
		{http.MethodPost, "/api/v1/collections/c1/items/swap"},
		{http.MethodDelete, "/api/v1/collections/c1/items/i1"},
		{http.MethodPost, "/api/v1/menus"},
		{http.MethodGet, "/api/v1/menus/m1/tree"},
		{http.MethodPost, "/api/v1/menus/m1/reorder"},
		{http.MethodPost, "/api/v1/menus/m1/items"},
		{http.MethodPut, "/api/v1/menus/m1/items/x"},
		{http.MethodDelete, "/api/v1/menus/m1/items/x"},
		{http.MethodGet, "/api/v1/reconciliation"},
		{http.MethodPost, "/api/v1/reconciliation/r1/resolve"},
	}

	chiRouter, ok := router.(*chi.Mux)
	if !ok {
		t.Fatal("router is not *chi.Mux")
	}

	for _, expected := range expectedRoutes {
		if !chiRouter.Match(chi.NewRouteContext(), expected.method, expected.path) {
			t.Errorf("route %s %s not registered", expected.method, expected.path)
		}
	}
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	t.Parallel()

	called := false
	testMW := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			next.ServeHTTP(w, r)
		})
	}

	router, svcs := newTestRouter(t, testMW)
	svcs.registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	router.ServeHTTP(rec, req)

	if !called {
		t.Error("middleware was not called")
	}
}

func TestRouter_IntegrationListBrands(t *testing.T) {
	t.Parallel()

	router, svcs := newTestRouter(t)
	svcs.brands.EXPECT().List(mock.Anything).Return([]catalog.Brand{}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/brands", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestRouter_NotFoundReturns404(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/brands/b1", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}
