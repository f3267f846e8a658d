package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/catalog-admin-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/catalog-admin-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/catalog-admin-service/internal/domain"
	"github.com/jsamuelsen11/catalog-admin-service/internal/domain/catalog"
	"github.com/jsamuelsen11/catalog-admin-service/internal/domain/tree"
	"github.com/jsamuelsen11/catalog-admin-service/mocks"
)

func newMenuHandler(t *testing.T) (*handlers.MenuHandler, *mocks.MockMenuService) {
	t.Helper()
	svc := mocks.NewMockMenuService(t)
	return handlers.NewMenuHandler(svc), svc
}

func TestGetMenuTree(t *testing.T) {
	t.Parallel()

	parent := "shop"
	items := []catalog.MenuItem{
		{Base: testBase("shop"), MenuID: "m1", Label: "Shop", SortKey: 1, Enabled: true},
		{Base: testBase("shoes"), MenuID: "m1", ParentID: &parent, Label: "Shoes", SortKey: 1, Enabled: true},
	}

	tests := []struct {
		name        string
		query       string
		enabledOnly bool
		wantStatus  int
	}{
		{name: "full tree", query: "", wantStatus: http.StatusOK},
		{name: "enabled only", query: "?enabled=true", enabledOnly: true, wantStatus: http.StatusOK},
		{name: "bad flag", query: "?enabled=maybe", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newMenuHandler(t)
			if tt.wantStatus == http.StatusOK {
				svc.EXPECT().Tree(mock.Anything, "m1", tt.enabledOnly).
					Return(tree.Build(items, catalog.MenuItemAttrs), nil)
			}

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/menus/m1/tree"+tt.query, nil)
			req = withChiParams(req, map[string]string{"id": "m1"})
			h.GetTree(rec, req)

			requireStatus(t, rec, tt.wantStatus)
			if tt.wantStatus != http.StatusOK {
				return
			}
			resp := decodeJSON[[]dto.MenuNodeResponse](t, rec)
			if len(resp) != 1 || len(resp[0].Children) != 1 || resp[0].Children[0].ID != "shoes" {
				t.Errorf("tree = %+v", resp)
			}
		})
	}
}

func TestAddMenuItem_DefaultsEnabled(t *testing.T) {
	t.Parallel()
	h, svc := newMenuHandler(t)

	svc.EXPECT().AddItem(mock.Anything, "m1", &catalog.MenuItem{Label: "Sale", URL: "/sale", Enabled: true}).
		Return(&catalog.MenuItem{Base: testBase("sale"), MenuID: "m1", Label: "Sale", URL: "/sale", Enabled: true}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/menus/m1/items",
		bytes.NewBufferString(`{"label":"Sale","url":"/sale"}`))
	req = withChiParams(req, map[string]string{"id": "m1"})
	h.AddItem(rec, req)

	requireStatus(t, rec, http.StatusCreated)
}

func TestReorderMenu(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		svcErr     error
		callsSvc   bool
		wantStatus int
	}{
		{
			name:       "applied",
			body:       `{"placements":[{"id":"a","sort_key":2},{"id":"b","sort_key":1,"parent_id":""}]}`,
			callsSvc:   true,
			wantStatus: http.StatusOK,
		},
		{
			name:       "empty batch",
			body:       `{"placements":[]}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "cycle rejected by service",
			body:       `{"placements":[{"id":"a","sort_key":1,"parent_id":"b"}]}`,
			svcErr:     domain.NewValidationError("a.parent_id", "creates a cycle"),
			callsSvc:   true,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newMenuHandler(t)
			if tt.callsSvc {
				svc.EXPECT().Reorder(mock.Anything, "m1", mock.AnythingOfType("[]tree.Placement")).
					Return([]catalog.MenuItem{}, tt.svcErr)
			}

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/menus/m1/reorder", bytes.NewBufferString(tt.body))
			req = withChiParams(req, map[string]string{"id": "m1"})
			h.Reorder(rec, req)

			requireStatus(t, rec, tt.wantStatus)
		})
	}
}

func TestRemoveMenuItem(t *testing.T) {
	t.Parallel()
	h, svc := newMenuHandler(t)

	svc.EXPECT().RemoveItem(mock.Anything, "m1", "shop").Return(nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/menus/m1/items/shop", nil)
	req = withChiParams(req, map[string]string{"id": "m1", "itemId": "shop"})
	h.RemoveItem(rec, req)

	requireStatus(t, rec, http.StatusNoContent)
}
