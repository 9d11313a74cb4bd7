package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"quotely/internal/adapter/http/handlers/mocks"
	"quotely/internal/domain/entities"
	"quotely/internal/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCatalogHandler_SaveProject(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		st := mocks.NewMockIStore(ctrl)
		h := NewCatalogHandler(st)

		r := gin.New()
		r.POST("/v1/projects", h.SaveProject)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects", bytes.NewBufferString(`{"description":"no name"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		st := mocks.NewMockIStore(ctrl)
		h := NewCatalogHandler(st)

		r := gin.New()
		r.POST("/v1/projects", h.SaveProject)

		st.EXPECT().SaveProject(gomock.Any(), gomock.Any()).Return(entities.Project{ID: "p9", Name: "Phoenix"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects", bytes.NewBufferString(`{"name":"Phoenix"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestCatalogHandler_DeleteGuards(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("project in use", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		st := mocks.NewMockIStore(ctrl)
		h := NewCatalogHandler(st)

		r := gin.New()
		r.DELETE("/v1/projects/:id", h.DeleteProject)

		st.EXPECT().DeleteProject(gomock.Any(), "p1").Return(store.ErrProjectInUse)

		req := httptest.NewRequest(http.MethodDelete, "/v1/projects/p1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("domain in use", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		st := mocks.NewMockIStore(ctrl)
		h := NewCatalogHandler(st)

		r := gin.New()
		r.DELETE("/v1/domains/:id", h.DeleteDomain)

		st.EXPECT().DeleteDomain(gomock.Any(), "bd1").Return(store.ErrDomainInUse)

		req := httptest.NewRequest(http.MethodDelete, "/v1/domains/bd1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("contact deleted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		st := mocks.NewMockIStore(ctrl)
		h := NewCatalogHandler(st)

		r := gin.New()
		r.DELETE("/v1/contacts/:id", h.DeleteContact)

		st.EXPECT().DeleteContact(gomock.Any(), "c9").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/contacts/c9", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestCatalogHandler_SaveDomain(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("store validation failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		st := mocks.NewMockIStore(ctrl)
		h := NewCatalogHandler(st)

		r := gin.New()
		r.POST("/v1/domains", h.SaveDomain)

		st.EXPECT().SaveDomain(gomock.Any(), gomock.Any()).Return(entities.BusinessDomain{}, store.ErrDomainInvalid)

		req := httptest.NewRequest(http.MethodPost, "/v1/domains", bytes.NewBufferString(`{"name":"IT","hourly_rate":-1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("components are forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		st := mocks.NewMockIStore(ctrl)
		h := NewCatalogHandler(st)

		r := gin.New()
		r.POST("/v1/domains", h.SaveDomain)

		st.EXPECT().SaveDomain(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, d entities.BusinessDomain) (entities.BusinessDomain, error) {
				if len(d.RateComponents) != 2 {
					t.Fatalf("expected 2 components, got %+v", d.RateComponents)
				}
				return d, nil
			})

		body := `{"name":"IT","rate_components":[{"label":"Base","value":80},{"label":"Overhead","value":12.5}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/domains", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestMapCatalogError(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{store.ErrContactInvalid, http.StatusBadRequest},
		{store.ErrDomainInvalid, http.StatusBadRequest},
		{store.ErrProjectNotFound, http.StatusNotFound},
		{store.ErrContactNotFound, http.StatusNotFound},
		{store.ErrDomainNotFound, http.StatusNotFound},
		{store.ErrProjectInUse, http.StatusConflict},
		{store.ErrContactInUse, http.StatusConflict},
		{store.ErrDomainInUse, http.StatusConflict},
		{errors.New("x"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := mapCatalogError(tc.err); got.HTTPStatus != tc.status {
			t.Fatalf("mapCatalogError(%v) = %d, want %d", tc.err, got.HTTPStatus, tc.status)
		}
	}
}
