package handlers

import (
	"bytes"
	"encoding/json"
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

func TestTemplateHandler_GetTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	st := mocks.NewMockIStore(ctrl)
	h := NewTemplateHandler(st)

	r := gin.New()
	r.GET("/v1/templates/:id", h.GetTemplate)

	st.EXPECT().GetTemplateDetail("missing").Return(entities.QuoteDetail{}, store.ErrTemplateNotFound)

	req := httptest.NewRequest(http.MethodGet, "/v1/templates/missing", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestTemplateHandler_SaveTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		st := mocks.NewMockIStore(ctrl)
		h := NewTemplateHandler(st)

		r := gin.New()
		r.PUT("/v1/templates/:id", h.SaveTemplate)

		req := httptest.NewRequest(http.MethodPut, "/v1/templates/t1", bytes.NewBufferString("{"))
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
		h := NewTemplateHandler(st)

		r := gin.New()
		r.PUT("/v1/templates/:id", h.SaveTemplate)

		st.EXPECT().SaveTemplateDetails(gomock.Any(), gomock.Any()).Return(entities.Quote{ID: "t1", Title: "Edited"}, nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/templates/t1", bytes.NewBufferString(`{"title":"Edited","sections":[{"title":"General"}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "t1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestTemplateHandler_InstantiateTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		st := mocks.NewMockIStore(ctrl)
		h := NewTemplateHandler(st)

		r := gin.New()
		r.POST("/v1/templates/:id/instantiate", h.InstantiateTemplate)

		st.EXPECT().CreateQuoteFromTemplate(gomock.Any(), "missing").Return(entities.QuoteDetail{}, store.ErrTemplateNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/templates/missing/instantiate", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		st := mocks.NewMockIStore(ctrl)
		h := NewTemplateHandler(st)

		r := gin.New()
		r.POST("/v1/templates/:id/instantiate", h.InstantiateTemplate)

		st.EXPECT().CreateQuoteFromTemplate(gomock.Any(), "t1").Return(sampleDetail("q-new"), nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/templates/t1/instantiate", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestMapTemplateError(t *testing.T) {
	if got := mapTemplateError(store.ErrTemplateNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapTemplateError(store.ErrNoSections); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapTemplateError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
