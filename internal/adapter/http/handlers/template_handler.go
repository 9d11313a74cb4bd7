package handlers

import (
	"errors"
	"net/http"

	request "quotely/internal/adapter/http/dto/request"
	response "quotely/internal/adapter/http/dto/response"
	"quotely/internal/store"
	"quotely/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidTemplatePayload = pkg.NewDomainErrorSimple("INVALID_TEMPLATE_INPUT", "Invalid template payload", http.StatusBadRequest)
)

// TemplateHandler handles HTTP requests for quote templates. Templates
// share the quote shape but live in their own collection and are never
// shared or approved.
type TemplateHandler struct {
	store store.IStore
}

func NewTemplateHandler(s store.IStore) *TemplateHandler {
	return &TemplateHandler{store: s}
}

func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromQuotes(h.store.ListTemplates()))
}

func (h *TemplateHandler) GetTemplate(c *gin.Context) {
	detail, err := h.store.GetTemplateDetail(c.Param("id"))
	if err != nil {
		appErr := mapTemplateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteDetail(detail))
}

func (h *TemplateHandler) CreateTemplate(c *gin.Context) {
	var payload request.CreateQuoteRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidTemplatePayload.HTTPStatus, errInvalidTemplatePayload.ToHTTPError())
			return
		}
	}

	detail, err := h.store.CreateTemplate(c.Request.Context(), payload.CreatedBy)
	if err != nil {
		appErr := mapTemplateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromQuoteDetail(detail))
}

func (h *TemplateHandler) SaveTemplate(c *gin.Context) {
	var payload request.SaveQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTemplatePayload.HTTPStatus, errInvalidTemplatePayload.ToHTTPError())
		return
	}

	template, err := h.store.SaveTemplateDetails(c.Request.Context(), payload.ToDetail(c.Param("id")))
	if err != nil {
		appErr := mapTemplateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(template))
}

// InstantiateTemplate creates a fresh Draft quote from the template's
// current content.
func (h *TemplateHandler) InstantiateTemplate(c *gin.Context) {
	detail, err := h.store.CreateQuoteFromTemplate(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapTemplateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromQuoteDetail(detail))
}

func mapTemplateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, store.ErrQuoteInvalid),
		errors.Is(err, store.ErrNoSections),
		errors.Is(err, store.ErrNegativeHours),
		errors.Is(err, store.ErrUnknownSection):
		return pkg.NewDomainErrorSimple("INVALID_TEMPLATE_INPUT", "Invalid template payload", http.StatusBadRequest)
	case errors.Is(err, store.ErrTemplateNotFound):
		return pkg.NewDomainErrorSimple("TEMPLATE_NOT_FOUND", "Template not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
