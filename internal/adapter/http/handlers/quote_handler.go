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
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
)

// QuoteHandler handles HTTP requests for quotes and their subtrees.
type QuoteHandler struct {
	store store.IStore
}

func NewQuoteHandler(s store.IStore) *QuoteHandler {
	return &QuoteHandler{store: s}
}

func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromQuotes(h.store.ListQuotes()))
}

func (h *QuoteHandler) GetQuote(c *gin.Context) {
	detail, err := h.store.GetQuoteDetail(c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteDetail(detail))
}

func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.CreateQuoteRequest
	// The body is optional for creation; a blank quote needs no input.
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
			return
		}
	}

	detail, err := h.store.CreateQuote(c.Request.Context(), payload.CreatedBy)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromQuoteDetail(detail))
}

// SaveQuote replaces the quote's editable fields and its whole
// section/line-item subtree with the submitted state.
func (h *QuoteHandler) SaveQuote(c *gin.Context) {
	var payload request.SaveQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.store.SaveQuoteDetails(c.Request.Context(), payload.ToDetail(c.Param("id")))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func (h *QuoteHandler) DeleteQuote(c *gin.Context) {
	if err := h.store.DeleteQuote(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *QuoteHandler) DuplicateQuote(c *gin.Context) {
	detail, err := h.store.DuplicateQuote(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromQuoteDetail(detail))
}

func (h *QuoteHandler) MoveSection(c *gin.Context) {
	var payload request.MoveSectionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	sections, err := h.store.MoveSection(c.Request.Context(), c.Param("id"), payload.From, payload.To)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSections(sections))
}

func (h *QuoteHandler) MoveLineItem(c *gin.Context) {
	var payload request.MoveLineItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	items, err := h.store.MoveLineItem(c.Request.Context(), c.Param("id"), payload.FromSectionID, payload.ToSectionID, payload.From, payload.To)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromLineItems(items))
}

// DeleteSection removes a section and re-homes its line items into the
// General section.
func (h *QuoteHandler) DeleteSection(c *gin.Context) {
	if err := h.store.DeleteSection(c.Request.Context(), c.Param("id"), c.Param("section_id")); err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, store.ErrQuoteInvalid),
		errors.Is(err, store.ErrNoSections),
		errors.Is(err, store.ErrNegativeHours),
		errors.Is(err, store.ErrUnknownSection):
		return pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
	case errors.Is(err, store.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, store.ErrSectionNotFound):
		return pkg.NewDomainErrorSimple("SECTION_NOT_FOUND", "Section not found", http.StatusNotFound)
	case errors.Is(err, store.ErrNoGeneralSection):
		return pkg.NewDomainErrorSimple("NO_GENERAL_SECTION", "Quote has no General section to adopt the orphaned items", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
