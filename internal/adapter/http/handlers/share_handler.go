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
	errInvalidApprovalPayload = pkg.NewDomainErrorSimple("INVALID_APPROVAL_INPUT", "Invalid approval payload", http.StatusBadRequest)
)

// ShareHandler serves the external client-facing view: quotes resolved by
// share token rather than id, plus the approval flow.
type ShareHandler struct {
	store store.IStore
}

func NewShareHandler(s store.IStore) *ShareHandler {
	return &ShareHandler{store: s}
}

// GetSharedQuote returns the client view of a quote: hidden sections and
// their items are filtered out and only the client totals are exposed.
func (h *ShareHandler) GetSharedQuote(c *gin.Context) {
	detail, err := h.store.GetQuoteByShareToken(c.Param("token"))
	if err != nil {
		appErr := mapShareError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSharedQuoteDetail(detail))
}

// ApproveSharedQuote transitions the quote to Approved when the submitted
// 5-digit code is valid and the quote's status allows approval.
func (h *ShareHandler) ApproveSharedQuote(c *gin.Context) {
	var payload request.ApproveQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidApprovalPayload.HTTPStatus, errInvalidApprovalPayload.ToHTTPError())
		return
	}

	quote, err := h.store.ApproveQuoteByShareToken(c.Request.Context(), c.Param("token"), payload.Code)
	if err != nil {
		appErr := mapShareError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func mapShareError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, store.ErrInvalidApprovalCode):
		return pkg.NewDomainErrorSimple("INVALID_APPROVAL_CODE", "Approval code must be exactly 5 digits", http.StatusBadRequest)
	case errors.Is(err, store.ErrShareTokenNotFound):
		return pkg.NewDomainErrorSimple("SHARE_TOKEN_NOT_FOUND", "No quote matches this share link", http.StatusNotFound)
	case errors.Is(err, store.ErrApprovalNotAllowed):
		return pkg.NewDomainErrorSimple("APPROVAL_NOT_ALLOWED", "Quote status does not allow approval", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
