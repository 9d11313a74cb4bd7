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
	errInvalidCatalogPayload = pkg.NewDomainErrorSimple("INVALID_CATALOG_INPUT", "Invalid payload", http.StatusBadRequest)
)

// CatalogHandler handles HTTP requests for the supporting collections:
// projects, contacts and business domains.
type CatalogHandler struct {
	store store.IStore
}

func NewCatalogHandler(s store.IStore) *CatalogHandler {
	return &CatalogHandler{store: s}
}

// --- Projects ---

func (h *CatalogHandler) ListProjects(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromProjects(h.store.ListProjects()))
}

func (h *CatalogHandler) SaveProject(c *gin.Context) {
	var payload request.SaveProjectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	project, err := h.store.SaveProject(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProject(project))
}

func (h *CatalogHandler) DeleteProject(c *gin.Context) {
	if err := h.store.DeleteProject(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// --- Contacts ---

func (h *CatalogHandler) ListContacts(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromContacts(h.store.ListContacts()))
}

func (h *CatalogHandler) SaveContact(c *gin.Context) {
	var payload request.SaveContactRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	contact, err := h.store.SaveContact(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromContact(contact))
}

func (h *CatalogHandler) DeleteContact(c *gin.Context) {
	if err := h.store.DeleteContact(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// --- Business domains ---

func (h *CatalogHandler) ListDomains(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromDomains(h.store.ListDomains()))
}

func (h *CatalogHandler) SaveDomain(c *gin.Context) {
	var payload request.SaveDomainRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	domain, err := h.store.SaveDomain(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDomain(domain))
}

func (h *CatalogHandler) DeleteDomain(c *gin.Context) {
	if err := h.store.DeleteDomain(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, store.ErrContactInvalid), errors.Is(err, store.ErrDomainInvalid):
		return pkg.NewDomainErrorSimple("INVALID_CATALOG_INPUT", "Invalid payload", http.StatusBadRequest)
	case errors.Is(err, store.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	case errors.Is(err, store.ErrContactNotFound):
		return pkg.NewDomainErrorSimple("CONTACT_NOT_FOUND", "Contact not found", http.StatusNotFound)
	case errors.Is(err, store.ErrDomainNotFound):
		return pkg.NewDomainErrorSimple("DOMAIN_NOT_FOUND", "Business domain not found", http.StatusNotFound)
	case errors.Is(err, store.ErrProjectInUse):
		return pkg.NewDomainErrorSimple("PROJECT_IN_USE", "Project is referenced by existing quotes", http.StatusConflict)
	case errors.Is(err, store.ErrContactInUse):
		return pkg.NewDomainErrorSimple("CONTACT_IN_USE", "Contact is referenced by existing quotes", http.StatusConflict)
	case errors.Is(err, store.ErrDomainInUse):
		return pkg.NewDomainErrorSimple("DOMAIN_IN_USE", "Business domain is referenced by existing quotes", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
