package handlers

import (
	"net/http"

	response "quotely/internal/adapter/http/dto/response"
	"quotely/internal/store"

	"github.com/gin-gonic/gin"
)

// SearchHandler serves the cross-entity lookup behind the omnibox.
type SearchHandler struct {
	store store.IStore
}

func NewSearchHandler(s store.IStore) *SearchHandler {
	return &SearchHandler{store: s}
}

// Search matches the query against every entity type; an empty query
// yields an empty result list, never an error.
func (h *SearchHandler) Search(c *gin.Context) {
	results := h.store.Search(c.Query("q"))
	c.JSON(http.StatusOK, response.FromSearchResults(results))
}
