package routes

import (
	"quotely/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes    = "/quotes"
	PathTemplates = "/templates"
	PathProjects  = "/projects"
	PathContacts  = "/contacts"
	PathDomains   = "/domains"
	PathShared    = "/shared"
	PathSearch    = "/search"
)

func addQuotelyRoutes(
	rg *gin.RouterGroup,
	quoteHandler *handlers.QuoteHandler,
	templateHandler *handlers.TemplateHandler,
	catalogHandler *handlers.CatalogHandler,
	shareHandler *handlers.ShareHandler,
	searchHandler *handlers.SearchHandler,
) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.GET("", quoteHandler.ListQuotes)
		quotes.POST("", quoteHandler.CreateQuote)
		quotes.GET("/:id", quoteHandler.GetQuote)
		quotes.PUT("/:id", quoteHandler.SaveQuote)
		quotes.DELETE("/:id", quoteHandler.DeleteQuote)
		quotes.POST("/:id/duplicate", quoteHandler.DuplicateQuote)
		quotes.PATCH("/:id/sections/move", quoteHandler.MoveSection)
		quotes.PATCH("/:id/items/move", quoteHandler.MoveLineItem)
		quotes.DELETE("/:id/sections/:section_id", quoteHandler.DeleteSection)
	}

	templates := rg.Group(PathTemplates)
	{
		templates.GET("", templateHandler.ListTemplates)
		templates.POST("", templateHandler.CreateTemplate)
		templates.GET("/:id", templateHandler.GetTemplate)
		templates.PUT("/:id", templateHandler.SaveTemplate)
		templates.POST("/:id/instantiate", templateHandler.InstantiateTemplate)
	}

	projects := rg.Group(PathProjects)
	{
		projects.GET("", catalogHandler.ListProjects)
		projects.POST("", catalogHandler.SaveProject)
		projects.DELETE("/:id", catalogHandler.DeleteProject)
	}

	contacts := rg.Group(PathContacts)
	{
		contacts.GET("", catalogHandler.ListContacts)
		contacts.POST("", catalogHandler.SaveContact)
		contacts.DELETE("/:id", catalogHandler.DeleteContact)
	}

	domains := rg.Group(PathDomains)
	{
		domains.GET("", catalogHandler.ListDomains)
		domains.POST("", catalogHandler.SaveDomain)
		domains.DELETE("/:id", catalogHandler.DeleteDomain)
	}

	shared := rg.Group(PathShared)
	{
		// Client-facing routes resolved by share token, not id.
		shared.GET("/:token", shareHandler.GetSharedQuote)
		shared.POST("/:token/approve", shareHandler.ApproveSharedQuote)
	}

	rg.GET(PathSearch, searchHandler.Search)
}
