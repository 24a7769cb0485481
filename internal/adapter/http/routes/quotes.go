package routes

import (
	"prowash_quote/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCatalog  = "/catalog"
	PathQuotes   = "/quotes"
	PathSessions = "/sessions"
)

func addQuoteRoutes(rg *gin.RouterGroup, estimateHandler *handlers.EstimateHandler, flowHandler *handlers.FlowHandler) {
	rg.GET(PathCatalog, estimateHandler.GetCatalog)

	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("/estimate", estimateHandler.EstimateQuote)
	}

	sessions := rg.Group(PathSessions)
	{
		sessions.POST("", flowHandler.StartSession)
		sessions.GET("/:id", flowHandler.GetSession)
		sessions.POST("/:id/intake", flowHandler.SubmitIntake)
		sessions.POST("/:id/confirm", flowHandler.ConfirmSession)
	}
}

// addPageRoutes mounts the browser flow at the site root.
func addPageRoutes(r *gin.RouterGroup, pageHandler *handlers.PageHandler) {
	r.GET("/", pageHandler.Index)
	r.POST("/quote", pageHandler.SubmitIntake)
	r.POST("/quote/confirm", pageHandler.Confirm)
}
