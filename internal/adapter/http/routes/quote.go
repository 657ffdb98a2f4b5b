package routes

import (
	"wiz_adquote/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes = "/quotes"
)

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("/preview", quoteHandler.Preview)
		quotes.POST("/generate", quoteHandler.Generate)
		quotes.POST("/send", quoteHandler.Send)
		quotes.GET("/artifacts/:id", quoteHandler.DownloadArtifact)
	}
}
