// api/controller/quote_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	murale_errors "github.com/muralehq/murale/api/errors"
	"github.com/muralehq/murale/api/model"
	"github.com/muralehq/murale/api/service"
	"github.com/muralehq/murale/api/util"
)

type QuoteController struct {
	quoteService service.IQuoteService
}

func NewQuoteController(quoteService service.IQuoteService) *QuoteController {
	return &QuoteController{
		quoteService: quoteService,
	}
}

// RegisterRoutes registers the API routes
func (qc *QuoteController) RegisterRoutes(r *gin.RouterGroup) {
	quotes := r.Group("/quotes")
	{
		quotes.POST("", qc.GetQuote)
		quotes.POST("/invalidate", qc.InvalidateQuote)
	}
}

// GetQuote endpoint
func (qc *QuoteController) GetQuote(c *gin.Context) {
	var req model.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid quote request", murale_errors.ErrInvalidQuoteRequest)
		return
	}

	quote, err := qc.quoteService.GetQuote(c, req)
	if err != nil {
		switch err {
		case murale_errors.ErrInvalidQuoteRequest:
			util.RespondWithError(c, http.StatusBadRequest, "Invalid quote request", err)
		case murale_errors.ErrQuoteProvider:
			util.RespondWithError(c, http.StatusBadGateway, "Print provider unavailable", err)
		case murale_errors.ErrInternalServer:
			util.RespondWithError(c, http.StatusInternalServerError, "Internal server error", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to get quote", murale_errors.ErrInternalServer)
		}
		return
	}

	c.JSON(http.StatusOK, quote)
}

// InvalidateQuote endpoint
func (qc *QuoteController) InvalidateQuote(c *gin.Context) {
	var req model.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid quote request", murale_errors.ErrInvalidQuoteRequest)
		return
	}

	if err := qc.quoteService.InvalidateQuote(c, req); err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to invalidate quote", err)
		return
	}

	c.Status(http.StatusNoContent)
}
