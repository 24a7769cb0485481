package handlers

import (
	"net/http"
	request "prowash_quote/internal/adapter/http/dto/request"
	response "prowash_quote/internal/adapter/http/dto/response"
	"prowash_quote/internal/usecase"

	"github.com/gin-gonic/gin"
)

// EstimateHandler serves the stateless pricing endpoints.

type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// EstimateQuote prices an intake payload without touching any session.
//
// @Summary      Estimate a quote
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        intake  body      request.IntakeRequest  true  "Intake form"
// @Success      200     {object}  response.QuoteResponse
// @Failure      400     {object}  pkg.HTTPError
// @Failure      422     {object}  pkg.HTTPError
// @Router       /quotes/estimate [post]
func (h *EstimateHandler) EstimateQuote(c *gin.Context) {
	var payload request.IntakeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidIntakePayload.HTTPStatus, errInvalidIntakePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.EstimateIntake(payload.ToIntakeForm())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// GetCatalog returns the add-on services and condition multipliers.
//
// @Summary      Pricing catalog
// @Tags         quotes
// @Produce      json
// @Success      200  {object}  response.CatalogResponse
// @Router       /catalog [get]
func (h *EstimateHandler) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromCatalog(h.usecase.Catalog()))
}
