package handlers

import (
	"net/http"
	request "prowash_quote/internal/adapter/http/dto/request"
	response "prowash_quote/internal/adapter/http/dto/response"
	"prowash_quote/internal/usecase"

	"github.com/gin-gonic/gin"
)

// SubmissionAckMessage is shown once the relay accepted a lead.
const SubmissionAckMessage = "Thank you for availing our service!"

// FlowHandler exposes the quote flow as a JSON API.

type FlowHandler struct {
	usecase usecase.IFlowUseCase
}

func NewFlowHandler(uc usecase.IFlowUseCase) *FlowHandler {
	return &FlowHandler{usecase: uc}
}

// StartSession opens a new flow in the collecting stage.
//
// @Summary      Start a quote session
// @Tags         sessions
// @Produce      json
// @Success      201  {object}  response.FlowSessionResponse
// @Router       /sessions [post]
func (h *FlowHandler) StartSession(c *gin.Context) {
	view, err := h.usecase.Start(c.Request.Context())
	if err != nil {
		h.abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromFlowView(view))
}

// GetSession returns the current stage with its quote or form defaults.
//
// @Summary      Get a quote session
// @Tags         sessions
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  response.FlowSessionResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /sessions/{id} [get]
func (h *FlowHandler) GetSession(c *gin.Context) {
	view, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.abort(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromFlowView(view))
}

// SubmitIntake validates the intake and moves the session to confirming.
//
// @Summary      Submit the intake form
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        id      path      string                 true  "Session ID"
// @Param        intake  body      request.IntakeRequest  true  "Intake form"
// @Success      200     {object}  response.FlowSessionResponse
// @Failure      404     {object}  pkg.HTTPError
// @Failure      409     {object}  pkg.HTTPError
// @Failure      422     {object}  pkg.HTTPError
// @Router       /sessions/{id}/intake [post]
func (h *FlowHandler) SubmitIntake(c *gin.Context) {
	var payload request.IntakeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidIntakePayload.HTTPStatus, errInvalidIntakePayload.ToHTTPError())
		return
	}

	view, err := h.usecase.SubmitIntake(c.Request.Context(), c.Param("id"), payload.ToIntakeForm())
	if err != nil {
		h.abort(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromFlowView(view))
}

// ConfirmSession forwards the quote to the relay and resets the flow.
//
// @Summary      Confirm and submit the quote
// @Tags         sessions
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  response.SubmissionAckResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /sessions/{id}/confirm [post]
func (h *FlowHandler) ConfirmSession(c *gin.Context) {
	view, err := h.usecase.Confirm(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.abort(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SubmissionAckResponse{
		Message: SubmissionAckMessage,
		Session: response.FromFlowView(view),
	})
}

func (h *FlowHandler) abort(c *gin.Context, err error) {
	appErr := mapQuoteError(err)
	_ = c.Error(appErr)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
