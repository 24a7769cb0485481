package handlers

import (
	"errors"
	"net/http"
	request "prowash_quote/internal/adapter/http/dto/request"
	"prowash_quote/internal/adapter/http/templates"
	"prowash_quote/internal/domain/entities"
	"prowash_quote/internal/usecase"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
)

// SessionCookieName carries the flow session id of a browser visitor.
const SessionCookieName = "prowash_session"

// PageHandler renders the server-side quote flow: the intake form while
// collecting, the confirmation view while confirming.

type PageHandler struct {
	usecase      usecase.IFlowUseCase
	cookieMaxAge int
	cookieSecure bool
	logger       *zap.Logger
}

func NewPageHandler(uc usecase.IFlowUseCase, sessionTTL time.Duration, cookieSecure bool, logger *zap.Logger) *PageHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PageHandler{
		usecase:      uc,
		cookieMaxAge: int(sessionTTL / time.Second),
		cookieSecure: cookieSecure,
		logger:       logger,
	}
}

type formValues struct {
	Name             string
	Phone            string
	Address          string
	PropertyType     string
	PropertySize     string
	SurfaceCondition string
}

type serviceOption struct {
	ID      int
	Label   string
	Checked bool
}

type formPage struct {
	Values   formValues
	Errors   map[string][]string
	Services []serviceOption
}

type confirmPage struct {
	Name             string
	Phone            string
	Address          string
	PropertyType     string
	PropertySize     string
	SurfaceCondition int
	Services         []string
	Total            string
}

type messagePage struct {
	Message string
}

// Index renders whatever the visitor's session is waiting for, starting a
// new session when the cookie is missing or stale.
func (h *PageHandler) Index(c *gin.Context) {
	view, err := h.currentSession(c)
	if err != nil {
		h.renderError(c, err)
		return
	}

	if view.Quote != nil {
		c.HTML(http.StatusOK, templates.PageConfirm, newConfirmPage(*view.Quote))
		return
	}
	form := usecase.DefaultIntakeForm()
	if view.Form != nil {
		form = *view.Form
	}
	c.HTML(http.StatusOK, templates.PageForm, newFormPage(valuesFromForm(form), form.AdditionalServices, nil))
}

// SubmitIntake handles the intake form post. Invalid input re-renders the
// form with the visitor's values and per-field messages.
func (h *PageHandler) SubmitIntake(c *gin.Context) {
	view, err := h.currentSession(c)
	if err != nil {
		h.renderError(c, err)
		return
	}

	var payload request.IntakeFormRequest
	if err := c.ShouldBindWith(&payload, binding.Form); err != nil {
		h.logger.Debug("[quote][page] form binding failed", zap.Error(err))
	}
	form := payload.ToIntakeForm()

	_, err = h.usecase.SubmitIntake(c.Request.Context(), view.Session.ID, form)
	var validationErr *usecase.ValidationError
	switch {
	case err == nil:
		c.Redirect(http.StatusSeeOther, "/")
	case errors.As(err, &validationErr):
		c.HTML(http.StatusUnprocessableEntity, templates.PageForm,
			newFormPage(valuesFromRequest(payload), form.AdditionalServices, validationErr.Fields))
	case errors.Is(err, entities.ErrInvalidFlowTransition):
		c.Redirect(http.StatusSeeOther, "/")
	default:
		h.renderError(c, err)
	}
}

// Confirm submits the quote. Success shows the acknowledgement; any failure
// sends the visitor back to the confirmation view to retry.
func (h *PageHandler) Confirm(c *gin.Context) {
	id, err := c.Cookie(SessionCookieName)
	if err != nil || strings.TrimSpace(id) == "" {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	if _, err := h.usecase.Confirm(c.Request.Context(), id); err != nil {
		h.logger.Warn("[quote][page] confirm failed", zap.String("session_id", id), zap.Error(err))
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	c.HTML(http.StatusOK, templates.PageSuccess, messagePage{Message: SubmissionAckMessage})
}

func (h *PageHandler) currentSession(c *gin.Context) (usecase.FlowView, error) {
	ctx := c.Request.Context()
	if id, err := c.Cookie(SessionCookieName); err == nil && id != "" {
		view, err := h.usecase.Get(ctx, id)
		if err == nil {
			return view, nil
		}
		if !errors.Is(err, usecase.ErrFlowSessionNotFound) && !errors.Is(err, usecase.ErrInvalidFlowSessionID) {
			return usecase.FlowView{}, err
		}
	}

	view, err := h.usecase.Start(ctx)
	if err != nil {
		return usecase.FlowView{}, err
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, view.Session.ID, h.cookieMaxAge, "/", "", h.cookieSecure, true)
	return view, nil
}

func (h *PageHandler) renderError(c *gin.Context, err error) {
	appErr := mapQuoteError(err)
	h.logger.Error("[quote][page] request failed", zap.String("code", appErr.Code), zap.Error(err))
	_ = c.Error(appErr)
	c.HTML(appErr.HTTPStatus, templates.PageError, messagePage{Message: appErr.Message})
}

func newFormPage(values formValues, selected []int, fieldErrors map[string][]string) formPage {
	if fieldErrors == nil {
		fieldErrors = map[string][]string{}
	}
	checked := make(map[int]bool, len(selected))
	for _, id := range selected {
		checked[id] = true
	}
	catalog := entities.ServiceCatalog()
	services := make([]serviceOption, 0, len(catalog))
	for _, s := range catalog {
		services = append(services, serviceOption{ID: s.ID, Label: s.DisplayLabel(), Checked: checked[s.ID]})
	}
	return formPage{Values: values, Errors: fieldErrors, Services: services}
}

func valuesFromForm(f usecase.IntakeForm) formValues {
	v := formValues{
		Name:             f.Name,
		Phone:            f.Phone,
		Address:          f.Address,
		PropertyType:     f.PropertyType,
		SurfaceCondition: strconv.Itoa(f.SurfaceCondition),
	}
	if f.PropertySize != nil {
		v.PropertySize = entities.FormatNumber(*f.PropertySize)
	}
	return v
}

func valuesFromRequest(r request.IntakeFormRequest) formValues {
	condition := strings.TrimSpace(r.SurfaceCondition)
	if condition == "" {
		condition = strconv.Itoa(entities.DefaultSurfaceCondition)
	}
	return formValues{
		Name:             r.Name,
		Phone:            r.Phone,
		Address:          r.Address,
		PropertyType:     strings.ToLower(strings.TrimSpace(r.PropertyType)),
		PropertySize:     strings.TrimSpace(r.PropertySize),
		SurfaceCondition: condition,
	}
}

func newConfirmPage(q entities.Quote) confirmPage {
	return confirmPage{
		Name:             q.Record.Name,
		Phone:            q.Record.Phone,
		Address:          q.Record.Address,
		PropertyType:     string(q.Record.PropertyType),
		PropertySize:     entities.FormatNumber(q.Record.PropertySize),
		SurfaceCondition: q.Record.SurfaceCondition,
		Services:         q.ServiceLabels(),
		Total:            entities.FormatPrice(q.TotalCost),
	}
}
