package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"prowash_quote/internal/adapter/http/handlers/mocks"
	"prowash_quote/internal/domain/entities"
	"prowash_quote/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newFlowRouter(h *FlowHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/sessions", h.StartSession)
	r.GET("/v1/sessions/:id", h.GetSession)
	r.POST("/v1/sessions/:id/intake", h.SubmitIntake)
	r.POST("/v1/sessions/:id/confirm", h.ConfirmSession)
	return r
}

func collectingView(id string) usecase.FlowView {
	form := usecase.DefaultIntakeForm()
	return usecase.FlowView{
		Session: entities.NewFlowSession(id, time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)),
		Form:    &form,
	}
}

func TestFlowHandler_StartSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIFlowUseCase(ctrl)
	r := newFlowRouter(NewFlowHandler(uc))

	uc.EXPECT().Start(gomock.Any()).Return(collectingView("s-1"), nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/sessions", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unexpected body: %v", err)
	}
	if resp["session_id"] != "s-1" || resp["stage"] != "collecting" {
		t.Fatalf("unexpected session: %v", resp)
	}
}

func TestFlowHandler_GetSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFlowUseCase(ctrl)
		r := newFlowRouter(NewFlowHandler(uc))

		uc.EXPECT().Get(gomock.Any(), "missing").Return(usecase.FlowView{}, usecase.ErrFlowSessionNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/sessions/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFlowUseCase(ctrl)
		r := newFlowRouter(NewFlowHandler(uc))

		uc.EXPECT().Get(gomock.Any(), "s-1").Return(collectingView("s-1"), nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/sessions/s-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestFlowHandler_SubmitIntake(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFlowUseCase(ctrl)
		r := newFlowRouter(NewFlowHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/sessions/s-1/intake", bytes.NewBufferString(`{"propertySize":"big"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("wrong stage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFlowUseCase(ctrl)
		r := newFlowRouter(NewFlowHandler(uc))

		uc.EXPECT().SubmitIntake(gomock.Any(), "s-1", gomock.Any()).
			Return(usecase.FlowView{}, fmt.Errorf("%w: validated on confirming", entities.ErrInvalidFlowTransition))

		req := httptest.NewRequest(http.MethodPost, "/v1/sessions/s-1/intake", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("validation failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFlowUseCase(ctrl)
		r := newFlowRouter(NewFlowHandler(uc))

		uc.EXPECT().SubmitIntake(gomock.Any(), "s-1", gomock.Any()).
			Return(collectingView("s-1"), &usecase.ValidationError{Fields: map[string][]string{"phone": {"Phone is required."}}})

		req := httptest.NewRequest(http.MethodPost, "/v1/sessions/s-1/intake", bytes.NewBufferString(`{"name":"A"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte("Phone is required.")) {
			t.Fatalf("expected field message in body, got %s", w.Body.String())
		}
	})
}

func TestFlowHandler_ConfirmSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name string
		err  error
		want int
	}{
		{name: "relay rejected", err: &entities.RelayRejectedError{StatusCode: 200, Message: "bad key"}, want: http.StatusBadGateway},
		{name: "transport failure", err: &entities.TransportError{Err: errors.New("dial tcp: refused")}, want: http.StatusBadGateway},
		{name: "in flight", err: usecase.ErrSubmissionInProgress, want: http.StatusConflict},
		{name: "unexpected", err: errors.New("boom"), want: http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIFlowUseCase(ctrl)
			r := newFlowRouter(NewFlowHandler(uc))

			uc.EXPECT().Confirm(gomock.Any(), "s-1").Return(usecase.FlowView{}, tc.err)

			req := httptest.NewRequest(http.MethodPost, "/v1/sessions/s-1/confirm", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
		})
	}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFlowUseCase(ctrl)
		r := newFlowRouter(NewFlowHandler(uc))

		uc.EXPECT().Confirm(gomock.Any(), "s-1").Return(collectingView("s-1"), nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/sessions/s-1/confirm", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte(SubmissionAckMessage)) {
			t.Fatalf("expected ack message, got %s", w.Body.String())
		}
	})
}
