package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"prowash_quote/internal/adapter/http/handlers/mocks"
	"prowash_quote/internal/domain/entities"
	"prowash_quote/internal/usecase"
	"prowash_quote/pkg"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/mock/gomock"
)

func TestEstimateHandler_EstimateQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/estimate", h.EstimateQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/estimate", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation failure carries field details", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/estimate", h.EstimateQuote)

		fields := map[string][]string{"name": {"Name is required."}}
		uc.EXPECT().EstimateIntake(gomock.Any()).Return(entities.Quote{}, &usecase.ValidationError{Fields: fields})

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/estimate", bytes.NewBufferString(`{"phone":"555"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		var body pkg.HTTPError
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if body.Code != "VALIDATION_FAILED" {
			t.Fatalf("expected VALIDATION_FAILED, got %s", body.Code)
		}
		if diff := cmp.Diff(fields, body.Details); diff != "" {
			t.Fatalf("unexpected details (-want +got):\n%s", diff)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/estimate", h.EstimateQuote)

		size := 1000.0
		want := usecase.IntakeForm{
			Name:               "A",
			Phone:              "555",
			Address:            "1 Main St",
			PropertyType:       "residential",
			PropertySize:       &size,
			SurfaceCondition:   3,
			AdditionalServices: []int{70, 35},
		}
		quote := usecase.Estimate(entities.IntakeRecord{
			Name: "A", Phone: "555", Address: "1 Main St",
			PropertyType: entities.PropertyTypeResidential, PropertySize: 1000,
			SurfaceCondition: 3, AdditionalServices: []int{70, 35},
		})
		uc.EXPECT().EstimateIntake(gomock.Any()).DoAndReturn(func(got usecase.IntakeForm) (entities.Quote, error) {
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("unexpected form (-want +got):\n%s", diff)
			}
			return quote, nil
		})

		body := `{"name":"A","phone":"555","address":"1 Main St","propertyType":"residential","propertySize":1000,"additionalServices":[70,35]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/estimate", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if resp["totalCost"] != 5105.0 || resp["displayTotal"] != "$5105" {
			t.Fatalf("unexpected totals: %v %v", resp["totalCost"], resp["displayTotal"])
		}
	})
}

func TestEstimateHandler_GetCatalog(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIEstimateUseCase(ctrl)
	h := NewEstimateHandler(uc)

	r := gin.New()
	r.GET("/v1/catalog", h.GetCatalog)

	uc.EXPECT().Catalog().Return(usecase.NewEstimateUseCase().Catalog())

	req := httptest.NewRequest(http.MethodGet, "/v1/catalog", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte(`"Driveway Cleaning ($45)"`)) {
		t.Fatalf("expected driveway label in body, got %s", w.Body.String())
	}
}
