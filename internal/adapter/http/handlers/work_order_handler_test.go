package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	response "mecanica_workorder/internal/adapter/http/dto/response"
	"mecanica_workorder/internal/adapter/http/handlers/mocks"
	"mecanica_workorder/internal/domain/entities"
	"mecanica_workorder/internal/usecase"
	"mecanica_workorder/pkg"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

const summaryRoute = "/v1/vehicles/:plate/work-order-summary"

func fullSummary() entities.FullSummary {
	record := entities.MaintenanceRecord{
		ID:         1,
		LaborHours: decimal.RequireFromString("3.5"),
		LaborRate:  decimal.NewFromInt(45),
	}
	parts := []entities.MaintenancePart{
		{MaintenanceID: 1, PartID: 1, UnitPrice: decimal.NewFromInt(250)},
		{MaintenanceID: 1, PartID: 3, UnitPrice: decimal.NewFromInt(300)},
		{MaintenanceID: 1, PartID: 4, UnitPrice: decimal.NewFromInt(300)},
	}
	return entities.NewFullSummary("RAD-123Z", record, parts)
}

func serve(h *WorkOrderHandler, target string) *httptest.ResponseRecorder {
	r := gin.New()
	r.GET(summaryRoute, h.GetWorkOrderSummary)
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) pkg.HTTPError {
	t.Helper()
	var body pkg.HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestWorkOrderHandler_GetWorkOrderSummary(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("full summary as json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderSummaryUseCase(ctrl)
		h := NewWorkOrderHandler(uc, time.Second, nil)

		uc.EXPECT().Build(gomock.Any(), "RAD-123Z").Return(fullSummary(), nil)

		w := serve(h, "/v1/vehicles/RAD-123Z/work-order-summary")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body response.WorkOrderSummaryResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body.Kind != response.KindFull || body.Plate != "RAD-123Z" {
			t.Fatalf("unexpected body: %+v", body)
		}
		if body.OverallTotalCost == nil || !body.OverallTotalCost.Equal(decimal.RequireFromString("1007.5")) {
			t.Fatalf("unexpected overall total: %s", w.Body.String())
		}
		if len(body.PartsUsed) != 3 {
			t.Fatalf("expected 3 parts, got %v", body.PartsUsed)
		}
		if !strings.Contains(w.Body.String(), `"total_labor_cost":"157.5"`) {
			t.Fatalf("expected exact labor cost string, got %s", w.Body.String())
		}
	})

	t.Run("full summary as text", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderSummaryUseCase(ctrl)
		h := NewWorkOrderHandler(uc, 0, nil)

		uc.EXPECT().Build(gomock.Any(), "RAD-123Z").Return(fullSummary(), nil)

		w := serve(h, "/v1/vehicles/RAD-123Z/work-order-summary?format=text")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.HasPrefix(w.Header().Get("Content-Type"), "text/plain") {
			t.Fatalf("expected text/plain, got %q", w.Header().Get("Content-Type"))
		}
		if !strings.Contains(w.Body.String(), "Parts Used (IDs)    : 1, 3, 4") {
			t.Fatalf("unexpected report:\n%s", w.Body.String())
		}
	})

	t.Run("no parts summary", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderSummaryUseCase(ctrl)
		h := NewWorkOrderHandler(uc, time.Second, nil)

		uc.EXPECT().Build(gomock.Any(), "RAD-123Z").Return(entities.NewNoPartsSummary("RAD-123Z"), nil)

		w := serve(h, "/v1/vehicles/RAD-123Z/work-order-summary")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body response.WorkOrderSummaryResponse
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Kind != response.KindNoParts || body.Message != entities.NoPartsMessage {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("blank plate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderSummaryUseCase(ctrl)
		h := NewWorkOrderHandler(uc, time.Second, nil)

		w := serve(h, "/v1/vehicles/%20%20/work-order-summary")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if got := decodeError(t, w).Code; got != "INVALID_REQUEST" {
			t.Fatalf("expected INVALID_REQUEST, got %s", got)
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderSummaryUseCase(ctrl)
		h := NewWorkOrderHandler(uc, time.Second, nil)

		w := serve(h, "/v1/vehicles/RAD-123Z/work-order-summary?format=xml")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("build runs under deadline", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderSummaryUseCase(ctrl)
		h := NewWorkOrderHandler(uc, time.Minute, nil)

		uc.EXPECT().Build(gomock.Any(), "RAD-123Z").DoAndReturn(func(ctx context.Context, _ string) (entities.WorkOrderResult, error) {
			if _, ok := ctx.Deadline(); !ok {
				t.Fatalf("expected context deadline")
			}
			return entities.NewNoPartsSummary("RAD-123Z"), nil
		})

		w := serve(h, "/v1/vehicles/RAD-123Z/work-order-summary")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("usecase errors are mapped", func(t *testing.T) {
		cases := []struct {
			name   string
			err    error
			status int
			code   string
		}{
			{"invalid plate", usecase.ErrInvalidPlate, http.StatusBadRequest, "INVALID_REQUEST"},
			{"not found", &usecase.NotFoundError{Plate: "RAD-123Z", Reason: "vehicle not found"}, http.StatusNotFound, "WORK_ORDER_NOT_FOUND"},
			{"data access", &usecase.DataAccessError{Op: "find vehicle by plate", Err: errors.New("boom")}, http.StatusServiceUnavailable, "DATA_ACCESS_ERROR"},
			{"unexpected", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()
				uc := mocks.NewMockIWorkOrderSummaryUseCase(ctrl)
				h := NewWorkOrderHandler(uc, time.Second, nil)

				uc.EXPECT().Build(gomock.Any(), "RAD-123Z").Return(nil, tc.err)

				w := serve(h, "/v1/vehicles/RAD-123Z/work-order-summary")
				if w.Code != tc.status {
					t.Fatalf("expected %d, got %d", tc.status, w.Code)
				}
				body := decodeError(t, w)
				if body.Code != tc.code {
					t.Fatalf("expected %s, got %s", tc.code, body.Code)
				}
				if strings.Contains(body.Message, "boom") {
					t.Fatalf("driver error leaked into response: %q", body.Message)
				}
			})
		}
	})
}
