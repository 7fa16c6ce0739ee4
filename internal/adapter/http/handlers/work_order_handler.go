package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	request "mecanica_workorder/internal/adapter/http/dto/request"
	response "mecanica_workorder/internal/adapter/http/dto/response"
	"mecanica_workorder/internal/adapter/presenter"
	"mecanica_workorder/internal/usecase"
	"mecanica_workorder/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errInvalidFormat  = pkg.NewDomainErrorSimple("INVALID_REQUEST", "format must be json or text", http.StatusBadRequest)
)

// WorkOrderHandler serves the work order summary of a vehicle.
type WorkOrderHandler struct {
	usecase usecase.IWorkOrderSummaryUseCase
	timeout time.Duration
	logger  *zap.Logger
}

// NewWorkOrderHandler bounds every summary build by timeout. A zero timeout
// leaves the request context untouched.
func NewWorkOrderHandler(uc usecase.IWorkOrderSummaryUseCase, timeout time.Duration, logger *zap.Logger) *WorkOrderHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WorkOrderHandler{usecase: uc, timeout: timeout, logger: logger}
}

// GetWorkOrderSummary godoc
// @Summary      Work order summary
// @Description  Cost breakdown of the latest maintenance record of a vehicle
// @Tags         work-orders
// @Produce      json
// @Produce      plain
// @Param        plate   path      string  true   "Vehicle plate number"
// @Param        format  query     string  false  "json (default) or text"
// @Success      200     {object}  response.WorkOrderSummaryResponse
// @Failure      400     {object}  pkg.HTTPError
// @Failure      404     {object}  pkg.HTTPError
// @Failure      500     {object}  pkg.HTTPError
// @Failure      503     {object}  pkg.HTTPError
// @Router       /vehicles/{plate}/work-order-summary [get]
func (h *WorkOrderHandler) GetWorkOrderSummary(c *gin.Context) {
	var req request.WorkOrderSummaryRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	plate := req.ResolvePlate()
	if plate == "" {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	format, err := req.ResolveFormat()
	if err != nil {
		c.JSON(errInvalidFormat.HTTPStatus, errInvalidFormat.ToHTTPError())
		return
	}

	ctx := c.Request.Context()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	result, err := h.usecase.Build(ctx, plate)
	if err != nil {
		appErr := mapWorkOrderError(err)
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			h.logger.Error("work order summary failed", zap.String("plate", plate), zap.Error(err))
		}
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if format == request.FormatText {
		c.String(http.StatusOK, presenter.RenderText(result))
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrderResult(result))
}

func mapWorkOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPlate):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWorkOrderNotFound):
		return pkg.NewDomainError("WORK_ORDER_NOT_FOUND", "No maintenance record found for this plate", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrDataAccess):
		return pkg.NewDomainError("DATA_ACCESS_ERROR", "Work order store unavailable", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
