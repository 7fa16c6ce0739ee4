package routes

import (
	"mecanica_workorder/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathVehicles = "/vehicles"
)

func addWorkOrderRoutes(rg *gin.RouterGroup, workOrderHandler *handlers.WorkOrderHandler) {
	vehicles := rg.Group(PathVehicles)
	{
		vehicles.GET("/:plate/work-order-summary", workOrderHandler.GetWorkOrderSummary)
	}
}
