package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/fieldflow_pm/internal/core/ports/services"
	"github.com/SscSPs/fieldflow_pm/internal/dto"
	"github.com/gin-gonic/gin"
)

// costHandler serves budget lines and change orders.
type costHandler struct {
	costService        portssvc.CostSvcFacade
	changeOrderService portssvc.ChangeOrderSvcFacade
}

func newCostHandler(cs portssvc.CostSvcFacade, cos portssvc.ChangeOrderSvcFacade) *costHandler {
	return &costHandler{costService: cs, changeOrderService: cos}
}

func registerCostRoutes(rg *gin.RouterGroup, costService portssvc.CostSvcFacade, changeOrderService portssvc.ChangeOrderSvcFacade) {
	h := newCostHandler(costService, changeOrderService)

	projects := rg.Group("/projects/:id")
	{
		projects.GET("/costs", h.listCosts)
		projects.POST("/costs", h.createCost)
		projects.GET("/costs/summary", h.costSummary)

		projects.GET("/change-orders", h.listChangeOrders)
		projects.POST("/change-orders", h.createChangeOrder)
	}

	costs := rg.Group("/costs")
	{
		costs.PUT("/:id", h.updateCost)
		costs.DELETE("/:id", h.deleteCost)
	}

	orders := rg.Group("/change-orders")
	{
		orders.PUT("/:id/approve", h.approveChangeOrder)
		orders.PUT("/:id/reject", h.rejectChangeOrder)
	}
}

func (h *costHandler) listCosts(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	projectID, ok := idParam(c, "id")
	if !ok {
		return
	}
	costs, err := h.costService.ListCostCategories(c.Request.Context(), user, projectID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, costs)
}

func (h *costHandler) createCost(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	projectID, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req dto.CreateCostCategoryRequest
	if !bindJSON(c, &req) {
		return
	}
	cost, err := h.costService.CreateCostCategory(c.Request.Context(), user, projectID, req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cost)
}

func (h *costHandler) costSummary(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	projectID, ok := idParam(c, "id")
	if !ok {
		return
	}
	summary, err := h.costService.GetCostSummary(c.Request.Context(), user, projectID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *costHandler) updateCost(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	costID, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateCostCategoryRequest
	if !bindJSON(c, &req) {
		return
	}
	cost, err := h.costService.UpdateCostCategory(c.Request.Context(), user, costID, req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, cost)
}

func (h *costHandler) deleteCost(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	costID, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.costService.DeleteCostCategory(c.Request.Context(), user, costID); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *costHandler) listChangeOrders(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	projectID, ok := idParam(c, "id")
	if !ok {
		return
	}
	orders, err := h.changeOrderService.ListChangeOrders(c.Request.Context(), user, projectID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *costHandler) createChangeOrder(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	projectID, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req dto.CreateChangeOrderRequest
	if !bindJSON(c, &req) {
		return
	}
	order, err := h.changeOrderService.CreateChangeOrder(c.Request.Context(), user, projectID, req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *costHandler) approveChangeOrder(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	orderID, ok := idParam(c, "id")
	if !ok {
		return
	}
	order, err := h.changeOrderService.ApproveChangeOrder(c.Request.Context(), user, orderID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *costHandler) rejectChangeOrder(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	orderID, ok := idParam(c, "id")
	if !ok {
		return
	}
	order, err := h.changeOrderService.RejectChangeOrder(c.Request.Context(), user, orderID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}
