package api

import (
	"net/http"

	"campus-canteen/internal/domain/order"
	reqdto "campus-canteen/internal/handler/dto/request"
	resdto "campus-canteen/internal/handler/dto/response"
	"campus-canteen/internal/handler/httperr"
	"campus-canteen/internal/handler/middleware"
	"campus-canteen/internal/usecase/commands"
	"campus-canteen/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// StaffHandler serves the canteen the staff session is signed in to. Every route
// sits behind RequireStaff.
type StaffHandler struct {
	orderCommands     commands.OrderCommands
	inventoryCommands commands.InventoryCommands
	orderQueries      queries.OrderQueries
	catalogQueries    queries.CatalogQueries
	analyticsQueries  queries.AnalyticsQueries
}

func NewStaffHandler(
	orderCommands commands.OrderCommands,
	inventoryCommands commands.InventoryCommands,
	orderQueries queries.OrderQueries,
	catalogQueries queries.CatalogQueries,
	analyticsQueries queries.AnalyticsQueries,
) *StaffHandler {
	return &StaffHandler{
		orderCommands:     orderCommands,
		inventoryCommands: inventoryCommands,
		orderQueries:      orderQueries,
		catalogQueries:    catalogQueries,
		analyticsQueries:  analyticsQueries,
	}
}

func staffCanteen(c *gin.Context) (string, bool) {
	canteenID, ok := middleware.GetCanteenID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoStaffSession, "Staff session required", nil)
	}
	return canteenID, ok
}

// @Summary Order queue
// @Description Orders of the signed-in canteen, newest first, optionally filtered by status
// @Tags staff
// @Security BearerAuth
// @Produce json
// @Param status query string false "Order status" Enums(New, Accepted, Preparing, Ready, Rejected)
// @Success 200 {array} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /staff/orders [get]
func (h *StaffHandler) ListOrders(c *gin.Context) {
	canteenID, ok := staffCanteen(c)
	if !ok {
		return
	}

	var filter *order.Status
	if raw := c.Query("status"); raw != "" {
		s := order.Status(raw)
		if !s.IsValid() {
			httperr.AbortWithError(c, http.StatusBadRequest, order.ErrInvalidStatus, "Unknown order status", raw)
			return
		}
		filter = &s
	}

	views, err := h.orderQueries.ListByCanteen(c.Request.Context(), canteenID, filter)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	respondEach[resdto.OrderResponse](c, http.StatusOK, views)
}

// @Summary Order impact preview
// @Description Stock and slot effect of accepting the order, without changing anything
// @Tags staff
// @Security BearerAuth
// @Produce json
// @Param orderId path string true "Order ID"
// @Success 200 {object} resdto.OrderImpactResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /staff/orders/{orderId}/impact [get]
func (h *StaffHandler) OrderImpact(c *gin.Context) {
	canteenID, ok := staffCanteen(c)
	if !ok {
		return
	}
	orderID, ok := parseOrderID(c)
	if !ok {
		return
	}

	view, err := h.orderQueries.GetImpact(c.Request.Context(), canteenID, orderID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	respond[resdto.OrderImpactResponse](c, http.StatusOK, view)
}

// @Summary Change order status
// @Description Accepting deducts stock. Rejecting refunds the student.
// @Tags staff
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param orderId path string true "Order ID"
// @Param request body reqdto.UpdateOrderStatusRequest true "Status change"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /staff/orders/{orderId}/status [patch]
func (h *StaffHandler) UpdateOrderStatus(c *gin.Context) {
	canteenID, ok := staffCanteen(c)
	if !ok {
		return
	}
	orderID, ok := parseOrderID(c)
	if !ok {
		return
	}

	var req reqdto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	view, err := h.orderCommands.UpdateStatus(c.Request.Context(), canteenID, orderID, req)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	respond[resdto.OrderResponse](c, http.StatusOK, view)
}

// @Summary Inventory
// @Tags staff
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.FoodItemResponse
// @Router /staff/inventory [get]
func (h *StaffHandler) Inventory(c *gin.Context) {
	canteenID, ok := staffCanteen(c)
	if !ok {
		return
	}

	views, err := h.catalogQueries.GetMenu(c.Request.Context(), canteenID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	respondEach[resdto.FoodItemResponse](c, http.StatusOK, views)
}

// @Summary Set stock
// @Description Negative quantities are stored as zero
// @Tags staff
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param itemId path string true "Food item ID"
// @Param request body reqdto.SetStockRequest true "New quantity"
// @Success 200 {object} resdto.FoodItemResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /staff/inventory/{itemId} [put]
func (h *StaffHandler) SetStock(c *gin.Context) {
	canteenID, ok := staffCanteen(c)
	if !ok {
		return
	}

	var req reqdto.SetStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	view, err := h.inventoryCommands.SetStock(c.Request.Context(), canteenID, c.Param("itemId"), req)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	respond[resdto.FoodItemResponse](c, http.StatusOK, view)
}

// @Summary Adjust stock
// @Tags staff
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param itemId path string true "Food item ID"
// @Param request body reqdto.AdjustStockRequest true "Delta"
// @Success 200 {object} resdto.FoodItemResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /staff/inventory/{itemId}/adjust [post]
func (h *StaffHandler) AdjustStock(c *gin.Context) {
	canteenID, ok := staffCanteen(c)
	if !ok {
		return
	}

	var req reqdto.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	view, err := h.inventoryCommands.AdjustStock(c.Request.Context(), canteenID, c.Param("itemId"), req)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	respond[resdto.FoodItemResponse](c, http.StatusOK, view)
}

// @Summary Slot occupancy
// @Tags staff
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.SlotResponse
// @Router /staff/slots [get]
func (h *StaffHandler) Slots(c *gin.Context) {
	canteenID, ok := staffCanteen(c)
	if !ok {
		return
	}

	views, err := h.catalogQueries.ListSlots(c.Request.Context(), canteenID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	respondEach[resdto.SlotResponse](c, http.StatusOK, views)
}

// @Summary Dashboard
// @Tags staff
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.DashboardResponse
// @Router /staff/dashboard [get]
func (h *StaffHandler) Dashboard(c *gin.Context) {
	canteenID, ok := staffCanteen(c)
	if !ok {
		return
	}

	view, err := h.analyticsQueries.Dashboard(c.Request.Context(), canteenID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	respond[resdto.DashboardResponse](c, http.StatusOK, view)
}

// @Summary Delayed orders
// @Description Accepted or preparing orders past their combined prep time
// @Tags staff
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.OrderResponse
// @Router /staff/analytics/delayed [get]
func (h *StaffHandler) DelayedOrders(c *gin.Context) {
	canteenID, ok := staffCanteen(c)
	if !ok {
		return
	}

	views, err := h.analyticsQueries.DelayedOrders(c.Request.Context(), canteenID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	respondEach[resdto.OrderResponse](c, http.StatusOK, views)
}

// @Summary Smart suggestions
// @Tags staff
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.SuggestionResponse
// @Router /staff/analytics/suggestions [get]
func (h *StaffHandler) Suggestions(c *gin.Context) {
	canteenID, ok := staffCanteen(c)
	if !ok {
		return
	}

	views, err := h.analyticsQueries.Suggestions(c.Request.Context(), canteenID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	respondEach[resdto.SuggestionResponse](c, http.StatusOK, views)
}

// @Summary Sell-out prediction
// @Tags staff
// @Security BearerAuth
// @Produce json
// @Param itemId path string true "Food item ID"
// @Success 200 {object} resdto.SelloutResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /staff/analytics/sellout/{itemId} [get]
func (h *StaffHandler) Sellout(c *gin.Context) {
	canteenID, ok := staffCanteen(c)
	if !ok {
		return
	}

	view, err := h.analyticsQueries.Sellout(c.Request.Context(), canteenID, c.Param("itemId"))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	respond[resdto.SelloutResponse](c, http.StatusOK, view)
}

// @Summary Waiting students
// @Description Distinct students with an order that is not yet ready or rejected
// @Tags staff
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.WaitingResponse
// @Router /staff/analytics/waiting [get]
func (h *StaffHandler) WaitingStudents(c *gin.Context) {
	canteenID, ok := staffCanteen(c)
	if !ok {
		return
	}

	n, err := h.analyticsQueries.WaitingStudents(c.Request.Context(), canteenID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.WaitingResponse{WaitingStudents: n})
}
