package api

import (
	"net/http"

	reqdto "campus-canteen/internal/handler/dto/request"
	resdto "campus-canteen/internal/handler/dto/response"
	"campus-canteen/internal/handler/httperr"
	"campus-canteen/internal/usecase/commands"
	"campus-canteen/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type StudentHandler struct {
	orderCommands  commands.OrderCommands
	walletCommands commands.WalletCommands
	orderQueries   queries.OrderQueries
	walletQueries  queries.WalletQueries
}

func NewStudentHandler(
	orderCommands commands.OrderCommands,
	walletCommands commands.WalletCommands,
	orderQueries queries.OrderQueries,
	walletQueries queries.WalletQueries,
) *StudentHandler {
	return &StudentHandler{
		orderCommands:  orderCommands,
		walletCommands: walletCommands,
		orderQueries:   orderQueries,
		walletQueries:  walletQueries,
	}
}

// @Summary Place order
// @Description Prices the cart server-side, debits the wallet and books the pickup slot
// @Tags student
// @Accept json
// @Produce json
// @Param studentId path string true "Student ID"
// @Param request body reqdto.CreateOrderRequest true "Order request"
// @Success 201 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /students/{studentId}/orders [post]
func (h *StudentHandler) PlaceOrder(c *gin.Context) {
	var req reqdto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	view, err := h.orderCommands.CreateOrder(c.Request.Context(), c.Param("studentId"), req)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	respond[resdto.OrderResponse](c, http.StatusCreated, view)
}

// @Summary Student orders
// @Description Orders of the student, newest first
// @Tags student
// @Produce json
// @Param studentId path string true "Student ID"
// @Success 200 {array} resdto.OrderResponse
// @Router /students/{studentId}/orders [get]
func (h *StudentHandler) ListOrders(c *gin.Context) {
	views, err := h.orderQueries.ListByStudent(c.Request.Context(), c.Param("studentId"))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	respondEach[resdto.OrderResponse](c, http.StatusOK, views)
}

// @Summary Track order
// @Tags student
// @Produce json
// @Param studentId path string true "Student ID"
// @Param orderId path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /students/{studentId}/orders/{orderId} [get]
func (h *StudentHandler) GetOrder(c *gin.Context) {
	orderID, ok := parseOrderID(c)
	if !ok {
		return
	}

	view, err := h.orderQueries.GetForStudent(c.Request.Context(), c.Param("studentId"), orderID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	respond[resdto.OrderResponse](c, http.StatusOK, view)
}

// @Summary Wallet
// @Description Balance and transactions newest first. Opens the wallet on first visit.
// @Tags student
// @Produce json
// @Param studentId path string true "Student ID"
// @Success 200 {object} resdto.WalletResponse
// @Router /students/{studentId}/wallet [get]
func (h *StudentHandler) GetWallet(c *gin.Context) {
	view, err := h.walletQueries.GetWallet(c.Request.Context(), c.Param("studentId"))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	respond[resdto.WalletResponse](c, http.StatusOK, view)
}

// @Summary Top up wallet
// @Tags student
// @Accept json
// @Produce json
// @Param studentId path string true "Student ID"
// @Param request body reqdto.TopUpRequest true "Top-up request"
// @Success 200 {object} resdto.WalletResponse
// @Failure 400 {object} map[string]string
// @Router /students/{studentId}/wallet/top-up [post]
func (h *StudentHandler) TopUp(c *gin.Context) {
	var req reqdto.TopUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	view, err := h.walletCommands.TopUp(c.Request.Context(), c.Param("studentId"), req)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	respond[resdto.WalletResponse](c, http.StatusOK, view)
}

func parseOrderID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid order ID", nil)
		return uuid.Nil, false
	}
	return id, true
}
