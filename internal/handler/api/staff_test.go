//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"campus-canteen/internal/domain/order"
	"campus-canteen/internal/handler/api"
	reqdto "campus-canteen/internal/handler/dto/request"
	resdto "campus-canteen/internal/handler/dto/response"
	"campus-canteen/internal/pkg/errs"
	"campus-canteen/internal/usecase/queries"
	"campus-canteen/tests/common/builder"
	"campus-canteen/tests/common/httptest"
	commandsmock "campus-canteen/tests/mock/commands"
	queriesmock "campus-canteen/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const staffToken = "staff-token"

type StaffHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockOrders    *commandsmock.MockOrderCommands
	mockInventory *commandsmock.MockInventoryCommands
	mockOrderQ    *queriesmock.MockOrderQueries
	mockCatalogQ  *queriesmock.MockCatalogQueries
	mockAnalytics *queriesmock.MockAnalyticsQueries
}

func (s *StaffHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockOrders = commandsmock.NewMockOrderCommands(s.mockCtrl)
	s.mockInventory = commandsmock.NewMockInventoryCommands(s.mockCtrl)
	s.mockOrderQ = queriesmock.NewMockOrderQueries(s.mockCtrl)
	s.mockCatalogQ = queriesmock.NewMockCatalogQueries(s.mockCtrl)
	s.mockAnalytics = queriesmock.NewMockAnalyticsQueries(s.mockCtrl)
	h := api.NewStaffHandler(s.mockOrders, s.mockInventory, s.mockOrderQ, s.mockCatalogQ, s.mockAnalytics)

	staff := s.router.Group("/staff", fakeStaffAuth)
	staff.GET("/orders", h.ListOrders)
	staff.GET("/orders/:orderId/impact", h.OrderImpact)
	staff.PATCH("/orders/:orderId/status", h.UpdateOrderStatus)
	staff.GET("/inventory", h.Inventory)
	staff.PUT("/inventory/:itemId", h.SetStock)
	staff.POST("/inventory/:itemId/adjust", h.AdjustStock)
	staff.GET("/slots", h.Slots)
	staff.GET("/dashboard", h.Dashboard)
	staff.GET("/analytics/delayed", h.DelayedOrders)
	staff.GET("/analytics/waiting", h.WaitingStudents)
	staff.GET("/analytics/suggestions", h.Suggestions)
	staff.GET("/analytics/sellout/:itemId", h.Sellout)
}

func (s *StaffHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestStaffHandlerSuite(t *testing.T) {
	suite.Run(t, new(StaffHandlerTestSuite))
}

func (s *StaffHandlerTestSuite) TestRequiresSession() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/staff/orders", nil, "")
	httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Staff session required")
}

func (s *StaffHandlerTestSuite) TestListOrders() {
	s.Run("success: unfiltered queue of the signed-in canteen", func() {
		view := builder.NewOrderBuilder().BuildView()
		s.mockOrderQ.EXPECT().ListByCanteen(gomock.Any(), "canteen-1", (*order.Status)(nil)).Return([]*queries.OrderView{view}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/staff/orders", nil, staffToken)

		var body []resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal(view.ID, body[0].ID)
	})

	s.Run("success: status filter is passed through", func() {
		s.mockOrderQ.EXPECT().ListByCanteen(gomock.Any(), "canteen-1", gomock.Cond(func(x any) bool {
			st, ok := x.(*order.Status)
			return ok && st != nil && *st == order.StatusPreparing
		})).Return([]*queries.OrderView{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/staff/orders?status=Preparing", nil, staffToken)
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})

	s.Run("error: 400 on unknown status filter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/staff/orders?status=Cooking", nil, staffToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Unknown order status")
	})
}

func (s *StaffHandlerTestSuite) TestOrderImpact() {
	view := builder.NewOrderBuilder().BuildView()
	url := "/staff/orders/" + view.ID.String() + "/impact"

	s.Run("success", func() {
		s.mockOrderQ.EXPECT().GetImpact(gomock.Any(), "canteen-1", view.ID).Return(&queries.OrderImpactView{
			Order:       view,
			StockImpact: []queries.StockImpactView{{FoodItemID: "1", ItemName: "Chicken Biryani", Before: 25, After: 23}},
			SlotImpact:  queries.SlotImpactView{Before: 45, After: 46, Capacity: 50},
			CanAccept:   true,
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, staffToken)

		var body resdto.OrderImpactResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.CanAccept)
		s.Require().NotNil(body.Order)
		s.Equal(view.ID, body.Order.ID)
		s.Equal(23, body.StockImpact[0].After)
		s.Equal(46, body.SlotImpact.After)
	})

	s.Run("error: 403 for another canteen's order", func() {
		s.mockOrderQ.EXPECT().GetImpact(gomock.Any(), "canteen-1", view.ID).Return(nil, errs.ErrOrderNotOwned)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, staffToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "another canteen")
	})
}

func (s *StaffHandlerTestSuite) TestUpdateOrderStatus() {
	view := builder.NewOrderBuilder().WithStatus(order.StatusAccepted).BuildView()
	url := "/staff/orders/" + view.ID.String() + "/status"

	s.Run("success", func() {
		req := reqdto.UpdateOrderStatusRequest{Status: "Accepted"}
		s.mockOrders.EXPECT().UpdateStatus(gomock.Any(), "canteen-1", view.ID, req).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, req, staffToken)

		var body resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Accepted", body.Status)
	})

	s.Run("error: 400 when moving back to New", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "New"}, staffToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{"illegal transition", order.ErrInvalidTransition, http.StatusConflict, "Status change not allowed"},
			{"stock short on strict accept", order.ErrInsufficientStock, http.StatusConflict, "Insufficient stock"},
			{"unknown order", errs.ErrOrderNotFound, http.StatusNotFound, "Order not found"},
		}
		req := reqdto.UpdateOrderStatusRequest{Status: "Preparing"}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockOrders.EXPECT().UpdateStatus(gomock.Any(), "canteen-1", view.ID, req).Return(nil, tc.commandsError)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, req, staffToken)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *StaffHandlerTestSuite) TestInventory() {
	item := queries.NewFoodItemView(builder.NewFoodItemBuilder().BuildDomain())

	s.Run("list", func() {
		s.mockCatalogQ.EXPECT().GetMenu(gomock.Any(), "canteen-1").Return([]queries.FoodItemView{item}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/staff/inventory", nil, staffToken)

		var body []resdto.FoodItemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal(25, body[0].Quantity)
		s.True(body[0].InStock)
	})

	s.Run("set stock accepts zero", func() {
		zero := 0
		req := reqdto.SetStockRequest{Quantity: &zero}
		out := item
		out.Quantity, out.InStock = 0, false
		s.mockInventory.EXPECT().SetStock(gomock.Any(), "canteen-1", "1", req).Return(&out, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/staff/inventory/1", req, staffToken)

		var body resdto.FoodItemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(0, body.Quantity)
		s.False(body.InStock)
	})

	s.Run("set stock requires quantity", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/staff/inventory/1", map[string]any{}, staffToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("adjust stock of another canteen's item", func() {
		req := reqdto.AdjustStockRequest{Delta: -1}
		s.mockInventory.EXPECT().AdjustStock(gomock.Any(), "canteen-1", "14", req).Return(nil, errs.ErrFoodItemNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/staff/inventory/14/adjust", req, staffToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Food item not found")
	})

	s.Run("adjust stock rejects a zero delta", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/staff/inventory/1/adjust", map[string]any{"delta": 0}, staffToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *StaffHandlerTestSuite) TestAnalytics() {
	s.Run("dashboard", func() {
		delayed := builder.NewOrderBuilder().WithStatus(order.StatusPreparing).BuildView()
		s.mockAnalytics.EXPECT().Dashboard(gomock.Any(), "canteen-1").Return(&queries.DashboardView{
			Canteen:          &queries.CanteenView{ID: "canteen-1", Name: "Main Canteen", Category: "main", CrowdLevel: "Medium"},
			StatusCounts:     map[string]int{"New": 2, "Preparing": 1},
			WaitingStudents:  2,
			DelayedOrders:    []*queries.OrderView{delayed},
			LowStockItems:    []queries.FoodItemView{},
			SlotsFillingFast: []queries.SlotView{{CanteenID: "canteen-1", Label: "12:00 PM - 12:30 PM", Capacity: 50, Filled: 45, Remaining: 5, IsAlmostFull: true}},
			Revenue:          480,
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/staff/dashboard", nil, staffToken)

		var body resdto.DashboardResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("main", body.Canteen.Category)
		s.Equal(2, body.StatusCounts["New"])
		s.Require().Len(body.DelayedOrders, 1)
		s.Equal(delayed.ID, body.DelayedOrders[0].ID)
		s.Equal("12:00 PM - 12:30 PM", body.SlotsFillingFast[0].Label)
		s.Equal(int64(480), body.Revenue)
		s.Contains(rec.Body.String(), `"lowStockItems":[]`)
	})

	s.Run("waiting students", func() {
		s.mockAnalytics.EXPECT().WaitingStudents(gomock.Any(), "canteen-1").Return(3, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/staff/analytics/waiting", nil, staffToken)
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"waitingStudents":3}`, rec.Body.String())
	})

	s.Run("suggestions", func() {
		s.mockAnalytics.EXPECT().Suggestions(gomock.Any(), "canteen-1").Return([]queries.SuggestionView{
			{Kind: "delay", Priority: "critical", Title: "1 order running late"},
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/staff/analytics/suggestions", nil, staffToken)

		var body []resdto.SuggestionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal("delay", body[0].Kind)
		s.Equal("critical", body[0].Priority)
	})

	s.Run("sellout", func() {
		eta := "1 hour"
		s.mockAnalytics.EXPECT().Sellout(gomock.Any(), "canteen-1", "3").Return(&queries.SelloutView{
			FoodItemID: "3", Name: "Egg Curry", Quantity: 2, DailyDemand: 30, SelloutIn: &eta,
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/staff/analytics/sellout/3", nil, staffToken)

		var body resdto.SelloutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().NotNil(body.SelloutIn)
		s.Equal("1 hour", *body.SelloutIn)
	})

	s.Run("delayed orders", func() {
		s.mockAnalytics.EXPECT().DelayedOrders(gomock.Any(), "canteen-1").Return([]*queries.OrderView{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/staff/analytics/delayed", nil, staffToken)
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})

	s.Run("slots", func() {
		s.mockCatalogQ.EXPECT().ListSlots(gomock.Any(), "canteen-1").Return([]queries.SlotView{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/staff/slots", nil, staffToken)
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})
}
