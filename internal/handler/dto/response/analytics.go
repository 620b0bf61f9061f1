package response

type SelloutResponse struct {
	FoodItemID  string  `json:"foodItemId"`
	Name        string  `json:"name"`
	Quantity    int     `json:"quantity"`
	DailyDemand int     `json:"dailyDemand"`
	SelloutIn   *string `json:"selloutIn,omitempty"`
}

type SuggestionResponse struct {
	Kind        string `json:"type"`
	Priority    string `json:"priority"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Consequence string `json:"consequence"`
	Action      string `json:"action"`
}

type DashboardResponse struct {
	Canteen          *CanteenResponse   `json:"canteen"`
	StatusCounts     map[string]int     `json:"statusCounts"`
	WaitingStudents  int                `json:"waitingStudents"`
	DelayedOrders    []OrderResponse    `json:"delayedOrders"`
	LowStockItems    []FoodItemResponse `json:"lowStockItems"`
	SlotsFillingFast []SlotResponse     `json:"slotsFillingFast"`
	Revenue          int64              `json:"revenue"`
}

type WaitingResponse struct {
	WaitingStudents int `json:"waitingStudents"`
}
