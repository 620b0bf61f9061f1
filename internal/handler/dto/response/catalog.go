package response

type CanteenResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Category   string `json:"type"`
	CrowdLevel string `json:"crowdLevel"`
}

type FoodItemResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       int64   `json:"price"`
	Image       string  `json:"image"`
	IsVeg       bool    `json:"isVeg"`
	Quantity    int     `json:"quantity"`
	CanteenID   string  `json:"canteenId"`
	AvgPrepTime int     `json:"avgPrepTime"`
	DailyDemand int     `json:"dailyDemand"`
	InStock     bool    `json:"inStock"`
	SelloutIn   *string `json:"selloutIn,omitempty"`
}

type SlotResponse struct {
	CanteenID    string `json:"canteenId"`
	Label        string `json:"time"`
	Capacity     int    `json:"capacity"`
	Filled       int    `json:"filled"`
	Remaining    int    `json:"remaining"`
	IsFull       bool   `json:"isFull"`
	IsAlmostFull bool   `json:"isAlmostFull"`
}
