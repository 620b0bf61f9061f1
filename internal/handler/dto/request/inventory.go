package request

type SetStockRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

type AdjustStockRequest struct {
	Delta int `json:"delta" binding:"required"`
}
