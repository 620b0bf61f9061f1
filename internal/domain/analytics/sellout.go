package analytics

const (
	selloutStockCeiling = 20
	operatingHours      = 6.0
)

// PredictSellout buckets the hours of stock left at the daily demand rate.
// It returns false when stock is plentiful, demand is unknown, or more than two hours remain.
func PredictSellout(quantity, dailyDemand int) (string, bool) {
	if quantity >= selloutStockCeiling || dailyDemand <= 0 {
		return "", false
	}
	hourlyRate := float64(dailyDemand) / operatingHours
	hoursLeft := float64(quantity) / hourlyRate

	switch {
	case hoursLeft < 0.5:
		return "30 minutes", true
	case hoursLeft < 1:
		return "1 hour", true
	case hoursLeft < 2:
		return "2 hours", true
	default:
		return "", false
	}
}
