package response

type LoginResponse struct {
	AccessToken string `json:"accessToken"`
	CanteenID   string `json:"canteenId"`
	CanteenName string `json:"canteenName"`
}

type SessionResponse struct {
	CanteenID   string `json:"canteenId"`
	CanteenName string `json:"canteenName"`
	Category    string `json:"category"`
	CrowdLevel  string `json:"crowdLevel"`
}
