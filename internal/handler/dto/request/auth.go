package request

type LoginRequest struct {
	StaffID  string `json:"staffId" binding:"required"`
	Password string `json:"password" binding:"required"`
}
