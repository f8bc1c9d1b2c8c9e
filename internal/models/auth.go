package models

// LoginRequest defines the structure for admin login requests
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AddMemberRequest defines the body for adding a member
type AddMemberRequest struct {
	ID   *int   `json:"id" binding:"required"`
	Name string `json:"name"` // any text, empty included
}

// CollectPaymentRequest defines the body for collecting a payment
type CollectPaymentRequest struct {
	MemberID *int `json:"memberId" binding:"required"`
	Amount   *int `json:"amount" binding:"required"`
}
