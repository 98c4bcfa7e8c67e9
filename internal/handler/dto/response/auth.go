package response

import "homeservice-booking/internal/usecase/commands"

type SendCodeResponse struct {
	Phone     string `json:"phone"`
	ExpiresIn int    `json:"expires_in"`
}

type VerifyCodeResponse struct {
	Phone      string  `json:"phone"`
	Verified   bool    `json:"verified"`
	UserExists bool    `json:"user_exists"`
	CustomerID *string `json:"customer_id,omitempty"`
}

type SignupResponse struct {
	CustomerID string `json:"customer_id"`
}

func FromVerifyCodeResult(r *commands.VerifyCodeResult) *VerifyCodeResponse {
	res := &VerifyCodeResponse{Phone: r.Phone, Verified: true, UserExists: r.UserExists}
	if r.CustomerID != nil {
		id := r.CustomerID.String()
		res.CustomerID = &id
	}
	return res
}
