package request

import "homeservice-booking/internal/usecase/commands"

type SendCodeRequest struct {
	Phone string `json:"phone" binding:"required"`
}

type VerifyCodeRequest struct {
	Phone string `json:"phone" binding:"required"`
	Code  string `json:"code" binding:"required"`
}

type SignupRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
	Phone string `json:"phone" binding:"required"`
}

func (r *SignupRequest) ToInput() commands.SignupInput {
	return commands.SignupInput{Name: r.Name, Email: r.Email, Phone: r.Phone}
}
