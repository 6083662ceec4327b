package dto

// ContactRequest is the contact form body.
type ContactRequest struct {
	Email   string `json:"email" form:"email" validate:"required,max=255,email"`
	Message string `json:"message" form:"message" validate:"required,max=5000"`
	Phone   string `json:"phone" form:"phone" validate:"omitempty,max=32"`
}
