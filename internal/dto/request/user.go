package request

type UpdateProfileRequest struct {
	Name  string  `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Phone *string `json:"phone,omitempty" validate:"omitempty,min=7,max=20"`
}
