package dto

// ProfileRequest uses pointers so omitted fields can be told apart from
// explicitly cleared ones: omitted fields retain their previous value.
type ProfileRequest struct {
	Name           *string `json:"name" validate:"omitempty,min=2"`
	Phone          *string `json:"phone" validate:"omitempty,loosephone"`
	Country        *string `json:"country" validate:"omitempty,min=2"`
	FreelancerType *string `json:"freelancerType" validate:"omitempty,min=2"`
}

type PasswordChangeRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
}

type ProfilePayload struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}
