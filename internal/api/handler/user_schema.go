package handler

type createUserRequest struct {
	Username string  `json:"username" validate:"required,min=3"`
	Password string  `json:"password" validate:"required,min=6"`
	Email    string  `json:"email"    validate:"required,email"`
	FullName string  `json:"fullName" validate:"required"`
	Role     string  `json:"role"     validate:"omitempty,oneof=admin organizer community_manager participant"`
	Avatar   *string `json:"avatar"`
}

// updateUserRequest restricts partial updates to profile fields; the
// password cannot be changed through this endpoint.
type updateUserRequest struct {
	Username *string `json:"username" validate:"omitempty,min=3"`
	Email    *string `json:"email"    validate:"omitempty,email"`
	FullName *string `json:"fullName"`
	Role     *string `json:"role"     validate:"omitempty,oneof=admin organizer community_manager participant"`
	Avatar   *string `json:"avatar"`
}
