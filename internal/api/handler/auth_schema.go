package handler

// --- Request / Response types ---

type registerRequest struct {
	Username   string `json:"username"    validate:"required,min=3"`
	Password   string `json:"password"    validate:"required,min=6"`
	Position   string `json:"position"    validate:"required,oneof=worker rider"`
	EmployeeID string `json:"employee_id" validate:"required"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// userSummary is the public projection of an account. The password hash
// never leaves the service.
type userSummary struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	Position   string `json:"position"`
	EmployeeID string `json:"employee_id"`
	IsAdmin    bool   `json:"is_admin"`
}

type authResponse struct {
	Token string       `json:"token,omitempty"`
	User  *userSummary `json:"user,omitempty"`
}
