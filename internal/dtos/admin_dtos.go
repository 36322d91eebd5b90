package dtos

type AdminLoginRequest struct {
	Username string `json:"username" validate:"required,min=2"`
	Password string `json:"password" validate:"required,min=8"`
}

type AdminLoginResponse struct {
	Success bool   `json:"success"`
	Role    string `json:"role"`
	ID      string `json:"id"`
}

type AdminStatusResponse struct {
	Success       bool   `json:"success"`
	Authenticated bool   `json:"authenticated"`
	Role          string `json:"role,omitempty"`
	ID            string `json:"id,omitempty"`
}

type AdminLogoutResponse struct {
	Success bool `json:"success"`
}
