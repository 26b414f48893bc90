package dto

import "github.com/jhoicas/tienda-api/internal/domain/entity"

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest entrada para registro. La contraseña solo se valida en forma; no se guarda.
type RegisterRequest struct {
	Name            string `json:"name" validate:"required,max=200"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirm_password" validate:"eqfield=Password"`
	Address         string `json:"address"`
}

// UserResponse salida de la identidad actual.
type UserResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address,omitempty"`
}

// SessionResponse estado de autenticación (identidad presente o no).
type SessionResponse struct {
	Authenticated bool          `json:"authenticated"`
	User          *UserResponse `json:"user,omitempty"`
}

// NewUserResponse mapea la entidad.
func NewUserResponse(u entity.User) *UserResponse {
	return &UserResponse{ID: u.ID, Name: u.Name, Email: u.Email, Address: u.Address}
}
