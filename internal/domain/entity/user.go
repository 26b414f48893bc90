package entity

// User identidad de la sesión actual (cero o una a la vez). No guarda contraseña.
type User struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address,omitempty"`
}
