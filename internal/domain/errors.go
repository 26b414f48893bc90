package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrValidation         = errors.New("la validación del formulario falló")
	ErrInvalidCredentials = errors.New("correo o contraseña inválidos")
	ErrUnauthorized       = errors.New("no autenticado")
	ErrEmptyCart          = errors.New("el carrito está vacío")
)
