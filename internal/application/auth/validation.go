package auth

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
)

// ValidateRegistration controles del formulario de registro: nombre, correo y contraseña
// obligatorios y confirmación idéntica. Devuelve un error que envuelve ErrInvalidInput.
func ValidateRegistration(in dto.RegisterRequest) error {
	switch {
	case strings.TrimSpace(in.Name) == "":
		return fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	case strings.TrimSpace(in.Email) == "":
		return fmt.Errorf("%w: el correo es obligatorio", domain.ErrInvalidInput)
	case in.Password == "":
		return fmt.Errorf("%w: la contraseña es obligatoria", domain.ErrInvalidInput)
	case in.Password != in.ConfirmPassword:
		return fmt.Errorf("%w: las contraseñas no coinciden", domain.ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(in.Email)); err != nil {
		return fmt.Errorf("%w: correo inválido", domain.ErrInvalidInput)
	}
	return nil
}
