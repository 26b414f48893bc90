package checkout

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jhoicas/tienda-api/internal/domain"
)

// Form formulario de checkout tal como lo envía el cliente.
type Form struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	ZipCode    string `json:"zipCode"`
	Country    string `json:"country"`
	CardName   string `json:"cardName"`
	CardNumber string `json:"cardNumber"`
	ExpMonth   string `json:"expMonth"`
	ExpYear    string `json:"expYear"`
	CVV        string `json:"cvv"`
}

// Mensajes de validación por campo.
const (
	MsgRequired   = "Este campo es obligatorio"
	MsgEmail      = "Ingrese un correo electrónico válido"
	MsgCardNumber = "Ingrese un número de tarjeta válido de 16 dígitos"
	MsgCVV        = "Ingrese un CVV válido (3 o 4 dígitos)"
)

var (
	emailPattern      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	cardNumberPattern = regexp.MustCompile(`^\d{16}$`)
	cvvPattern        = regexp.MustCompile(`^\d{3,4}$`)
	whitespace        = regexp.MustCompile(`\s`)
)

// FieldErrors campo -> mensaje. Implementa error y se compara con domain.ErrValidation.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return domain.ErrValidation.Error() + ": " + strings.Join(fields, ", ")
}

// Unwrap permite errors.Is(err, domain.ErrValidation).
func (e FieldErrors) Unwrap() error { return domain.ErrValidation }

// fields pares nombre/valor en el orden del formulario.
func (f Form) fields() [][2]string {
	return [][2]string{
		{"firstName", f.FirstName}, {"lastName", f.LastName}, {"email", f.Email},
		{"address", f.Address}, {"city", f.City}, {"state", f.State},
		{"zipCode", f.ZipCode}, {"country", f.Country}, {"cardName", f.CardName},
		{"cardNumber", f.CardNumber}, {"expMonth", f.ExpMonth}, {"expYear", f.ExpYear},
		{"cvv", f.CVV},
	}
}

// ValidateForm revisa todos los campos y acumula cada violación; no corta en el primer error.
// Devuelve nil si el formulario es válido.
func ValidateForm(f Form) FieldErrors {
	errs := FieldErrors{}
	for _, kv := range f.fields() {
		if strings.TrimSpace(kv[1]) == "" {
			errs[kv[0]] = MsgRequired
		}
	}

	if _, missing := errs["email"]; !missing && !emailPattern.MatchString(f.Email) {
		errs["email"] = MsgEmail
	}
	if _, missing := errs["cardNumber"]; !missing && !cardNumberPattern.MatchString(whitespace.ReplaceAllString(f.CardNumber, "")) {
		errs["cardNumber"] = MsgCardNumber
	}
	if _, missing := errs["cvv"]; !missing && !cvvPattern.MatchString(f.CVV) {
		errs["cvv"] = MsgCVV
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
