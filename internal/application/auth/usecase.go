package auth

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/state"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// Credenciales de demostración: el único login que prospera.
const (
	DemoEmail    = "demo@example.com"
	DemoPassword = "password"
)

func demoUser() entity.User {
	return entity.User{
		ID:      "1",
		Name:    "Demo User",
		Email:   DemoEmail,
		Address: "123 Main St, Anytown, USA",
	}
}

// AuthUseCase identidad simulada: login fijo, registro sin verificación y logout.
// No hay tokens ni contraseñas guardadas; la identidad vive en memoria y bajo la clave "user".
type AuthUseCase struct {
	mu      sync.RWMutex
	current *entity.User
	storage repository.StateStorage
}

// NewAuthUseCase hidrata la identidad persistida (si existe y es válida).
func NewAuthUseCase(ctx context.Context, storage repository.StateStorage) *AuthUseCase {
	u, ok := state.Load[*entity.User](ctx, storage, state.KeyUser)
	if !ok || u == nil || u.ID == "" {
		u = nil
	}
	return &AuthUseCase{current: u, storage: storage}
}

// Login acepta solo las credenciales de demostración. Cualquier otro par devuelve
// ErrInvalidCredentials y deja la identidad actual como estaba.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.UserResponse, error) {
	if strings.TrimSpace(in.Email) != DemoEmail || in.Password != DemoPassword {
		return nil, domain.ErrInvalidCredentials
	}
	return uc.replace(ctx, demoUser())
}

// Register siempre prospera: genera un ID aleatorio y reemplaza la identidad actual.
// No hay control de duplicados.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	return uc.replace(ctx, entity.User{
		ID:      uuid.New().String(),
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.TrimSpace(in.Email),
		Address: strings.TrimSpace(in.Address),
	})
}

// Logout limpia la identidad y borra la clave persistida.
func (uc *AuthUseCase) Logout(ctx context.Context) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.current = nil
	return state.Remove(ctx, uc.storage, state.KeyUser)
}

// Current estado de la sesión para el cliente.
func (uc *AuthUseCase) Current() *dto.SessionResponse {
	u, ok := uc.CurrentUser()
	if !ok {
		return &dto.SessionResponse{}
	}
	return &dto.SessionResponse{Authenticated: true, User: dto.NewUserResponse(u)}
}

// CurrentUser copia de la identidad actual.
func (uc *AuthUseCase) CurrentUser() (entity.User, bool) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	if uc.current == nil {
		return entity.User{}, false
	}
	return *uc.current, true
}

// IsAuthenticated indica si hay identidad.
func (uc *AuthUseCase) IsAuthenticated() bool {
	_, ok := uc.CurrentUser()
	return ok
}

// Account identidad actual o ErrUnauthorized.
func (uc *AuthUseCase) Account() (*dto.UserResponse, error) {
	u, ok := uc.CurrentUser()
	if !ok {
		return nil, fmt.Errorf("%w: no hay sesión iniciada", domain.ErrUnauthorized)
	}
	return dto.NewUserResponse(u), nil
}

func (uc *AuthUseCase) replace(ctx context.Context, u entity.User) (*dto.UserResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.current = &u
	if err := state.Save(ctx, uc.storage, state.KeyUser, u); err != nil {
		return nil, err
	}
	return dto.NewUserResponse(u), nil
}
