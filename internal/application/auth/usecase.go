package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/dakny/ventafacil-api/internal/application/dto"
	"github.com/dakny/ventafacil-api/internal/domain"
	"github.com/dakny/ventafacil-api/pkg/jwt"
)

// Roles de sesión.
const (
	RoleAdmin    = "admin"    // operador: administra inventario y liquida pedidos
	RoleVendedor = "vendedor" // sesión de venta: arma carritos y envía pedidos
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Config credenciales y reglas de la pantalla de login.
type Config struct {
	AdminUser         string
	AdminPasswordHash string // hash bcrypt
	MinPhoneLength    int
}

// AuthUseCase implementa la puerta de entrada de la aplicación: el operador
// administrador entra con password; cualquier otro usuario entra como
// vendedor con nombre y un teléfono de largo mínimo.
type AuthUseCase struct {
	cfg    Config
	jwtCfg JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(cfg Config, jwtCfg JWTConfig) *AuthUseCase {
	if cfg.MinPhoneLength <= 0 {
		cfg.MinPhoneLength = 8
	}
	return &AuthUseCase{cfg: cfg, jwtCfg: jwtCfg}
}

// Login valida las credenciales y genera el token de sesión.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Username == "" {
		return nil, domain.ErrInvalidInput
	}

	role := RoleVendedor
	switch {
	case in.Username == uc.cfg.AdminUser:
		if uc.cfg.AdminPasswordHash == "" {
			return nil, domain.ErrUnauthorized
		}
		if err := bcrypt.CompareHashAndPassword([]byte(uc.cfg.AdminPasswordHash), []byte(in.Password)); err != nil {
			return nil, domain.ErrUnauthorized
		}
		role = RoleAdmin
	case len(in.PhoneNumber) >= uc.cfg.MinPhoneLength:
		// Sesión de vendedor: basta nombre y teléfono plausible.
	default:
		return nil, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, in.Username, role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:    token,
		Username: in.Username,
		Role:     role,
	}, nil
}
