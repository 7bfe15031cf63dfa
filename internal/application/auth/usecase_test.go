package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dakny/ventafacil-api/internal/application/auth"
	"github.com/dakny/ventafacil-api/internal/application/dto"
	"github.com/dakny/ventafacil-api/internal/domain"
	pkgjwt "github.com/dakny/ventafacil-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "ventafacil-test"
	adminUser  = "Dakny"
	adminPass  = "clave-segura"
)

func newAuthUC(t *testing.T) *auth.AuthUseCase {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPass), bcrypt.MinCost)
	require.NoError(t, err)
	return auth.NewAuthUseCase(
		auth.Config{AdminUser: adminUser, AdminPasswordHash: string(hash), MinPhoneLength: 8},
		auth.JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: testIssuer},
	)
}

// El administrador entra con su password y recibe rol admin.
func TestLogin_AdminConPassword(t *testing.T) {
	uc := newAuthUC(t)

	out, err := uc.Login(dto.LoginRequest{Username: adminUser, Password: adminPass})
	require.NoError(t, err)
	assert.Equal(t, auth.RoleAdmin, out.Role)
	assert.Equal(t, adminUser, out.Username)

	username, role, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, adminUser, username)
	assert.Equal(t, auth.RoleAdmin, role)
}

func TestLogin_AdminPasswordIncorrecta(t *testing.T) {
	uc := newAuthUC(t)
	_, err := uc.Login(dto.LoginRequest{Username: adminUser, Password: "otra-clave"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// Sin hash configurado el login de admin queda deshabilitado.
func TestLogin_AdminSinHashConfigurado(t *testing.T) {
	uc := auth.NewAuthUseCase(
		auth.Config{AdminUser: adminUser, MinPhoneLength: 8},
		auth.JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: testIssuer},
	)
	_, err := uc.Login(dto.LoginRequest{Username: adminUser, Password: adminPass})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// Cualquier otro usuario entra como vendedor con nombre y teléfono plausible.
func TestLogin_VendedorConTelefono(t *testing.T) {
	uc := newAuthUC(t)

	out, err := uc.Login(dto.LoginRequest{Username: "María", PhoneNumber: "3001234567"})
	require.NoError(t, err)
	assert.Equal(t, auth.RoleVendedor, out.Role)

	_, role, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, auth.RoleVendedor, role)
}

func TestLogin_TelefonoMuyCorto(t *testing.T) {
	uc := newAuthUC(t)
	_, err := uc.Login(dto.LoginRequest{Username: "María", PhoneNumber: "300"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsernameVacio(t *testing.T) {
	uc := newAuthUC(t)
	_, err := uc.Login(dto.LoginRequest{PhoneNumber: "3001234567"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
