package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/verdurao/pos-api/internal/application/auth"
	"github.com/verdurao/pos-api/internal/application/dto"
	"github.com/verdurao/pos-api/internal/domain"
	"github.com/verdurao/pos-api/pkg/config"
	pkgjwt "github.com/verdurao/pos-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "verdurao-pos-test"
)

func novoAuthUC(authCfg config.AuthConfig) *auth.AuthUseCase {
	return auth.NewAuthUseCase(authCfg, config.JWTConfig{
		Secret:     testSecret,
		Expiration: 60,
		Issuer:     testIssuer,
	})
}

func TestLogin_CredencialCorreta(t *testing.T) {
	uc := novoAuthUC(config.AuthConfig{Username: "admin", Password: "segredo123"})

	out, err := uc.Login(dto.LoginRequest{Username: "admin", Password: "segredo123"})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "admin", out.Username)

	// O token emitido deve ser verificável com o mesmo secret.
	username, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", username)
}

func TestLogin_SenhaIncorreta(t *testing.T) {
	uc := novoAuthUC(config.AuthConfig{Username: "admin", Password: "segredo123"})

	_, err := uc.Login(dto.LoginRequest{Username: "admin", Password: "errada"})
	assert.ErrorIs(t, err, domain.ErrCredenciaisInvalidas)
}

func TestLogin_UsernameIncorreto(t *testing.T) {
	uc := novoAuthUC(config.AuthConfig{Username: "admin", Password: "segredo123"})

	_, err := uc.Login(dto.LoginRequest{Username: "outro", Password: "segredo123"})
	assert.ErrorIs(t, err, domain.ErrCredenciaisInvalidas)
}

// Sem senha configurada ninguém entra, nem com senha vazia.
func TestLogin_SemSenhaConfigurada(t *testing.T) {
	uc := novoAuthUC(config.AuthConfig{Username: "admin"})

	_, err := uc.Login(dto.LoginRequest{Username: "admin", Password: ""})
	assert.ErrorIs(t, err, domain.ErrCredenciaisInvalidas)
}

// Com AUTH_PASSWORD_BCRYPT definido a conferência é via bcrypt e a senha em
// texto plano da configuração é ignorada.
func TestLogin_SenhaBcrypt(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("segredo123"), bcrypt.MinCost)
	require.NoError(t, err)

	uc := novoAuthUC(config.AuthConfig{
		Username:       "admin",
		Password:       "nao-usada",
		PasswordBcrypt: string(hash),
	})

	_, err = uc.Login(dto.LoginRequest{Username: "admin", Password: "segredo123"})
	assert.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Username: "admin", Password: "nao-usada"})
	assert.ErrorIs(t, err, domain.ErrCredenciaisInvalidas,
		"com bcrypt configurado a senha em texto plano não vale")
}
