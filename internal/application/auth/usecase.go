// Package auth implementa o login do operador do PDV.
//
// O sistema opera com uma credencial única vinda da configuração (o PDV tem
// um operador só); não existe cadastro de usuários nem tabela de login.
package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"

	"github.com/verdurao/pos-api/internal/application/dto"
	"github.com/verdurao/pos-api/internal/domain"
	"github.com/verdurao/pos-api/pkg/config"
	"github.com/verdurao/pos-api/pkg/jwt"
)

// AuthUseCase valida a credencial configurada e emite o token JWT.
type AuthUseCase struct {
	authCfg config.AuthConfig
	jwtCfg  config.JWTConfig
}

// NewAuthUseCase constrói o caso de uso de auth.
func NewAuthUseCase(authCfg config.AuthConfig, jwtCfg config.JWTConfig) *AuthUseCase {
	return &AuthUseCase{authCfg: authCfg, jwtCfg: jwtCfg}
}

// Login compara a credencial e devolve o token assinado.
// Com AUTH_PASSWORD_BCRYPT definido a senha é conferida via bcrypt; senão a
// comparação é em tempo constante contra AUTH_PASSWORD.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if !uc.credencialValida(in.Username, in.Password) {
		return nil, domain.ErrCredenciaisInvalidas
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, in.Username, uc.jwtCfg.Issuer, uc.jwtCfg.Expiration)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, Username: in.Username}, nil
}

func (uc *AuthUseCase) credencialValida(username, password string) bool {
	if subtle.ConstantTimeCompare([]byte(username), []byte(uc.authCfg.Username)) != 1 {
		return false
	}
	if uc.authCfg.PasswordBcrypt != "" {
		return bcrypt.CompareHashAndPassword([]byte(uc.authCfg.PasswordBcrypt), []byte(password)) == nil
	}
	if uc.authCfg.Password == "" {
		// Sem senha configurada ninguém entra; evita instância aberta por engano.
		return false
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(uc.authCfg.Password)) == 1
}
