package auth

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Chatarreria-api/internal/application/dto"
	"github.com/jhoicas/Chatarreria-api/internal/domain"
	"github.com/jhoicas/Chatarreria-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AdminCredentials credenciales configuradas del administrador (hash bcrypt).
type AdminCredentials struct {
	User     string
	PassHash string
}

// AuthUseCase casos de uso de sesión. Son dos sesiones independientes sin
// identidad compartida: empleado (solo nombre) y administrador (credenciales).
type AuthUseCase struct {
	admin  AdminCredentials
	jwtCfg JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(admin AdminCredentials, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{admin: admin, jwtCfg: jwtCfg}
}

// EmployeeLogin abre sesión de empleado: solo exige un nombre no vacío, que será
// el actor firmante de cada transacción registrada.
func (uc *AuthUseCase) EmployeeLogin(in dto.EmployeeLoginRequest) (*dto.LoginResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, name, jwt.RoleEmpleado, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, Actor: name, Role: jwt.RoleEmpleado}, nil
}

// AdminLogin verifica usuario y contraseña (bcrypt) contra las credenciales
// configuradas y emite un token con rol admin.
func (uc *AuthUseCase) AdminLogin(in dto.AdminLoginRequest) (*dto.LoginResponse, error) {
	if uc.admin.User == "" || uc.admin.PassHash == "" {
		// Sin credenciales configuradas no existe sesión de administrador.
		return nil, domain.ErrForbidden
	}
	if in.Username != uc.admin.User {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(uc.admin.PassHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, in.Username, jwt.RoleAdmin, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, Actor: in.Username, Role: jwt.RoleAdmin}, nil
}
