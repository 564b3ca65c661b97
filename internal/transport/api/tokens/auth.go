package tokens

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrInvalidRole  = errors.New("invalid role")
)

// Role определяет, какие маршруты доступны клиенту. RoleService - внутренние сервисы клуба (бронирования,
// турниры), RoleAdmin дополнительно может менять таблицу начислений и править записи журнала.
type Role string

const (
	RoleService Role = "service"
	RoleAdmin   Role = "admin"
)

func (r Role) IsValid() bool {
	return r == RoleService || r == RoleAdmin
}

type ServiceClaims struct {
	jwt.RegisteredClaims
	Role Role `json:"role"`
}

// GenerateServiceJWT выпускает токен HS256 для клиента subject с ролью role.
func GenerateServiceJWT(subject string, role Role, expire time.Duration, key []byte) (string, error) {
	if !role.IsValid() {
		return "", fmt.Errorf("generating service jwt token: %w: `%s`", ErrInvalidRole, role)
	}
	claims := ServiceClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expire)),
		},
		Role: role,
	}
	token, err := generateJWT(claims, key)
	if err != nil {
		return "", fmt.Errorf("generating service jwt token: %s", err.Error())
	}
	return token, nil
}

func ValidateServiceJWT(tokenString string, key []byte) (*ServiceClaims, error) {
	token, err := validateJWT(tokenString, new(ServiceClaims), key)
	if err != nil {
		return nil, fmt.Errorf("validating service jwt token: %w", err)
	}

	claims, ok := token.Claims.(*ServiceClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	if !claims.Role.IsValid() {
		return nil, fmt.Errorf("validating service jwt token: %w: `%s`", ErrInvalidRole, claims.Role)
	}
	return claims, nil
}

func generateJWT(claims jwt.Claims, key []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("generating jwt token: %s", err.Error())
	}

	return tokenString, nil
}

func validateJWT(tokenString string, claims jwt.Claims, key []byte) (*jwt.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{"HS256"}))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("parsing jwt token: %w", err)
	}

	return token, nil
}
