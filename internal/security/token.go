package security

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

const RoleOperator = "operator"

// ClientClaims carries the actor identity the API needs: the client id
// and, for administrative staff, the operator role.
type ClientClaims struct {
	ClientID int32    `json:"client_id"`
	Email    string   `json:"email,omitempty"`
	Roles    []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// IsOperator reports whether the token carries the operator role.
func (c *ClientClaims) IsOperator() bool {
	for _, r := range c.Roles {
		if r == RoleOperator {
			return true
		}
	}
	return false
}

type TokenManager interface {
	GenerateAccessToken(clientID int32, email string, roles []string, expiry time.Duration) (string, error)
	ValidateToken(tokenString string) (*ClientClaims, error)
}

type tokenManager struct {
	secret []byte
}

func NewTokenManager(secret string) TokenManager {
	return &tokenManager{
		secret: []byte(secret),
	}
}

func (m *tokenManager) GenerateAccessToken(clientID int32, email string, roles []string, expiry time.Duration) (string, error) {
	claims := ClientClaims{
		ClientID: clientID,
		Email:    email,
		Roles:    roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(int(clientID)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "wheelshare",
			Audience:  jwt.ClaimStrings{"api-access"},
			ID:        uuid.NewString(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *tokenManager) ValidateToken(tokenString string) (*ClientClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &ClientClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*ClientClaims); ok && token.Valid {
		if claims.ClientID == 0 && claims.Subject != "" {
			cid, _ := strconv.Atoi(claims.Subject)
			claims.ClientID = int32(cid)
		}
		return claims, nil
	}

	return nil, ErrInvalidToken
}
