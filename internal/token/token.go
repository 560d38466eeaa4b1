package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	autherrors "github.com/Thato402/employee-attendance-tracker/internal/auth/errors"
)

// Claims is the identity a session token carries. Tokens are stateless:
// validity is decided by signature and expiry alone, never by a server-side
// lookup, so several live tokens per user are fine.
type Claims struct {
	UserID     string `json:"userId"`
	EmployeeID string `json:"employeeID"`
	Email      string `json:"email"`
	jwt.RegisteredClaims
}

// Manager signs and verifies HS256 session tokens. The secret and lifetime
// come from config; nothing here reads the environment.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for the given identity, expiring after the configured
// lifetime. Re-authentication is the only way to extend a session.
func (m *Manager) Issue(userID, employeeID, email string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:     userID,
		EmployeeID: employeeID,
		Email:      email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Verify checks signature and expiry and returns the embedded identity.
// Bad signature, wrong algorithm and expiry all collapse into the same
// invalid-token error.
func (m *Manager) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, autherrors.ErrInvalidToken
	}
	if claims.UserID == "" {
		return nil, autherrors.ErrInvalidToken
	}
	return claims, nil
}
