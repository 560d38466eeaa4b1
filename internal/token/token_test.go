package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	autherrors "github.com/Thato402/employee-attendance-tracker/internal/auth/errors"
)

func TestManager_IssueAndVerify(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	tok, err := m.Issue("user-1", "E100", "ann@co.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, tok)

	claims, err := m.Verify(tok)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "E100", claims.EmployeeID)
	assert.Equal(t, "ann@co.com", claims.Email)
}

func TestManager_ExpiredToken(t *testing.T) {
	m := NewManager("test-secret", -time.Minute)

	tok, err := m.Issue("user-1", "E100", "ann@co.com")
	assert.NoError(t, err)

	_, err = m.Verify(tok)
	assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
}

func TestManager_WrongSecret(t *testing.T) {
	m := NewManager("test-secret", time.Hour)
	other := NewManager("different-secret", time.Hour)

	tok, err := m.Issue("user-1", "E100", "ann@co.com")
	assert.NoError(t, err)

	_, err = other.Verify(tok)
	assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
}

func TestManager_GarbageToken(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	_, err := m.Verify("not-a-token")
	assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
}
