package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T, apiKey string) Service {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(apiKey), bcrypt.MinCost)
	require.NoError(t, err)
	return NewService(string(hash), "test-secret", time.Hour)
}

func TestIssueAndParseToken(t *testing.T) {
	svc := newTestService(t, "correct-key")

	token, err := svc.IssueToken("correct-key")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "operator", claims.Role)
	assert.Equal(t, "solsight-api", claims.Issuer)
}

func TestIssueToken_WrongKey(t *testing.T) {
	svc := newTestService(t, "correct-key")

	_, err := svc.IssueToken("wrong-key")
	assert.ErrorIs(t, err, ErrInvalidAPIKey)
}

func TestParseToken_WrongSecret(t *testing.T) {
	issuer := newTestService(t, "correct-key")
	token, err := issuer.IssueToken("correct-key")
	require.NoError(t, err)

	hash, _ := bcrypt.GenerateFromPassword([]byte("correct-key"), bcrypt.MinCost)
	verifier := NewService(string(hash), "other-secret", time.Hour)

	_, err = verifier.ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_Expired(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("k"), bcrypt.MinCost)
	require.NoError(t, err)
	svc := NewService(string(hash), "test-secret", -time.Minute)

	token, err := svc.IssueToken("k")
	require.NoError(t, err)

	_, err = svc.ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_Garbage(t *testing.T) {
	svc := newTestService(t, "k")
	_, err := svc.ParseToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
