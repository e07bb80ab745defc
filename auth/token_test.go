package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sharemyshows-live/domain"
	"sharemyshows-live/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const secret = "a_test_secret_long_enough_for_hs256"

func TestVerifier_UserFromToken(t *testing.T) {
	req := require.New(t)
	verifier := NewVerifier(secret)

	// Given a token issued for user 42
	token, err := GenerateToken(secret, 42, time.Hour)
	req.NoError(err)

	// When it is verified
	userID, err := verifier.UserFromToken(token)

	// Then the user id is recovered
	req.NoError(err)
	req.Equal(domain.UserID(42), userID)
}

func TestVerifier_Rejects(t *testing.T) {
	verifier := NewVerifier(secret)

	expired, err := GenerateToken(secret, 42, -time.Minute)
	require.NoError(t, err)
	foreign, err := GenerateToken("another_secret_of_the_same_size_xx", 42, time.Hour)
	require.NoError(t, err)
	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(secret))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "Empty token", token: ""},
		{name: "Garbage", token: "not.a.token"},
		{name: "Expired", token: expired},
		{name: "Signed with another secret", token: foreign},
		{name: "Missing subject", token: noSubject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := verifier.UserFromToken(tt.token)
			require.ErrorIs(t, err, errors.ErrUnauthorized)
		})
	}
}

func TestTokenFromRequest(t *testing.T) {
	req := require.New(t)

	// Given a request carrying both a cookie and a query token
	r := httptest.NewRequest(http.MethodGet, "/ws?token=from-query", nil)
	r.AddCookie(&http.Cookie{Name: CookieName, Value: "from-cookie"})

	// Then the cookie wins
	req.Equal("from-cookie", TokenFromRequest(r))

	// Given only the query string
	r = httptest.NewRequest(http.MethodGet, "/ws?token=from-query", nil)
	req.Equal("from-query", TokenFromRequest(r))

	// Given nothing
	r = httptest.NewRequest(http.MethodGet, "/ws", nil)
	req.Empty(TokenFromRequest(r))
}
