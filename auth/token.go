// Package auth verifies the access tokens issued by the main application.
// Issuance stays outside this service; GenerateToken only serves seeding and tests.
package auth

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"sharemyshows-live/contract"
	"sharemyshows-live/domain"
	"sharemyshows-live/errors"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// CookieName is the cookie the web application stores its access token in.
	CookieName = "access_token_cookie"
	// QueryParam carries the token for clients that cannot send cookies on upgrade.
	QueryParam = "token"
)

var _ contract.TokenVerifier = (*Verifier)(nil)

// Verifier checks HS256 tokens whose subject is the numeric user id.
type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

func (v *Verifier) UserFromToken(token string) (domain.UserID, error) {
	if token == "" {
		return 0, fmt.Errorf("%w: missing token", errors.ErrUnauthorized)
	}
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", errors.ErrUnauthorized, err)
	}
	if !parsed.Valid {
		return 0, fmt.Errorf("%w: %v", errors.ErrUnauthorized, jwt.ErrSignatureInvalid)
	}

	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid subject %q", errors.ErrUnauthorized, claims.Subject)
	}
	return domain.UserID(id), nil
}

// GenerateToken creates a signed token for a specific user.
func GenerateToken(secret string, userID domain.UserID, duration time.Duration) (string, error) {
	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(int64(userID), 10),
		ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
		IssuedAt:  jwt.NewNumericDate(now),
		Issuer:    "sharemyshows",
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// TokenFromRequest reads the cookie first, then the query string.
func TokenFromRequest(r *http.Request) string {
	if cookie, err := r.Cookie(CookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	return r.URL.Query().Get(QueryParam)
}
