package httpadapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jny0444/crowdfund/internal/config/configs"
	"github.com/jny0444/crowdfund/internal/core/domain"
)

var errUnauthorized = errors.New("missing or invalid bearer token")

type callerKey struct{}

// Authenticator issues and verifies HS256 tokens whose subject is the
// caller address.
type Authenticator struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewAuthenticator builds an Authenticator from cfg.
func NewAuthenticator(cfg configs.Auth) *Authenticator {
	return &Authenticator{secret: []byte(cfg.Secret), issuer: cfg.Issuer, ttl: cfg.TokenTTL}
}

// Issue signs a token for addr.
func (a *Authenticator) Issue(addr domain.Address) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   addr.String(),
		Issuer:    a.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

// Verify parses a signed token and returns the caller address it carries.
func (a *Authenticator) Verify(tokenString string) (domain.Address, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.secret, nil
	}, jwt.WithIssuer(a.issuer), jwt.WithExpirationRequired())
	if err != nil {
		return "", fmt.Errorf("%w: %v", errUnauthorized, err)
	}
	addr, err := domain.ParseAddress(claims.Subject)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errUnauthorized, err)
	}
	return addr, nil
}

// Middleware rejects requests without a valid bearer token and stores the
// caller address in the request context.
func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Code: codeUnauthorized, Error: errUnauthorized.Error()})
			return
		}
		addr, err := a.Verify(token)
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Code: codeUnauthorized, Error: err.Error()})
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), callerKey{}, addr)))
	})
}

// Caller returns the authenticated address stored by Middleware.
func Caller(ctx context.Context) (domain.Address, bool) {
	addr, ok := ctx.Value(callerKey{}).(domain.Address)
	return addr, ok
}
