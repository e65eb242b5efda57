package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	shareddomain "status-report-server/internal/shared_kernel/domain"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingToken        = errors.New("missing bearer token")
	ErrInvalidToken        = errors.New("invalid token")
	ErrSecretNotConfigured = errors.New("jwt secret not configured")
)

type Authenticator interface {
	Authenticate(ctx context.Context, token string) (shareddomain.Actor, error)
}

type claims struct {
	jwt.RegisteredClaims
	Role string `json:"role,omitempty"`
}

var _ Authenticator = (*JWTAuthenticator)(nil)

// JWTAuthenticator maps HS256 bearer tokens to actors. The subject claim
// becomes the actor ID and the role claim its role.
type JWTAuthenticator struct {
	secret []byte
	issuer string
	now    func() time.Time
}

func NewJWTAuthenticator(secret, issuer string) (*JWTAuthenticator, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, ErrSecretNotConfigured
	}

	return &JWTAuthenticator{
		secret: []byte(secret),
		issuer: issuer,
		now:    time.Now,
	}, nil
}

func (a *JWTAuthenticator) Authenticate(_ context.Context, token string) (shareddomain.Actor, error) {
	if strings.TrimSpace(token) == "" {
		return shareddomain.Actor{}, ErrMissingToken
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(a.now),
	}
	if a.issuer != "" {
		opts = append(opts, jwt.WithIssuer(a.issuer))
	}

	parsed := &claims{}
	tok, err := jwt.NewParser(opts...).ParseWithClaims(token, parsed, func(*jwt.Token) (any, error) {
		return a.secret, nil
	})
	if err != nil {
		return shareddomain.Actor{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !tok.Valid || parsed.Subject == "" {
		return shareddomain.Actor{}, ErrInvalidToken
	}

	role, err := shareddomain.ParseRole(parsed.Role)
	if err != nil {
		return shareddomain.Actor{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	return shareddomain.Actor{
		ID:   shareddomain.ID(parsed.Subject),
		Role: role,
	}, nil
}

// Issue signs a token for the actor. A zero ttl yields a token without expiry.
func (a *JWTAuthenticator) Issue(actor shareddomain.Actor, ttl time.Duration) (string, error) {
	now := a.now()
	registered := jwt.RegisteredClaims{
		Subject:  actor.ID.String(),
		Issuer:   a.issuer,
		IssuedAt: jwt.NewNumericDate(now),
	}
	if ttl != 0 {
		registered.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: registered,
		Role:             string(actor.Role),
	})

	signed, err := token.SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

func BearerToken(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	return parts[1], true
}

type actorKey struct{}

func WithActor(ctx context.Context, actor shareddomain.Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// ActorFromContext falls back to an anonymous, unprivileged actor.
func ActorFromContext(ctx context.Context) shareddomain.Actor {
	if actor, ok := ctx.Value(actorKey{}).(shareddomain.Actor); ok {
		return actor
	}
	return shareddomain.Actor{Role: shareddomain.RoleUser}
}
