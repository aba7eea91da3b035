package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jsamuelsen/quotevault/internal/domain"
	"github.com/jsamuelsen/quotevault/internal/ports"
)

// DefaultTokenTTL is how long an issued token stays valid.
const DefaultTokenTTL = 7 * 24 * time.Hour

// ErrInvalidToken is returned for any token that fails verification.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the token payload. The web client reads id and username;
// sub mirrors id.
type Claims struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// JWTConfig configures a JWTIssuer.
type JWTConfig struct {
	Secret string
	TTL    time.Duration
	Issuer string

	// Now defaults to time.Now.
	Now func() time.Time
}

// JWTIssuer signs and verifies HS256 tokens. Implements ports.TokenIssuer.
type JWTIssuer struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

var _ ports.TokenIssuer = (*JWTIssuer)(nil)

// NewJWTIssuer returns an issuer. The secret must not be empty.
func NewJWTIssuer(cfg JWTConfig) (*JWTIssuer, error) {
	if cfg.Secret == "" {
		return nil, errors.New("jwt secret is required")
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &JWTIssuer{secret: []byte(cfg.Secret), ttl: ttl, issuer: cfg.Issuer, now: now}, nil
}

// Issue signs a token for id.
func (i *JWTIssuer) Issue(id domain.Identity) (string, error) {
	now := i.now()

	claims := &Claims{
		ID:       id.UserID,
		Username: id.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(id.UserID, 10),
			Issuer:    i.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

// Verify checks the signature, algorithm and expiry of token and returns the
// identity it carries. Every failure wraps ErrInvalidToken.
func (i *JWTIssuer) Verify(token string) (domain.Identity, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(i.now),
		jwt.WithExpirationRequired(),
	}

	if i.issuer != "" {
		opts = append(opts, jwt.WithIssuer(i.issuer))
	}

	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}

		return i.secret, nil
	}, opts...)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.ID <= 0 {
		return domain.Identity{}, ErrInvalidToken
	}

	return domain.Identity{UserID: claims.ID, Username: claims.Username}, nil
}
