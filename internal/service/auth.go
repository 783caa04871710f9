package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/notegate/backend/internal/config"
	"github.com/notegate/backend/internal/password"
)

// Secrets shorter than this are rejected outright in production; a short
// HMAC key makes every issued token forgeable.
const minSecretLength = 32

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrNotFound      = errors.New("not found")
	ErrMisconfigured = errors.New("auth config invalid")
)

// AuthService verifies the admin credential and issues and validates
// session tokens. Tokens are self-contained HS256 JWTs; there is no
// server-side session state.
type AuthService struct {
	adminUser string
	adminHash string
	jwtSecret []byte
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(cfg config.AuthConfig, production bool, log zerolog.Logger) (*AuthService, error) {
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("%w: JWT_SECRET is required", ErrMisconfigured)
	}

	tokenTTL, err := time.ParseDuration(cfg.TokenTTL)
	if err != nil || tokenTTL <= 0 {
		return nil, fmt.Errorf("%w: invalid TOKEN_TTL", ErrMisconfigured)
	}

	if production {
		if len(cfg.JWTSecret) < minSecretLength {
			return nil, fmt.Errorf("%w: JWT_SECRET must be at least %d bytes", ErrMisconfigured, minSecretLength)
		}
		if cfg.AdminUser == "" {
			return nil, fmt.Errorf("%w: ADMIN_USER is required", ErrMisconfigured)
		}
		if !password.IsHashFormat(cfg.AdminPassHash) {
			return nil, fmt.Errorf("%w: ADMIN_PASS_HASH is not a valid bcrypt hash", ErrMisconfigured)
		}
	}

	return &AuthService{
		adminUser: cfg.AdminUser,
		adminHash: cfg.AdminPassHash,
		jwtSecret: []byte(cfg.JWTSecret),
		tokenTTL:  tokenTTL,
		log:       log,
	}, nil
}

// Login checks the presented credential against the configured admin
// credential and issues a token on success. Username and password are
// always both evaluated, and the caller receives the same ErrUnauthorized
// whichever one was wrong; only the server-side log records the reason.
func (s *AuthService) Login(username, pass string) (string, int64, error) {
	if s.adminUser == "" || s.adminHash == "" {
		s.log.Error().Msg("auth: admin credential not configured")
		return "", 0, fmt.Errorf("%w: admin credential not configured", ErrMisconfigured)
	}

	usernameMatch := username == s.adminUser
	passwordMatch := password.Verify(s.adminHash, pass)

	if !usernameMatch || !passwordMatch {
		reason := "invalid password"
		if !usernameMatch {
			reason = "invalid username"
		}
		s.log.Warn().Str("username", username).Str("reason", reason).Msg("authentication failed")
		return "", 0, ErrUnauthorized
	}

	token, expiresIn, err := s.IssueToken(username)
	if err != nil {
		s.log.Error().Err(err).Msg("token generation failed")
		return "", 0, err
	}

	s.log.Info().Str("username", username).Msg("authentication successful")
	return token, expiresIn, nil
}

// IssueToken mints a signed token for subject, expiring after the
// configured TTL.
func (s *AuthService) IssueToken(subject string) (string, int64, error) {
	if len(s.jwtSecret) == 0 {
		return "", 0, fmt.Errorf("%w: signing secret not configured", ErrMisconfigured)
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", 0, err
	}

	return signed, int64(s.tokenTTL.Seconds()), nil
}

// ParseToken validates a token string and returns the embedded subject.
// Any defect — bad signature, wrong algorithm, malformed structure,
// expiry in the past — comes back as ErrUnauthorized.
func (s *AuthService) ParseToken(tokenStr string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrUnauthorized
		}
		return s.jwtSecret, nil
	}, jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return "", ErrUnauthorized
	}
	if claims.Subject == "" {
		return "", ErrUnauthorized
	}
	return claims.Subject, nil
}
