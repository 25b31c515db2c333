package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/damemahigan/site-services/api/internal/public/domain"
)

// DefaultPassword is the first-run admin credential, replaced through
// ChangePassword. The gate steers the admin UI; it is not a real security
// boundary and is documented as such.
const DefaultPassword = "admin123"

const tokenSubject = "admin"

type authService struct {
	repo     CredentialRepository
	secret   []byte
	issuer   string
	tokenTTL time.Duration
}

// NewAuthService creates the admin-mode gate.
func NewAuthService(repo CredentialRepository, secret []byte, issuer string, tokenTTL time.Duration) AuthService {
	return &authService{repo: repo, secret: secret, issuer: issuer, tokenTTL: tokenTTL}
}

// EnsureCredential seeds the default credential when none has ever been
// set. Safe to call on every startup.
func EnsureCredential(ctx context.Context, repo CredentialRepository) error {
	_, err := repo.Get(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return repo.Set(ctx, string(hash))
}

// Login validates the password against the stored credential and issues a
// bearer token on success. A wrong password changes nothing.
func (s *authService) Login(ctx context.Context, password string) (string, error) {
	if err := s.verifyPassword(ctx, password); err != nil {
		return "", err
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   tokenSubject,
		Issuer:    s.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign admin token: %w", err)
	}
	return token, nil
}

// ChangePassword replaces the stored credential. The current password is
// required as proof; a mismatch leaves the credential unchanged.
func (s *authService) ChangePassword(ctx context.Context, current, next string) error {
	if err := s.verifyPassword(ctx, current); err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash new password: %w", err)
	}
	return s.repo.Set(ctx, string(hash))
}

// VerifyToken checks an issued bearer token.
func (s *authService) VerifyToken(token string) error {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %s", t.Method.Alg())
		}
		return s.secret, nil
	}, jwt.WithLeeway(30*time.Second))
	if err != nil || !parsed.Valid {
		return ErrInvalidCredentials
	}
	if claims.Subject != tokenSubject {
		return ErrInvalidCredentials
	}
	if s.issuer != "" && claims.Issuer != s.issuer {
		return ErrInvalidCredentials
	}
	return nil
}

func (s *authService) verifyPassword(ctx context.Context, password string) error {
	hash, err := s.repo.Get(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		// Nothing has ever been stored: only the first-run default opens
		// the gate, and logging in with it seeds the record.
		if password != DefaultPassword {
			return ErrInvalidCredentials
		}
		seeded, hashErr := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.DefaultCost)
		if hashErr != nil {
			return hashErr
		}
		return s.repo.Set(ctx, string(seeded))
	}
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return ErrInvalidCredentials
	}
	return nil
}
