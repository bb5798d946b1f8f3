package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/Gong130/Server-of-iNews/models"
	"github.com/Gong130/Server-of-iNews/store"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmptyCredentials = errors.New("username and password are required")
	ErrUsernameTaken    = errors.New("username already exists")
	// ErrInvalidCredentials covers both unknown username and wrong password
	// so responses never reveal which one it was.
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// UserStore is the slice of the credential store the service needs.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByUsername(ctx context.Context, username string) (*models.User, error)
}

// Claims is the signed token payload: registered claims plus the role.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// Service turns plaintext credentials into stored bcrypt hashes and signed
// tokens, and verifies tokens on protected requests.
type Service struct {
	users  UserStore
	secret []byte
	ttl    time.Duration
	logger *slog.Logger
}

func NewService(users UserStore, jwtSecret string, ttl time.Duration, logger *slog.Logger) *Service {
	return &Service{
		users:  users,
		secret: []byte(jwtSecret),
		ttl:    ttl,
		logger: logger,
	}
}

// Register creates a new user with role "user". The duplicate lookup is only
// an early exit; the unique index decides races, so a constraint violation
// from Create also reports ErrUsernameTaken.
func (s *Service) Register(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" || password == "" {
		return ErrEmptyCredentials
	}

	if _, err := s.users.FindByUsername(ctx, username); err == nil {
		return ErrUsernameTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("query user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         "user",
	}
	if err := s.users.Create(ctx, &user); err != nil {
		if errors.Is(err, store.ErrDuplicateUsername) {
			return ErrUsernameTaken
		}
		s.logger.Error("create user failed", slog.String("username", username), slog.String("error", err.Error()))
		return fmt.Errorf("create user: %w", err)
	}

	s.logger.Info("user registered", slog.String("username", username))
	return nil
}

// Login verifies the credentials and returns a signed access token.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" || password == "" {
		return "", ErrEmptyCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("query user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.issueToken(user.ID, user.Role)
	if err != nil {
		s.logger.Error("sign token failed", slog.String("username", username), slog.String("error", err.Error()))
		return "", fmt.Errorf("sign token: %w", err)
	}

	s.logger.Info("user logged in", slog.String("username", username), slog.String("role", user.Role))
	return token, nil
}

// Verify validates signature and expiry. Malformed, expired and tampered
// tokens all collapse to ErrInvalidToken.
func (s *Service) Verify(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (s *Service) issueToken(userID uint, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Role: role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
