package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	pkg_hash "github.com/Skotchmaster/storefront/pkg/hash"
	"github.com/Skotchmaster/storefront/pkg/logging"
	"github.com/Skotchmaster/storefront/pkg/tokens"
	"github.com/Skotchmaster/storefront/pkg/validate"
	"github.com/Skotchmaster/storefront/services/auth/internal/models"
	"github.com/Skotchmaster/storefront/services/auth/internal/repo"
	"github.com/Skotchmaster/storefront/services/auth/internal/transport"
)

var (
	ErrValidation         = errors.New("validation")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserAlreadyExist   = errors.New("user already exist")
)

type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string        { return "validation failed" }
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

type AuthService struct {
	Repo      *repo.GormRepo
	JWTSecret []byte
	AccessTTL time.Duration
	validate  *validator.Validate
}

func NewAuthService(r *repo.GormRepo, secret []byte, ttl time.Duration) *AuthService {
	return &AuthService{Repo: r, JWTSecret: secret, AccessTTL: ttl, validate: validate.New()}
}

type SignInResult struct {
	User        *models.User
	AccessToken string
	AccessExp   time.Time
}

func (s *AuthService) check(req any) error {
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}
	if fields, ok := validate.Fields(err); ok {
		return &ValidationError{Fields: fields}
	}
	return err
}

func (s *AuthService) SignUp(ctx context.Context, req transport.SignUpRequest) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "auth.sign_up")

	if err := s.check(req); err != nil {
		return nil, err
	}

	pwHash, err := pkg_hash.HashPassword(req.Password)
	if err != nil {
		l.Error("sign_up_error", "reason", "cannot hash the password", "error", err)
		return nil, err
	}

	user := models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: pwHash,
	}
	if err := s.Repo.CreateUser(ctx, &user); err != nil {
		if errors.Is(err, repo.ErrUserAlreadyExist) {
			return nil, fmt.Errorf("%s: %w", user.Email, ErrUserAlreadyExist)
		}
		return nil, err
	}
	return &user, nil
}

func (s *AuthService) SignIn(ctx context.Context, req transport.SignInRequest) (*SignInResult, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}

	user, err := s.Repo.UserByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !pkg_hash.CheckPassword(user.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}

	token, exp, err := tokens.NewAccessToken(user.ID.String(), user.Email, s.AccessTTL, s.JWTSecret)
	if err != nil {
		return nil, err
	}

	return &SignInResult{User: user, AccessToken: token, AccessExp: exp}, nil
}
