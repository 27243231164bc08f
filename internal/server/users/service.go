package users

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/notekeeper/internal/common"
	"github.com/dmitrijs2005/notekeeper/internal/server/auth"
	"github.com/dmitrijs2005/notekeeper/internal/server/config"
	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	repo                  Repository
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

func NewService(repo Repository, cfg *config.Config) *Service {
	return &Service{
		repo:                  repo,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Register creates a user with the given credentials. The admin flag is
// honored only when the caller supplies it explicitly; the default is a
// regular user. The returned View never carries the password hash.
func (s *Service) Register(ctx context.Context, name, username, password string, isAdmin bool) (*View, error) {

	if username == "" || password == "" {
		return nil, common.ErrorValidation
	}

	_, err := s.repo.GetByUsername(ctx, username)
	if err == nil {
		return nil, common.ErrorDuplicateUsername
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, common.ErrorInternal
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.ErrorInternal
	}

	now := time.Now().UTC()
	user := &User{
		Name:         name,
		Username:     username,
		PasswordHash: string(hash),
		IsAdmin:      isAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return user.View(), nil
}

// Login checks the credentials and issues a session token. An unknown
// username and a wrong password fail with the same error, so a caller
// cannot probe which usernames exist.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {

	if username == "" || password == "" {
		return "", common.ErrorValidation
	}

	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorInvalidCredentials
		}
		return "", common.ErrorInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", common.ErrorInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, user.IsAdmin, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}

	return token, nil
}
