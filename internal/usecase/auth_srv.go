package usecase

import (
	"context"
	"fmt"
	"time"

	"locker-rental/internal/api"
	"locker-rental/internal/data/entity"
	"locker-rental/internal/dto/request"
	"locker-rental/internal/session"
	"locker-rental/internal/state"
	"locker-rental/pkg/utils"

	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*entity.User, error)
	Login(ctx context.Context, req *request.LoginRequest) (*entity.User, error)
	Logout(ctx context.Context) error
	Profile(ctx context.Context) (*entity.User, error)
	UpdateProfile(ctx context.Context, req *request.UpdateProfileRequest) (*entity.User, error)
}

type authService struct {
	client   *api.Client
	sessions *session.Store
	store    *state.AuthStore
	log      *zap.Logger
}

func NewAuthService(client *api.Client, sessions *session.Store, store *state.AuthStore, log *zap.Logger) AuthService {
	return &authService{
		client:   client,
		sessions: sessions,
		store:    store,
		log:      log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*entity.User, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	s.store.StartAuth()
	resp, err := s.client.Register(ctx, req)
	if err != nil {
		s.store.AuthFailed(err.Error())
		return nil, err
	}

	if err := s.persistSession(resp.Token, resp.ExpiresAt, resp.User); err != nil {
		s.log.Warn("Failed to persist session after register", zap.Error(err))
	}

	user := resp.User
	s.store.AuthSucceeded(&user)
	s.log.Info("User registered", zap.String("user_id", user.ID))
	return &user, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*entity.User, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	s.store.StartAuth()
	resp, err := s.client.Login(ctx, req)
	if err != nil {
		s.store.AuthFailed(err.Error())
		return nil, err
	}

	if err := s.persistSession(resp.Token, resp.ExpiresAt, resp.User); err != nil {
		s.log.Error("Failed to persist session", zap.Error(err))
		return nil, fmt.Errorf("failed to save session")
	}

	user := resp.User
	s.store.AuthSucceeded(&user)
	s.log.Info("User logged in", zap.String("user_id", user.ID))
	return &user, nil
}

// Logout is purely client-side: drop the persisted credential.
func (s *authService) Logout(ctx context.Context) error {
	s.sessions.Clear()
	s.log.Info("User logged out")
	return nil
}

func (s *authService) Profile(ctx context.Context) (*entity.User, error) {
	s.store.StartAuth()
	user, err := s.client.GetProfile(ctx)
	if err != nil {
		s.store.AuthFailed(err.Error())
		return nil, err
	}
	s.store.AuthSucceeded(user)
	return user, nil
}

func (s *authService) UpdateProfile(ctx context.Context, req *request.UpdateProfileRequest) (*entity.User, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	s.store.StartAuth()
	user, err := s.client.UpdateProfile(ctx, req)
	if err != nil {
		s.store.AuthFailed(err.Error())
		return nil, err
	}
	s.store.AuthSucceeded(user)

	// Keep the persisted user copy in sync with the server.
	if cur := s.sessions.Current(); cur != nil {
		cur.User = *user
		if err := s.sessions.Save(*cur); err != nil {
			s.log.Warn("Failed to refresh persisted user", zap.Error(err))
		}
	}
	return user, nil
}

func (s *authService) persistSession(token string, expiresAt time.Time, user entity.User) error {
	return s.sessions.Save(session.Session{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	})
}
