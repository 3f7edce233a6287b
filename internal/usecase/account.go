package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/eridiumdev/clickpay-web/config"
	"github.com/eridiumdev/clickpay-web/internal/entity"
	"github.com/eridiumdev/clickpay-web/internal/infrastructure/repository"
	"github.com/eridiumdev/clickpay-web/pkg/logger"
)

type RegisterInput struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     entity.Role `json:"role"`
}

type AccountUC struct {
	backend  BackendAPI
	sessions repository.SessionRepo
	ttl      time.Duration
	log      *logger.Logger
}

func NewAccount(cfg config.Session, backend BackendAPI, sessions repository.SessionRepo, log *logger.Logger) *AccountUC {
	return &AccountUC{
		backend:  backend,
		sessions: sessions,
		ttl:      cfg.TTL,
		log:      log,
	}
}

func (uc *AccountUC) Login(ctx context.Context, email, password string) (*entity.Session, *entity.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, nil, invalid("email and password are required")
	}

	var res entity.AuthResult
	err := uc.backend.Post(ctx, "/api/auth/login", "", map[string]string{
		"email":    email,
		"password": password,
	}, &res)
	if err != nil {
		return nil, nil, fromBackend(err)
	}

	return uc.startSession(ctx, &res)
}

// Register only opens self-service accounts, admins are made elsewhere.
func (uc *AccountUC) Register(ctx context.Context, in RegisterInput) (*entity.Session, *entity.User, error) {
	in.Email = strings.TrimSpace(in.Email)
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, nil, invalid("name, email and password are required")
	}
	if in.Role == entity.RoleGuest {
		in.Role = entity.RoleUser
	}
	if in.Role != entity.RoleUser && in.Role != entity.RoleAdvertiser {
		return nil, nil, ErrInvalidRole
	}

	var res entity.AuthResult
	err := uc.backend.Post(ctx, "/api/auth/register", "", in, &res)
	if err != nil {
		return nil, nil, fromBackend(err)
	}

	return uc.startSession(ctx, &res)
}

func (uc *AccountUC) startSession(ctx context.Context, res *entity.AuthResult) (*entity.Session, *entity.User, error) {
	if res.Token == "" || !res.User.Role.Valid() {
		return nil, nil, ErrBackendUnavailable
	}

	now := time.Now().UTC()
	session := &entity.Session{
		ID:        uuid.NewString(),
		UserID:    res.User.ID,
		Role:      res.User.Role,
		APIToken:  res.Token,
		CreatedAt: now,
		ExpiresAt: now.Add(uc.ttl),
	}

	err := uc.sessions.SaveSession(ctx, session)
	if err != nil {
		return nil, nil, uc.log.Wrap(err, "save session")
	}

	uc.log.Info(ctx).Str("user_id", session.UserID).Str("role", string(session.Role)).Msg("session started")

	return session, &res.User, nil
}

func (uc *AccountUC) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	err := uc.sessions.DeleteSession(ctx, sessionID)
	if err != nil {
		return uc.log.Wrap(err, "delete session")
	}
	return nil
}

func (uc *AccountUC) Me(ctx context.Context, s *entity.Session) (*entity.User, error) {
	token, err := tokenOf(s)
	if err != nil {
		return nil, err
	}

	var user entity.User
	err = uc.backend.Get(ctx, "/api/auth/me", token, &user)
	if err != nil {
		return nil, fromBackend(err)
	}
	return &user, nil
}

func (uc *AccountUC) FindSession(ctx context.Context, id string) (*entity.Session, error) {
	session, err := uc.sessions.FindSession(ctx, id)
	if err != nil {
		return nil, uc.log.Wrap(err, "find session")
	}
	if session == nil || session.Expired(time.Now()) {
		return nil, nil
	}
	return session, nil
}

func tokenOf(s *entity.Session) (string, error) {
	if s == nil || s.APIToken == "" {
		return "", ErrUnauthorized
	}
	return s.APIToken, nil
}
