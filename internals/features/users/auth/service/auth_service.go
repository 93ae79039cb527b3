package service

import (
	"context"
	"fmt"
	"strings"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"student_result_system/internals/constants"
	authHelper "student_result_system/internals/features/users/auth/helper"
	authModel "student_result_system/internals/features/users/auth/model"
)

/* ==========================
   Const & Types
========================== */

const (
	PathRegister = "/auth/register/"
	PathLogin    = "/auth/login/"
)

// Poster: call tanpa bearer (login/register).
type Poster interface {
	Post(ctx context.Context, path string, payload any, out any) error
}

type AuthService struct {
	api     Poster
	session *Session
	logger  kitlog.Logger

	afterLogin  []func(ctx context.Context)
	afterLogout []func(ctx context.Context)
}

func NewAuthService(api Poster, session *Session, logger kitlog.Logger) *AuthService {
	if logger == nil {
		logger = kitlog.NewNopLogger()
	}
	return &AuthService{
		api:     api,
		session: session,
		logger:  kitlog.With(logger, "component", "auth"),
	}
}

// OnLogin mendaftarkan hook setelah login berhasil (mis. warm-up cache).
func (s *AuthService) OnLogin(fn func(ctx context.Context)) {
	s.afterLogin = append(s.afterLogin, fn)
}

func (s *AuthService) OnLogout(fn func(ctx context.Context)) {
	s.afterLogout = append(s.afterLogout, fn)
}

func (s *AuthService) Session() *Session { return s.session }

/* ==========================
   REGISTER
========================== */

// Register memvalidasi di sisi client dulu; kalau gagal tidak ada request ke API.
func (s *AuthService) Register(ctx context.Context, req authModel.RegisterRequest) (map[string]any, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	if req.Role == "" {
		req.Role = constants.DefaultRegisterRole
	}
	if err := authHelper.ValidateRegisterInput(req); err != nil {
		return nil, err
	}

	payload := authModel.RegisterPayload{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	}
	var user map[string]any
	if err := s.api.Post(ctx, PathRegister, payload, &user); err != nil {
		return nil, err
	}
	level.Info(s.logger).Log("msg", "registered", "username", req.Username, "role", req.Role)
	return user, nil
}

/* ==========================
   LOGIN / LOGOUT
========================== */

func (s *AuthService) Login(ctx context.Context, req authModel.LoginRequest) (*authModel.UserProfile, error) {
	req.Username = strings.TrimSpace(req.Username)
	if err := authHelper.ValidateLoginInput(req); err != nil {
		return nil, err
	}

	var resp authModel.LoginResponse
	if err := s.api.Post(ctx, PathLogin, req, &resp); err != nil {
		return nil, err
	}
	if err := s.session.SetLogin(ctx, resp.Access, resp.Refresh, resp.User); err != nil {
		return nil, fmt.Errorf("gagal menyimpan session: %w", err)
	}
	level.Info(s.logger).Log("msg", "logged in", "username", req.Username)

	for _, fn := range s.afterLogin {
		fn(ctx)
	}
	return s.session.CurrentUser(ctx)
}

func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.session.Clear(ctx); err != nil {
		return fmt.Errorf("gagal menghapus session: %w", err)
	}
	for _, fn := range s.afterLogout {
		fn(ctx)
	}
	level.Info(s.logger).Log("msg", "logged out")
	return nil
}
