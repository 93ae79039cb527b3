package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/golang-jwt/jwt/v4"

	authModel "student_result_system/internals/features/users/auth/model"
	authRepo "student_result_system/internals/features/users/auth/repository"
)

var codec = sonic.ConfigStd

// Session membungkus Store dengan operasi login/logout.
// Tidak ada mutex di sekitar load-modify-save: refresh paralel bisa saling
// menimpa dan write terakhir yang menang.
type Session struct {
	store  authRepo.Store
	sealer *TokenSealer
	logger kitlog.Logger
}

func NewSession(store authRepo.Store, sealer *TokenSealer, logger kitlog.Logger) *Session {
	if logger == nil {
		logger = kitlog.NewNopLogger()
	}
	return &Session{
		store:  store,
		sealer: sealer,
		logger: kitlog.With(logger, "component", "session"),
	}
}

// SetLogin menyimpan access, refresh, user, dan flag isAuthenticated.
func (s *Session) SetLogin(ctx context.Context, access, refresh string, user json.RawMessage) error {
	sealedAccess, err := s.sealer.Seal(access)
	if err != nil {
		return fmt.Errorf("gagal seal access token: %w", err)
	}
	sealedRefresh, err := s.sealer.Seal(refresh)
	if err != nil {
		return fmt.Errorf("gagal seal refresh token: %w", err)
	}
	return s.store.Save(ctx, authModel.SessionState{
		AccessToken:     sealedAccess,
		RefreshToken:    sealedRefresh,
		User:            user,
		IsAuthenticated: true,
	})
}

func (s *Session) SetAccessToken(ctx context.Context, access string) error {
	st, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	if st.RefreshToken == "" {
		// sudah logout selama refresh berjalan; jangan hidupkan lagi session-nya
		level.Debug(s.logger).Log("msg", "skip access token update, session already cleared")
		return nil
	}
	if st.AccessToken, err = s.sealer.Seal(access); err != nil {
		return fmt.Errorf("gagal seal access token: %w", err)
	}
	return s.store.Save(ctx, st)
}

// Clear menghapus seluruh session (token, user, flag).
func (s *Session) Clear(ctx context.Context) error {
	return s.store.Clear(ctx)
}

func (s *Session) AccessToken(ctx context.Context) (string, error) {
	st, err := s.store.Load(ctx)
	if err != nil {
		return "", err
	}
	return s.open(st.AccessToken), nil
}

func (s *Session) RefreshToken(ctx context.Context) (string, error) {
	st, err := s.store.Load(ctx)
	if err != nil {
		return "", err
	}
	return s.open(st.RefreshToken), nil
}

// CurrentUser mengembalikan nil kalau belum login.
func (s *Session) CurrentUser(ctx context.Context) (*authModel.UserProfile, error) {
	st, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if len(st.User) == 0 {
		return nil, nil
	}
	var u authModel.UserProfile
	if err := codec.Unmarshal(st.User, &u); err != nil {
		return nil, fmt.Errorf("user di session tidak valid: %w", err)
	}
	return &u, nil
}

// IsAuthenticated hanya cek keberadaan access token, tanpa cek expiry.
func (s *Session) IsAuthenticated(ctx context.Context) bool {
	token, err := s.AccessToken(ctx)
	if err != nil {
		level.Warn(s.logger).Log("msg", "load session failed", "err", err)
		return false
	}
	return token != ""
}

// AccessTokenExpiry membaca claim exp tanpa verifikasi signature (informasi saja).
func (s *Session) AccessTokenExpiry(ctx context.Context) (time.Time, bool) {
	token, err := s.AccessToken(ctx)
	if err != nil || token == "" {
		return time.Time{}, false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return time.Time{}, false
	}
	return time.Unix(int64(exp), 0).UTC(), true
}

func (s *Session) open(stored string) string {
	if stored == "" {
		return ""
	}
	plain, err := s.sealer.Open(stored)
	if err != nil {
		// secret berubah: perlakukan seperti belum ada token
		level.Warn(s.logger).Log("msg", "stored token cannot be opened", "err", err)
		return ""
	}
	return plain
}
