// internals/features/users/auth/repository/session_repository.go
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"

	authModel "student_result_system/internals/features/users/auth/model"
)

var codec = sonic.ConfigStd

// Store adalah durable storage untuk session. Tidak ada locking antar
// load-modify-save di level ini: write terakhir yang menang.
type Store interface {
	Load(ctx context.Context) (authModel.SessionState, error)
	Save(ctx context.Context, st authModel.SessionState) error
	Clear(ctx context.Context) error
}

/* ====================== FILE ====================== */

// FileStore menyimpan session sebagai JSON object dengan key yang sama
// seperti localStorage: accessToken, refreshToken, user (JSON string), isAuthenticated.
type FileStore struct {
	path string
	mu   sync.Mutex // hanya melindungi tulisan file, bukan alur refresh
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load(ctx context.Context) (authModel.SessionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return authModel.SessionState{}, nil
	}
	if err != nil {
		return authModel.SessionState{}, fmt.Errorf("gagal membaca session file: %w", err)
	}
	if len(raw) == 0 {
		return authModel.SessionState{}, nil
	}

	kv := map[string]string{}
	if err := codec.Unmarshal(raw, &kv); err != nil {
		return authModel.SessionState{}, fmt.Errorf("session file rusak: %w", err)
	}

	st := authModel.SessionState{
		AccessToken:     kv[authModel.KeyAccessToken],
		RefreshToken:    kv[authModel.KeyRefreshToken],
		IsAuthenticated: kv[authModel.KeyIsAuthenticated] == "true",
	}
	if u := kv[authModel.KeyUser]; u != "" {
		st.User = json.RawMessage(u)
	}
	return st, nil
}

func (s *FileStore) Save(ctx context.Context, st authModel.SessionState) error {
	kv := map[string]string{}
	if st.AccessToken != "" {
		kv[authModel.KeyAccessToken] = st.AccessToken
	}
	if st.RefreshToken != "" {
		kv[authModel.KeyRefreshToken] = st.RefreshToken
	}
	if len(st.User) > 0 {
		kv[authModel.KeyUser] = string(st.User)
	}
	if st.IsAuthenticated {
		kv[authModel.KeyIsAuthenticated] = "true"
	}

	raw, err := codec.MarshalIndent(kv, "", "  ")
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("gagal membuat folder session: %w", err)
		}
	}
	// tulis ke tmp lalu rename supaya file tidak setengah jadi
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("gagal menulis session file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("gagal menyimpan session file: %w", err)
	}
	return nil
}

func (s *FileStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("gagal menghapus session file: %w", err)
	}
	return nil
}

/* ====================== MEMORY ====================== */

type MemoryStore struct {
	mu sync.Mutex
	st authModel.SessionState
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(ctx context.Context) (authModel.SessionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.st
	st.User = append(json.RawMessage(nil), s.st.User...)
	return st, nil
}

func (s *MemoryStore) Save(ctx context.Context, st authModel.SessionState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st = st
	s.st.User = append(json.RawMessage(nil), st.User...)
	return nil
}

func (s *MemoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st = authModel.SessionState{}
	return nil
}

/* ====================== POSTGRES (gorm) ====================== */

const DefaultSessionProfile = "default"

type GormStore struct {
	db      *gorm.DB
	profile string
}

// NewGormStore memastikan tabel client_sessions ada.
func NewGormStore(db *gorm.DB, profile string) (*GormStore, error) {
	if profile == "" {
		profile = DefaultSessionProfile
	}
	if err := db.AutoMigrate(&authModel.SessionModel{}); err != nil {
		return nil, fmt.Errorf("gagal migrasi client_sessions: %w", err)
	}
	return &GormStore{db: db, profile: profile}, nil
}

func (s *GormStore) Load(ctx context.Context) (authModel.SessionState, error) {
	var row authModel.SessionModel
	err := s.db.WithContext(ctx).
		Where("session_profile = ?", s.profile).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return authModel.SessionState{}, nil
	}
	if err != nil {
		return authModel.SessionState{}, err
	}
	return row.ToState(), nil
}

func (s *GormStore) Save(ctx context.Context, st authModel.SessionState) error {
	row := authModel.SessionModelFromState(s.profile, st)
	return s.db.WithContext(ctx).Save(&row).Error
}

func (s *GormStore) Clear(ctx context.Context) error {
	return s.db.WithContext(ctx).
		Where("session_profile = ?", s.profile).
		Delete(&authModel.SessionModel{}).Error
}
