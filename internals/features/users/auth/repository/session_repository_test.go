package repository

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authModel "student_result_system/internals/features/users/auth/model"
)

func TestFileStoreSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "session.json")

	st := authModel.SessionState{
		AccessToken:     "acc",
		RefreshToken:    "ref",
		User:            json.RawMessage(`{"id":1,"username":"guru"}`),
		IsAuthenticated: true,
	}
	require.NoError(t, NewFileStore(path).Save(ctx, st))

	// instance baru = "reload halaman"
	got, err := NewFileStore(path).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "acc", got.AccessToken)
	assert.Equal(t, "ref", got.RefreshToken)
	assert.JSONEq(t, `{"id":1,"username":"guru"}`, string(got.User))
	assert.True(t, got.IsAuthenticated)
}

func TestFileStoreUsesStorageKeys(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, NewFileStore(path).Save(ctx, authModel.SessionState{
		AccessToken:     "acc",
		User:            json.RawMessage(`{"id":2}`),
		IsAuthenticated: true,
	}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	kv := map[string]string{}
	require.NoError(t, json.Unmarshal(raw, &kv))

	assert.Equal(t, "acc", kv["accessToken"])
	assert.Equal(t, `{"id":2}`, kv["user"])
	assert.Equal(t, "true", kv["isAuthenticated"])
	_, hasRefresh := kv["refreshToken"]
	assert.False(t, hasRefresh)
}

func TestFileStoreClear(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.json")
	s := NewFileStore(path)

	require.NoError(t, s.Clear(ctx), "clearing a missing file is not an error")
	require.NoError(t, s.Save(ctx, authModel.SessionState{AccessToken: "a"}))
	require.NoError(t, s.Clear(ctx))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewFileStore(path).Load(context.Background())
	assert.Error(t, err)
}

func TestMemoryStoreCopiesUser(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	user := json.RawMessage(`{"id":1}`)
	require.NoError(t, s.Save(ctx, authModel.SessionState{AccessToken: "a", User: user}))
	user[2] = 'X'

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, `{"id":1}`, string(got.User))

	require.NoError(t, s.Clear(ctx))
	got, _ = s.Load(ctx)
	assert.True(t, got.IsZero())
}
