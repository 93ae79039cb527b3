package repository

import (
	"context"
	"encoding/json"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	authModel "student_result_system/internals/features/users/auth/model"
)

// openTestDB butuh postgres sungguhan; tanpa TEST_DATABASE_DSN test di-skip.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set")
	}
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func TestGormStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	profile := "test-" + uuid.NewString()
	store, err := NewGormStore(db, profile)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Clear(context.Background()) })

	empty, err := store.Load(ctx)
	require.NoError(t, err)
	assert.True(t, empty.IsZero())

	st := authModel.SessionState{
		AccessToken:     "acc",
		RefreshToken:    "ref",
		User:            json.RawMessage(`{"id":7,"username":"guru"}`),
		IsAuthenticated: true,
	}
	require.NoError(t, store.Save(ctx, st))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "acc", got.AccessToken)
	assert.Equal(t, "ref", got.RefreshToken)
	assert.True(t, got.IsAuthenticated)
	assert.JSONEq(t, `{"id":7,"username":"guru"}`, string(got.User))

	// save kedua menimpa row yang sama
	st.AccessToken = "acc-2"
	require.NoError(t, store.Save(ctx, st))
	got, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "acc-2", got.AccessToken)

	require.NoError(t, store.Clear(ctx))
	got, err = store.Load(ctx)
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestGormStoreProfilesAreIsolated(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	a, err := NewGormStore(db, "test-"+uuid.NewString())
	require.NoError(t, err)
	b, err := NewGormStore(db, "test-"+uuid.NewString())
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = a.Clear(context.Background())
		_ = b.Clear(context.Background())
	})

	require.NoError(t, a.Save(ctx, authModel.SessionState{AccessToken: "only-a", IsAuthenticated: true}))

	got, err := b.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got.AccessToken)

	require.NoError(t, b.Clear(ctx))
	got, err = a.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "only-a", got.AccessToken)
}
