package toml

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/avasseur/fitcoach-cli/internal/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	sessionPath := filepath.Join(t.TempDir(), "session.toml")
	config := viper.New()
	config.Set("session.path", sessionPath)

	repo, err := NewRepository(config)
	require.NoError(t, err)

	require.NoError(t, repo.Put(context.Background(), "jwt-abc"))

	got, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "jwt-abc", got)

	require.NoError(t, repo.Put(context.Background(), "jwt-def"))

	got, err = repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "jwt-def", got)
}

func TestRepositoryGetReturnsNotFoundWhenFileMissing(t *testing.T) {
	t.Parallel()

	sessionPath := filepath.Join(t.TempDir(), "session.toml")
	config := viper.New()
	config.Set("session.path", sessionPath)

	repo, err := NewRepository(config)
	require.NoError(t, err)

	_, err = repo.Get(context.Background())
	require.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestRepositoryDeleteRemovesTokenAndIsIdempotent(t *testing.T) {
	t.Parallel()

	sessionPath := filepath.Join(t.TempDir(), "session.toml")
	config := viper.New()
	config.Set("session.path", sessionPath)

	repo, err := NewRepository(config)
	require.NoError(t, err)

	require.NoError(t, repo.Put(context.Background(), "jwt-abc"))
	require.NoError(t, repo.Delete(context.Background()))

	_, err = repo.Get(context.Background())
	require.ErrorIs(t, err, domain.ErrSessionNotFound)

	// Deleting an already-cleared session is a no-op.
	require.NoError(t, repo.Delete(context.Background()))
}

func TestRepositoryPutRejectsEmptyToken(t *testing.T) {
	t.Parallel()

	sessionPath := filepath.Join(t.TempDir(), "session.toml")
	config := viper.New()
	config.Set("session.path", sessionPath)

	repo, err := NewRepository(config)
	require.NoError(t, err)

	require.Error(t, repo.Put(context.Background(), ""))
}

func TestRepositoryWritesRestrictiveFileMode(t *testing.T) {
	t.Parallel()

	sessionPath := filepath.Join(t.TempDir(), "session.toml")
	config := viper.New()
	config.Set("session.path", sessionPath)

	repo, err := NewRepository(config)
	require.NoError(t, err)

	require.NoError(t, repo.Put(context.Background(), "jwt-abc"))

	info, err := os.Stat(sessionPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestRepositoryRejectsNewerSchemaVersion(t *testing.T) {
	t.Parallel()

	sessionPath := filepath.Join(t.TempDir(), "session.toml")
	require.NoError(t, os.WriteFile(sessionPath, []byte("version = 99\n\n[session]\ntoken = \"jwt\"\n"), 0o600))

	config := viper.New()
	config.Set("session.path", sessionPath)

	repo, err := NewRepository(config)
	require.NoError(t, err)

	_, err = repo.Get(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported session schema version")
}
