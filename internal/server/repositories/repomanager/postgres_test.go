package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresRepositoryManager_Repositories(t *testing.T) {
	m := NewPostgresRepositoryManager()

	assert.NotNil(t, m.Users(nil))
	assert.NotNil(t, m.Documents(nil))
}

func TestRunMigrations(t *testing.T) {
	orig := gooseUpContext
	t.Cleanup(func() { gooseUpContext = orig })

	var gotDir string
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		gotDir = dir
		return nil
	}

	m := NewPostgresRepositoryManager()
	require.NoError(t, m.RunMigrations(context.Background(), nil))
	assert.Equal(t, ".", gotDir)
}

func TestRunMigrations_Error(t *testing.T) {
	orig := gooseUpContext
	t.Cleanup(func() { gooseUpContext = orig })

	boom := errors.New("migration failed")
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return boom
	}

	m := NewPostgresRepositoryManager()
	require.ErrorIs(t, m.RunMigrations(context.Background(), nil), boom)
}
