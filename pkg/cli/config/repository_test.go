package config_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/riskboard/pkg/cli/config"
	"github.com/secmon-lab/riskboard/pkg/service/authprovider"
)

func TestRepositoryConfigure(t *testing.T) {
	ctx := context.Background()

	t.Run("memory", func(t *testing.T) {
		repo, err := config.NewRepositoryForTest(config.BackendMemory, "", "").Configure(ctx)
		gt.NoError(t, err).Required()
		gt.NoError(t, repo.Close())
	})

	t.Run("firestore without project", func(t *testing.T) {
		_, err := config.NewRepositoryForTest(config.BackendFirestore, "", "").Configure(ctx)
		gt.Bool(t, errors.Is(err, config.ErrMissingSetting)).True()
	})

	t.Run("postgres without url", func(t *testing.T) {
		_, err := config.NewRepositoryForTest(config.BackendPostgres, "", "").Configure(ctx)
		gt.Bool(t, errors.Is(err, config.ErrMissingSetting)).True()
	})

	t.Run("unknown backend", func(t *testing.T) {
		_, err := config.NewRepositoryForTest("mysql", "", "").Configure(ctx)
		gt.Bool(t, errors.Is(err, config.ErrInvalidBackend)).True()
	})
}

func TestAuthProviderConfigure(t *testing.T) {
	t.Run("local with secret", func(t *testing.T) {
		p, err := config.NewAuthProviderForTest(config.AuthLocal, "", "", "secret").Configure()
		gt.NoError(t, err).Required()
		_, ok := p.(*authprovider.Local)
		gt.Bool(t, ok).True()
	})

	t.Run("local without secret", func(t *testing.T) {
		_, err := config.NewAuthProviderForTest(config.AuthLocal, "", "", "").Configure()
		gt.NoError(t, err)
	})

	t.Run("supabase", func(t *testing.T) {
		p, err := config.NewAuthProviderForTest(config.AuthSupabase, "https://example.supabase.co", "key", "").Configure()
		gt.NoError(t, err).Required()
		_, ok := p.(*authprovider.Supabase)
		gt.Bool(t, ok).True()
	})

	t.Run("supabase without key", func(t *testing.T) {
		_, err := config.NewAuthProviderForTest(config.AuthSupabase, "https://example.supabase.co", "", "").Configure()
		gt.Bool(t, errors.Is(err, config.ErrMissingSetting)).True()
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := config.NewAuthProviderForTest("oauth", "", "", "").Configure()
		gt.Bool(t, errors.Is(err, config.ErrInvalidBackend)).True()
	})
}

func TestLoggerConfigure(t *testing.T) {
	t.Run("json to stderr", func(t *testing.T) {
		closer, err := config.NewLoggerForTest("debug", "json", "stderr").Configure()
		gt.NoError(t, err).Required()
		closer()
	})

	t.Run("invalid level", func(t *testing.T) {
		_, err := config.NewLoggerForTest("verbose", "console", "stdout").Configure()
		gt.Error(t, err)
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := config.NewLoggerForTest("info", "xml", "stdout").Configure()
		gt.Error(t, err)
	})
}
