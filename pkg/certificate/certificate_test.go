package certificate

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestNewRequiresOutputDir(t *testing.T) {
	_, err := New(Config{}, zerolog.New(io.Discard))
	require.Error(t, err)
}

func TestNewCreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "certs")

	_, err := New(Config{OutputDir: dir}, zerolog.New(io.Discard))
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestIssueWritesCertificate(t *testing.T) {
	dir := t.TempDir()

	svc, err := New(Config{OutputDir: dir}, zerolog.New(io.Discard))
	require.NoError(t, err)

	filename, err := svc.Issue(context.Background(), 42, "Alice", 20)
	require.NoError(t, err)
	require.Equal(t, "42_certificate.png", filename)

	info, err := os.Stat(filepath.Join(dir, filename))
	require.NoError(t, err)
	require.NotZero(t, info.Size())
}

func TestIssueHonorsCancelledContext(t *testing.T) {
	svc, err := New(Config{OutputDir: t.TempDir()}, zerolog.New(io.Discard))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = svc.Issue(ctx, 42, "Alice", 20)
	require.ErrorIs(t, err, context.Canceled)
}
