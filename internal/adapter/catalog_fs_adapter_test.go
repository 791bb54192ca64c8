package adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/impactplan/internal/model"
)

func writeAction(t *testing.T, root, service, setup, content string) {
	t.Helper()

	dir := filepath.Join(root, service, setup)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ActionFile), []byte(content), 0o600))
}

func TestLocalCatalogAdapter_Discover_SortedWithSecrets(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeAction(t, root, "s3", "minio_s3", "name: minio_s3\nruns:\n  using: composite\n")
	writeAction(t, root, "s3", "aws_s3", "name: aws_s3\nruns:\n  steps:\n    - uses: 1password/load-secrets-action@v1\n      env:\n        OPENDAL_S3_BUCKET: op://services/s3/bucket\n")
	writeAction(t, root, "fs", "local_fs", "name: local_fs\n")
	writeAction(t, root, "azure_blob", "azurite", "name: azurite\n")

	// Stray files next to service directories are not cases.
	require.NoError(t, os.WriteFile(filepath.Join(root, "README.md"), []byte("# services"), 0o600))

	adapter := NewLocalCatalogAdapter("")

	entries, err := adapter.Discover(context.Background(), m.Path(root))
	require.NoError(t, err)

	require.Len(t, entries, 4)
	assert.Equal(t, m.NewCase("azure_blob", "azurite"), entries[0].Case)
	assert.Equal(t, "services-azure-blob", entries[0].Feature)
	assert.Equal(t, m.NewCase("fs", "local_fs"), entries[1].Case)
	assert.Equal(t, m.NewCase("s3", "aws_s3"), entries[2].Case)
	assert.Equal(t, m.NewCase("s3", "minio_s3"), entries[3].Case)

	assert.True(t, entries[2].RequiresSecrets)
	assert.False(t, entries[3].RequiresSecrets)
	assert.Equal(t, "aws_s3", entries[2].Name)
}

func TestLocalCatalogAdapter_Discover_CustomMarker(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeAction(t, root, "gcs", "gcs", "name: gcs\nenv:\n  CREDENTIAL: vault://ci/gcs\n")

	entries, err := NewLocalCatalogAdapter("vault://ci").Discover(context.Background(), m.Path(root))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].RequiresSecrets)
}

func TestLocalCatalogAdapter_Discover_MissingAction(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "redis", "redis_tls"), 0o755))

	_, err := NewLocalCatalogAdapter("").Discover(context.Background(), m.Path(root))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis/redis_tls")
}

func TestLocalCatalogAdapter_Discover_MalformedYAML(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeAction(t, root, "redis", "redis_tls", "name: [unterminated\n")

	_, err := NewLocalCatalogAdapter("").Discover(context.Background(), m.Path(root))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestLocalCatalogAdapter_Discover_MissingRoot(t *testing.T) {
	t.Parallel()

	_, err := NewLocalCatalogAdapter("").Discover(context.Background(), m.Path(filepath.Join(t.TempDir(), "nope")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read services dir")
}

func TestLocalCatalogAdapter_Discover_Canceled(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeAction(t, root, "fs", "local_fs", "name: local_fs\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLocalCatalogAdapter("").Discover(ctx, m.Path(root))
	assert.ErrorIs(t, err, context.Canceled)
}
