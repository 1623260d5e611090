package directory_scanner

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/meysamhadeli/decomment/comment_stripper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDemoFiles(t *testing.T) {
	target := t.TempDir()

	demoDir, count, err := GenerateDemoFiles(target)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(target, "demo_files"), demoDir)
	assert.Equal(t, len(demoSamples), count)

	entries, err := os.ReadDir(demoDir)
	require.NoError(t, err)
	assert.Len(t, entries, count)
}

func TestGenerateDemoFiles_ScanRemovesTheirComments(t *testing.T) {
	scanner, _ := newTestScanner(t)
	target := t.TempDir()

	demoDir, count, err := GenerateDemoFiles(target)
	require.NoError(t, err)

	stats, err := scanner.Scan(context.Background(), demoDir, &models.ScanOptions{})
	require.NoError(t, err)

	assert.Equal(t, count, stats.FilesScanned)
	assert.Equal(t, count, stats.FilesModified, "every demo file carries removable comments")
	assert.Greater(t, stats.CommentsRemoved, 0)
}
