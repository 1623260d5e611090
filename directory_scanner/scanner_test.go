package directory_scanner

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/meysamhadeli/decomment/backup_manager"
	backup_contracts "github.com/meysamhadeli/decomment/backup_manager/contracts"
	"github.com/meysamhadeli/decomment/comment_stripper"
	"github.com/meysamhadeli/decomment/comment_stripper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScanner(t *testing.T) (*DirectoryScanner, backup_contracts.IBackupManager) {
	t.Helper()

	matcher, err := comment_stripper.NewMatcher(nil, false)
	require.NoError(t, err)

	backup, err := backup_manager.NewBackupManager(filepath.Join(t.TempDir(), "store"))
	require.NoError(t, err)

	return NewDirectoryScanner(comment_stripper.NewCommentStripper(matcher), backup), backup
}

func writeFile(t *testing.T, path string, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(content)
}

func TestScan_MixedDirectory(t *testing.T) {
	scanner, backup := newTestScanner(t)
	root := t.TempDir()

	writeFile(t, filepath.Join(root, "a.py"), "# comment\nprint(1)\n")
	writeFile(t, filepath.Join(root, "b.txt"), "just text\n")

	stats, err := scanner.Scan(context.Background(), root, &models.ScanOptions{})
	require.NoError(t, err)

	assert.Equal(t, 2, stats.FilesScanned)
	assert.Equal(t, 1, stats.FilesModified)
	assert.Equal(t, 1, stats.FilesSkipped)
	assert.Equal(t, 1, stats.SkippedUnsupported)
	assert.Equal(t, 1, stats.CommentsRemoved)

	assert.Equal(t, "print(1)\n", readFile(t, filepath.Join(root, "a.py")))
	assert.Equal(t, "just text\n", readFile(t, filepath.Join(root, "b.txt")), "unsupported files stay byte-identical")
	assert.True(t, backup.HasBackups())

	require.Len(t, stats.PerLanguage, 1)
	assert.Equal(t, 1, stats.PerLanguage["python"].Modified)
	assert.Equal(t, 1, stats.PerLanguage["python"].RemovedComments)
}

func TestScan_DryRunLeavesFilesAlone(t *testing.T) {
	scanner, backup := newTestScanner(t)
	root := t.TempDir()

	original := "// comment\nvar a = 1;\n"
	writeFile(t, filepath.Join(root, "a.js"), original)

	stats, err := scanner.Scan(context.Background(), root, &models.ScanOptions{DryRun: true})
	require.NoError(t, err)

	assert.Equal(t, 1, stats.FilesModified, "dry run still reports would-be changes")
	assert.True(t, stats.DryRun)
	assert.Equal(t, original, readFile(t, filepath.Join(root, "a.js")))
	assert.False(t, backup.HasBackups(), "dry run must not create backups")
}

func TestScan_UnchangedFileNotBackedUp(t *testing.T) {
	scanner, backup := newTestScanner(t)
	root := t.TempDir()

	writeFile(t, filepath.Join(root, "clean.go"), "package main\n")

	stats, err := scanner.Scan(context.Background(), root, &models.ScanOptions{})
	require.NoError(t, err)

	assert.Equal(t, 0, stats.FilesModified)
	assert.False(t, backup.HasBackups())
}

func TestScan_ExcludeGlobs(t *testing.T) {
	scanner, _ := newTestScanner(t)
	root := t.TempDir()

	writeFile(t, filepath.Join(root, "keep.py"), "# c\nprint(1)\n")
	writeFile(t, filepath.Join(root, "generated", "dep.py"), "# c\nprint(2)\n")

	stats, err := scanner.Scan(context.Background(), root, &models.ScanOptions{
		Exclude: []string{"generated/**"},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, stats.FilesScanned)
	assert.Equal(t, "print(1)\n", readFile(t, filepath.Join(root, "keep.py")))
	assert.Equal(t, "# c\nprint(2)\n", readFile(t, filepath.Join(root, "generated", "dep.py")))
}

func TestScan_DefaultIgnoredDirectories(t *testing.T) {
	scanner, _ := newTestScanner(t)
	root := t.TempDir()

	writeFile(t, filepath.Join(root, "a.py"), "# c\nprint(1)\n")
	writeFile(t, filepath.Join(root, ".git", "hook.py"), "# c\nprint(2)\n")
	writeFile(t, filepath.Join(root, "node_modules", "lib.js"), "// c\nvar a = 1;\n")

	stats, err := scanner.Scan(context.Background(), root, &models.ScanOptions{})
	require.NoError(t, err)

	assert.Equal(t, 1, stats.FilesScanned)
	assert.Equal(t, "# c\nprint(2)\n", readFile(t, filepath.Join(root, ".git", "hook.py")))
	assert.Equal(t, "// c\nvar a = 1;\n", readFile(t, filepath.Join(root, "node_modules", "lib.js")))
}

func TestScan_BinaryContentSkipped(t *testing.T) {
	scanner, _ := newTestScanner(t)
	root := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(root, "blob.py"), []byte{0x00, 0x01, 0x02}, 0644))

	stats, err := scanner.Scan(context.Background(), root, &models.ScanOptions{})
	require.NoError(t, err)

	assert.Equal(t, 0, stats.FilesModified)
	assert.Equal(t, 1, stats.SkippedBinary)
	assert.NotEmpty(t, stats.Warnings)
}

func TestScan_SingleFileTarget(t *testing.T) {
	scanner, _ := newTestScanner(t)
	target := filepath.Join(t.TempDir(), "one.sh")
	writeFile(t, target, "#!/bin/bash\n# remove\necho hi\n")

	stats, err := scanner.Scan(context.Background(), target, &models.ScanOptions{})
	require.NoError(t, err)

	assert.Equal(t, 1, stats.FilesScanned)
	assert.Equal(t, 1, stats.FilesModified)
	assert.Equal(t, "#!/bin/bash\necho hi\n", readFile(t, target))
}

func TestScan_MissingRootIsFatal(t *testing.T) {
	scanner, _ := newTestScanner(t)

	_, err := scanner.Scan(context.Background(), filepath.Join(t.TempDir(), "nope"), &models.ScanOptions{})
	require.Error(t, err)
}

func TestScan_RelativeBackupStoreInsideRoot(t *testing.T) {
	root := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(root))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	matcher, err := comment_stripper.NewMatcher(nil, false)
	require.NoError(t, err)
	backup, err := backup_manager.NewBackupManager("backups")
	require.NoError(t, err)
	scanner := NewDirectoryScanner(comment_stripper.NewCommentStripper(matcher), backup)

	original := "# header comment\nprint(1)\n"
	target := filepath.Join(root, "a.py")
	writeFile(t, target, original)

	_, err = scanner.Scan(context.Background(), root, &models.ScanOptions{})
	require.NoError(t, err)
	require.Equal(t, "print(1)\n", readFile(t, target))

	// A second scan must not descend into the store and strip the backups
	stats, err := scanner.Scan(context.Background(), root, &models.ScanOptions{})
	require.NoError(t, err)
	assert.Equal(t, 1, stats.FilesScanned, "the backup store must stay out of the walk")
	assert.Equal(t, 0, stats.FilesModified)

	restored, skipped, err := backup.RestoreAll()
	require.NoError(t, err)
	assert.Equal(t, 1, restored)
	assert.Equal(t, 0, skipped)
	assert.Equal(t, original, readFile(t, target), "restore must round-trip byte-for-byte")
}

func TestScan_ThenRestoreRoundTrip(t *testing.T) {
	scanner, backup := newTestScanner(t)
	root := t.TempDir()

	original := "# header\nprint(1)  # trailing\n"
	target := filepath.Join(root, "a.py")
	writeFile(t, target, original)

	_, err := scanner.Scan(context.Background(), root, &models.ScanOptions{})
	require.NoError(t, err)
	require.NotEqual(t, original, readFile(t, target))

	restored, skipped, err := backup.RestoreAll()
	require.NoError(t, err)
	assert.Equal(t, 1, restored)
	assert.Equal(t, 0, skipped)
	assert.Equal(t, original, readFile(t, target))
}
