package backup_manager

import (
	"crypto/rand"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/meysamhadeli/decomment/backup_manager/contracts"
	"github.com/meysamhadeli/decomment/constants/lipgloss"
	"github.com/oklog/ulid/v2"
	"github.com/zeebo/xxh3"
	"gopkg.in/yaml.v3"
)

// ErrNoBackup is returned when a restore is requested for a path that has no
// backup entry. Callers report such files as skipped, not as failures.
var ErrNoBackup = errors.New("no backup entry for file")

const manifestName = "manifest.yaml"

// BackupEntry maps an original file path to its copy inside the backup store
type BackupEntry struct {
	OriginalPath string    `yaml:"original_path"`
	BackupPath   string    `yaml:"backup_path"`
	Size         int64     `yaml:"size"`
	Checksum     uint64    `yaml:"checksum"`
	BackedUpAt   time.Time `yaml:"backed_up_at"`
}

// manifest is the persisted index of the backup store
type manifest struct {
	Session   string         `yaml:"session"`
	CreatedAt time.Time      `yaml:"created_at"`
	Entries   []*BackupEntry `yaml:"entries"`
}

// backupManager stores pre-modification copies of files under a root
// directory outside the scanned tree, with a YAML manifest keyed by the
// original absolute path.
type backupManager struct {
	root     string
	manifest *manifest
}

// NewBackupManager opens the backup store. An empty root selects the default
// location under the user cache directory, deliberately outside any tree the
// scanner might walk. The root is resolved to an absolute path so the scanner
// can recognize the store even when it was configured relative to the working
// directory. The store directory itself is created lazily by the first Backup,
// so runs that never back anything up leave no residue.
func NewBackupManager(root string) (contracts.IBackupManager, error) {
	if root == "" {
		cacheDir, err := os.UserCacheDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve backup store location: %w", err)
		}
		root = filepath.Join(cacheDir, "decomment", "backup")
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve backup store location: %w", err)
	}

	bm := &backupManager{root: abs}
	if err := bm.loadManifest(); err != nil {
		return nil, err
	}
	return bm, nil
}

// Location returns the backup store root directory
func (bm *backupManager) Location() string {
	return bm.root
}

// HasBackups reports whether any entries are recorded in the store
func (bm *backupManager) HasBackups() bool {
	return len(bm.manifest.Entries) > 0
}

// Backup copies the file into the store and persists the manifest before
// returning, so the original bytes are safe before the caller overwrites the
// file. The first backup of a path wins; later calls in the same store are
// no-ops so the pre-modification content is what a restore brings back.
func (bm *backupManager) Backup(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve path %s: %w", path, err)
	}

	if bm.findEntry(abs) != -1 {
		return nil
	}

	content, err := os.ReadFile(abs)
	if err != nil {
		return fmt.Errorf("failed to read %s for backup: %w", abs, err)
	}

	backupRel := mirrorPath(abs)
	backupAbs := filepath.Join(bm.root, backupRel)
	if err := os.MkdirAll(filepath.Dir(backupAbs), 0755); err != nil {
		return fmt.Errorf("failed to create backup directory: %w", err)
	}
	if err := os.WriteFile(backupAbs, content, 0644); err != nil {
		return fmt.Errorf("failed to write backup for %s: %w", abs, err)
	}

	bm.manifest.Entries = append(bm.manifest.Entries, &BackupEntry{
		OriginalPath: abs,
		BackupPath:   backupRel,
		Size:         int64(len(content)),
		Checksum:     xxh3.Hash(content),
		BackedUpAt:   time.Now(),
	})

	return bm.saveManifest()
}

// Restore writes the backed-up bytes over the current file and removes the
// entry. A path with no entry returns ErrNoBackup and the file is untouched.
func (bm *backupManager) Restore(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve path %s: %w", path, err)
	}

	idx := bm.findEntry(abs)
	if idx == -1 {
		return ErrNoBackup
	}

	if err := bm.restoreEntry(bm.manifest.Entries[idx]); err != nil {
		return err
	}

	bm.manifest.Entries = append(bm.manifest.Entries[:idx], bm.manifest.Entries[idx+1:]...)
	if err := bm.saveManifest(); err != nil {
		return err
	}

	bm.removeStoreIfEmpty()
	return nil
}

// RestoreAll restores every entry in the store. Per-file failures are
// reported and counted as skipped without aborting the rest of the restore.
func (bm *backupManager) RestoreAll() (int, int, error) {
	entries := make([]*BackupEntry, len(bm.manifest.Entries))
	copy(entries, bm.manifest.Entries)
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].OriginalPath < entries[j].OriginalPath
	})

	restored, skipped := 0, 0
	var remaining []*BackupEntry

	for _, entry := range entries {
		if err := bm.restoreEntry(entry); err != nil {
			fmt.Println(lipgloss.Yellow.Render(fmt.Sprintf("Skipped %s: %v", entry.OriginalPath, err)))
			skipped++
			remaining = append(remaining, entry)
			continue
		}
		restored++
	}

	bm.manifest.Entries = remaining
	if err := bm.saveManifest(); err != nil {
		return restored, skipped, err
	}

	bm.removeStoreIfEmpty()
	return restored, skipped, nil
}

// restoreEntry writes the backup bytes back and deletes the backup file. The
// backup bytes are authoritative; a checksum mismatch is reported as a
// warning but the restore proceeds.
func (bm *backupManager) restoreEntry(entry *BackupEntry) error {
	backupAbs := filepath.Join(bm.root, entry.BackupPath)

	content, err := os.ReadFile(backupAbs)
	if err != nil {
		return fmt.Errorf("failed to read backup: %w", err)
	}

	if xxh3.Hash(content) != entry.Checksum {
		fmt.Println(lipgloss.Yellow.Render(fmt.Sprintf("Checksum mismatch for %s, restoring backup bytes anyway", entry.OriginalPath)))
	}

	if err := os.WriteFile(entry.OriginalPath, content, 0644); err != nil {
		return fmt.Errorf("failed to restore %s: %w", entry.OriginalPath, err)
	}

	_ = os.Remove(backupAbs)
	return nil
}

func (bm *backupManager) findEntry(abs string) int {
	for i, entry := range bm.manifest.Entries {
		if entry.OriginalPath == abs {
			return i
		}
	}
	return -1
}

func (bm *backupManager) loadManifest() error {
	data, err := os.ReadFile(filepath.Join(bm.root, manifestName))
	if os.IsNotExist(err) {
		bm.manifest = &manifest{
			Session:   newSessionID(),
			CreatedAt: time.Now(),
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read backup manifest: %w", err)
	}

	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("failed to parse backup manifest: %w", err)
	}
	bm.manifest = &m
	return nil
}

func (bm *backupManager) saveManifest() error {
	data, err := yaml.Marshal(bm.manifest)
	if err != nil {
		return fmt.Errorf("failed to marshal backup manifest: %w", err)
	}
	if err := os.MkdirAll(bm.root, 0755); err != nil {
		return fmt.Errorf("failed to create backup store: %w", err)
	}
	if err := os.WriteFile(filepath.Join(bm.root, manifestName), data, 0644); err != nil {
		return fmt.Errorf("failed to write backup manifest: %w", err)
	}
	return nil
}

// removeStoreIfEmpty deletes the store directory once the last entry has
// been restored, mirroring the original-file layout leaving no residue.
func (bm *backupManager) removeStoreIfEmpty() {
	if len(bm.manifest.Entries) > 0 {
		return
	}
	_ = os.RemoveAll(bm.root)
}

// newSessionID mints a ULID identifying the backup session in the manifest
func newSessionID() string {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(time.Now()), entropy)
	if err != nil {
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return id.String()
}

// mirrorPath maps an absolute original path to a store-relative path under
// files/, so one backup location is derivable deterministically from each
// original path.
func mirrorPath(abs string) string {
	rel := filepath.ToSlash(abs)
	rel = strings.TrimPrefix(rel, "/")
	rel = strings.ReplaceAll(rel, ":", "")
	return filepath.Join("files", filepath.FromSlash(rel))
}
