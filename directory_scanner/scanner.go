package directory_scanner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	backup_contracts "github.com/meysamhadeli/decomment/backup_manager/contracts"
	"github.com/meysamhadeli/decomment/comment_stripper"
	"github.com/meysamhadeli/decomment/comment_stripper/contracts"
	"github.com/meysamhadeli/decomment/comment_stripper/models"
	"github.com/meysamhadeli/decomment/utils"
	"github.com/pterm/pterm"
)

// Files larger than this are skipped; the stripper works on whole files in
// memory and source files of this size are not source files.
const maxFileSize = 10 * 1024 * 1024

// DirectoryScanner walks a tree, classifies files by extension and drives the
// backup manager and the stripper for each supported file, sequentially.
type DirectoryScanner struct {
	stripper contracts.ICommentStripper
	backup   backup_contracts.IBackupManager
}

// NewDirectoryScanner initializes a new DirectoryScanner
func NewDirectoryScanner(stripper contracts.ICommentStripper, backup backup_contracts.IBackupManager) *DirectoryScanner {
	return &DirectoryScanner{
		stripper: stripper,
		backup:   backup,
	}
}

// Scan processes every supported file under root. Per-file failures mark the
// file skipped and never abort the run; only a missing or unreadable root is
// fatal. A canceled context stops the scan between files, leaving processed
// files in their new state.
func (scanner *DirectoryScanner) Scan(ctx context.Context, root string, options *models.ScanOptions) (*models.ScanStats, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("cannot access scan root %s: %w", root, err)
	}

	start := time.Now()
	stats := &models.ScanStats{
		PerLanguage: make(map[string]*models.LanguageStats),
		DryRun:      options.DryRun,
	}

	var files []string
	if info.IsDir() {
		files, err = scanner.enumerate(root, options)
		if err != nil {
			return nil, err
		}
	} else {
		files = []string{root}
	}

	progress, _ := pterm.DefaultProgressbar.WithTotal(len(files)).WithTitle("Processing").WithRemoveWhenDone(true).Start()
	for _, path := range files {
		if ctx.Err() != nil {
			break
		}
		scanner.processFile(path, root, options, stats)
		if progress != nil {
			progress.Increment()
		}
	}
	if progress != nil {
		_, _ = progress.Stop()
	}

	stats.Elapsed = time.Since(start)
	return stats, nil
}

// enumerate collects the candidate file list up front so processing can show
// determinate progress.
func (scanner *DirectoryScanner) enumerate(root string, options *models.ScanOptions) ([]string, error) {
	spinner, _ := pterm.DefaultSpinner.WithStyle(pterm.NewStyle(pterm.FgLightBlue)).WithRemoveWhenDone(true).Start("Scanning directory...")

	backupDir := scanner.backup.Location()
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			return nil
		}

		relativePath, relErr := filepath.Rel(root, path)
		if relErr != nil {
			relativePath = path
		}

		// Never rescan the backup store when it lives inside the target
		if abs, absErr := filepath.Abs(path); absErr == nil && utils.IsWithin(abs, backupDir) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if utils.IsDefaultIgnored(relativePath) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.IsDir() && utils.MatchesExcludeGlob(relativePath, options.Exclude) {
			return nil
		}

		if !d.IsDir() {
			files = append(files, path)
		}
		return nil
	})

	if spinner != nil {
		_ = spinner.Stop()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}
	return files, nil
}

// processFile runs the backup → strip → write sequence for one file. The
// backup is persisted before the transformed content is written, so the
// backup+write pair is the unit of atomicity.
func (scanner *DirectoryScanner) processFile(path string, root string, options *models.ScanOptions, stats *models.ScanStats) {
	stats.FilesScanned++
	relativePath, err := filepath.Rel(root, path)
	if err != nil {
		relativePath = path
	}

	profile, ok := comment_stripper.ProfileForFile(path)
	if !ok {
		stats.FilesSkipped++
		stats.SkippedUnsupported++
		return
	}

	info, err := os.Stat(path)
	if err != nil {
		scanner.skipWithWarning(stats, relativePath, fmt.Sprintf("unreadable: %v", err))
		stats.SkippedUnreadable++
		return
	}
	if info.Size() > maxFileSize {
		scanner.skipWithWarning(stats, relativePath, fmt.Sprintf("file too large (%s), skipped", utils.FormatSize(info.Size())))
		stats.SkippedTooLarge++
		return
	}

	content, err := os.ReadFile(path)
	if err != nil {
		scanner.skipWithWarning(stats, relativePath, fmt.Sprintf("unreadable: %v", err))
		stats.SkippedUnreadable++
		return
	}

	result, err := scanner.stripper.Strip(string(content), profile)
	if err != nil {
		stats.FilesSkipped++
		stats.SkippedBinary++
		warning := fmt.Sprintf("%s: not a text file, skipped", relativePath)
		stats.Warnings = append(stats.Warnings, warning)
		pterm.Warning.Println(warning)
		return
	}

	languageStats := stats.PerLanguage[profile.Name]
	if languageStats == nil {
		languageStats = &models.LanguageStats{}
		stats.PerLanguage[profile.Name] = languageStats
	}
	languageStats.Files++

	for _, w := range result.Warnings {
		warning := fmt.Sprintf("%s: %s", relativePath, w)
		stats.Warnings = append(stats.Warnings, warning)
		pterm.Warning.Println(warning)
	}

	if result.Content == string(content) {
		return
	}

	if !options.DryRun {
		if err := scanner.backup.Backup(path); err != nil {
			scanner.skipWithWarning(stats, relativePath, fmt.Sprintf("backup failed, file left untouched: %v", err))
			stats.SkippedUnreadable++
			return
		}
		if err := os.WriteFile(path, []byte(result.Content), info.Mode().Perm()); err != nil {
			scanner.skipWithWarning(stats, relativePath, fmt.Sprintf("write failed: %v", err))
			stats.SkippedUnreadable++
			return
		}
	} else if options.Verbose {
		utils.RenderPreview(relativePath, result.Content, profile.Name, options.Theme, 20)
	}

	stats.FilesModified++
	stats.CommentsRemoved += result.RemovedComments
	stats.BytesSaved += int64(len(content) - len(result.Content))
	languageStats.Modified++
	languageStats.RemovedComments += result.RemovedComments
}

func (scanner *DirectoryScanner) skipWithWarning(stats *models.ScanStats, relativePath string, message string) {
	stats.FilesSkipped++
	warning := fmt.Sprintf("%s: %s", relativePath, message)
	stats.Warnings = append(stats.Warnings, warning)
	pterm.Warning.Println(warning)
}
