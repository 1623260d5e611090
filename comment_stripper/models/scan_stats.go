package models

import "time"

// LanguageStats aggregates results for one language across a scan
type LanguageStats struct {
	Files           int
	Modified        int
	RemovedComments int
}

// ScanStats aggregates counters for one invocation. Created at scan start,
// mutated per file, reported at scan end.
type ScanStats struct {
	FilesScanned       int
	FilesModified      int
	FilesSkipped       int
	SkippedUnsupported int
	SkippedBinary      int
	SkippedTooLarge    int
	SkippedUnreadable  int
	CommentsRemoved    int
	BytesSaved         int64
	Warnings           []string
	Elapsed            time.Duration
	PerLanguage        map[string]*LanguageStats
	DryRun             bool
}

// ScanOptions controls a single scan invocation
type ScanOptions struct {
	DryRun  bool
	Verbose bool
	Exclude []string
	Theme   string
}
