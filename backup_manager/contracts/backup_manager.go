package contracts

type IBackupManager interface {
	Backup(path string) error
	Restore(path string) error
	RestoreAll() (restored int, skipped int, err error)
	HasBackups() bool
	Location() string
}
