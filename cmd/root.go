package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/meysamhadeli/decomment/backup_manager"
	backup_contracts "github.com/meysamhadeli/decomment/backup_manager/contracts"
	"github.com/meysamhadeli/decomment/comment_stripper"
	stripper_contracts "github.com/meysamhadeli/decomment/comment_stripper/contracts"
	"github.com/meysamhadeli/decomment/comment_stripper/models"
	"github.com/meysamhadeli/decomment/config"
	"github.com/meysamhadeli/decomment/constants/lipgloss"
	"github.com/meysamhadeli/decomment/directory_scanner"
	"github.com/meysamhadeli/decomment/utils"
	"github.com/spf13/cobra"
)

// RootDependencies holds the wired components for one invocation
type RootDependencies struct {
	Config        *config.Config
	Cwd           string
	Target        string
	Preserve      *comment_stripper.Matcher
	Stripper      stripper_contracts.ICommentStripper
	BackupManager backup_contracts.IBackupManager
	Scanner       *directory_scanner.DirectoryScanner
}

var rootCmd = &cobra.Command{
	Use:   "decomment [directory]",
	Short: "Remove comments from source files with automatic backup and restore.",
	Long: `decomment strips comments from source files across 25+ languages while
preserving color codes, URLs, shebangs and preprocessor directives. Every
modified file is backed up before it is written, so a full restore is always
one command away.

Examples:
  decomment                    Remove comments from the current directory
  decomment ./src              Remove comments from a specific directory
  decomment --dry-run ./src    Report what would change without writing
  decomment --undo             Restore all files from the backup store
  decomment --demo             Generate sample files into demo_files/

Preserved by default:
  Color codes:     #FF5733, #ABC
  URLs:            https://example.com
  Shebangs:        #!/usr/bin/env python
  C preprocessor:  #include, #define, #if, #endif
  Content inside string literals`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		rootDependencies := handleRootCommand(cmd, args)

		undo, _ := cmd.Flags().GetBool("undo")
		demo, _ := cmd.Flags().GetBool("demo")
		showConfig, _ := cmd.Flags().GetBool("show-config")

		switch {
		case undo:
			handleUndoCommand(cmd, rootDependencies)
		case demo:
			handleDemoCommand(rootDependencies)
		case showConfig:
			handleShowConfigCommand(rootDependencies)
		default:
			handleScanCommand(cmd, rootDependencies)
		}
	},
}

// Execute runs the root command and exits non-zero on unrecoverable errors
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
		os.Exit(1)
	}
}

func init() {
	config.InitFlags(rootCmd)

	rootCmd.Flags().Bool("dry-run", false, "Report what would change without writing files or taking backups.")
	rootCmd.Flags().Bool("undo", false, "Restore all files from the current backup store.")
	rootCmd.Flags().Bool("demo", false, "Generate sample files per supported language into the target directory.")
	rootCmd.Flags().Bool("show-config", false, "Print the effective configuration and exit.")
	rootCmd.Flags().Bool("verbose", false, "Show per-file details and dry-run previews.")
	rootCmd.Flags().BoolP("yes", "y", false, "Skip confirmation prompts.")
}

// handleRootCommand loads configuration and wires the component graph. Setup
// failures here are fatal: nothing has been touched yet.
func handleRootCommand(cmd *cobra.Command, args []string) *RootDependencies {
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("Error getting current directory: %v", err)))
		os.Exit(1)
	}

	cfg := config.LoadConfigs(cmd, cwd)

	target := cwd
	if len(args) > 0 {
		target = args[0]
	}

	preserve, err := comment_stripper.NewMatcher(cfg.PreservePatterns, cfg.OverrideDefaultPreserve)
	if err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
		os.Exit(1)
	}

	backupManager, err := backup_manager.NewBackupManager(cfg.BackupDir)
	if err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
		os.Exit(1)
	}

	stripper := comment_stripper.NewCommentStripper(preserve)
	scanner := directory_scanner.NewDirectoryScanner(stripper, backupManager)

	return &RootDependencies{
		Config:        cfg,
		Cwd:           cwd,
		Target:        target,
		Preserve:      preserve,
		Stripper:      stripper,
		BackupManager: backupManager,
		Scanner:       scanner,
	}
}

func handleScanCommand(cmd *cobra.Command, rootDependencies *RootDependencies) {

	// Create a context with cancel function so Ctrl+C stops between files
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	verbose, _ := cmd.Flags().GetBool("verbose")
	yes, _ := cmd.Flags().GetBool("yes")

	info, err := os.Stat(rootDependencies.Target)
	if err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("Path does not exist: %s", rootDependencies.Target)))
		os.Exit(1)
	}

	reader := bufio.NewReader(os.Stdin)

	if info.IsDir() {
		fileCount, totalSize := utils.GetDirectoryInfo(rootDependencies.Target, rootDependencies.BackupManager.Location())
		fmt.Println(lipgloss.Green.Render(fmt.Sprintf("Target: %s", rootDependencies.Target)))
		fmt.Println(lipgloss.Green.Render(fmt.Sprintf("Found: %d files (%s)", fileCount, utils.FormatSize(totalSize))))

		if fileCount == 0 {
			fmt.Println(lipgloss.Yellow.Render("No files found to process"))
			return
		}

		if !yes && !dryRun {
			accepted, err := utils.ConfirmPrompt(fmt.Sprintf("Process %d files recursively?", fileCount), reader)
			if err != nil {
				fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
				os.Exit(1)
			}
			if !accepted {
				fmt.Println(lipgloss.Yellow.Render("Operation cancelled."))
				return
			}
		}
	} else if !yes && !dryRun {
		accepted, err := utils.ConfirmPrompt(fmt.Sprintf("Process file %s?", rootDependencies.Target), reader)
		if err != nil {
			fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
			os.Exit(1)
		}
		if !accepted {
			fmt.Println(lipgloss.Yellow.Render("Operation cancelled."))
			return
		}
	}

	options := &models.ScanOptions{
		DryRun:  dryRun,
		Verbose: verbose,
		Exclude: rootDependencies.Config.Exclude,
		Theme:   rootDependencies.Config.Theme,
	}

	stats, err := rootDependencies.Scanner.Scan(ctx, rootDependencies.Target, options)
	if err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
		os.Exit(1)
	}

	reportStats(stats, rootDependencies.BackupManager.Location())
}

func handleShowConfigCommand(rootDependencies *RootDependencies) {
	patterns := rootDependencies.Preserve.Patterns()

	fmt.Println(lipgloss.Green.Render("Current Configuration:"))
	fmt.Printf("   Theme: %s\n", rootDependencies.Config.Theme)
	fmt.Printf("   Backup store: %s\n", rootDependencies.BackupManager.Location())
	fmt.Printf("   Preserve patterns: %d\n", len(patterns))
	for _, pattern := range patterns {
		fmt.Printf("     - %s  (%s)\n", pattern.Regex.String(), pattern.Description)
	}
	if len(rootDependencies.Config.Exclude) > 0 {
		fmt.Printf("   Exclude globs: %v\n", rootDependencies.Config.Exclude)
	}
}
