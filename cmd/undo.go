package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/meysamhadeli/decomment/constants/lipgloss"
	"github.com/meysamhadeli/decomment/utils"
	"github.com/spf13/cobra"
)

// handleUndoCommand restores every file recorded in the backup store. Files
// whose backup cannot be read are reported as skipped and never abort the
// restore of the rest.
func handleUndoCommand(cmd *cobra.Command, rootDependencies *RootDependencies) {

	if !rootDependencies.BackupManager.HasBackups() {
		fmt.Println(lipgloss.Yellow.Render(fmt.Sprintf("No backups found in %s", rootDependencies.BackupManager.Location())))
		return
	}

	fmt.Println(lipgloss.Green.Render(fmt.Sprintf("Found backup store: %s", rootDependencies.BackupManager.Location())))

	yes, _ := cmd.Flags().GetBool("yes")
	if !yes {
		reader := bufio.NewReader(os.Stdin)
		accepted, err := utils.ConfirmPrompt("Restore all files from backup?", reader)
		if err != nil {
			fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
			os.Exit(1)
		}
		if !accepted {
			fmt.Println(lipgloss.Yellow.Render("Operation cancelled."))
			return
		}
	}

	restored, skipped, err := rootDependencies.BackupManager.RestoreAll()
	if err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("Error during restore: %v", err)))
		os.Exit(1)
	}

	fmt.Println(lipgloss.Green.Render(fmt.Sprintf("Restored %d files from backup", restored)))
	if skipped > 0 {
		fmt.Println(lipgloss.Yellow.Render(fmt.Sprintf("Skipped %d files (no usable backup)", skipped)))
	}
}
