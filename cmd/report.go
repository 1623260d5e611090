package cmd

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/meysamhadeli/decomment/comment_stripper/models"
	"github.com/meysamhadeli/decomment/constants/lipgloss"
	"github.com/meysamhadeli/decomment/utils"
	"github.com/olekukonko/tablewriter"
)

// reportStats prints the final summary box, the per-language breakdown table
// and the aggregated warnings.
func reportStats(stats *models.ScanStats, backupLocation string) {

	var summary string
	if stats.DryRun {
		summary = fmt.Sprintf(
			"Dry Run Results\nFiles scanned: %d\nWould modify: %d\nComments found: %d\nWould save: %s\nElapsed: %.2fs",
			stats.FilesScanned, stats.FilesModified, stats.CommentsRemoved,
			utils.FormatSize(stats.BytesSaved), stats.Elapsed.Seconds())
	} else {
		summary = fmt.Sprintf(
			"Processing Complete\nFiles scanned: %d\nFiles modified: %d\nFiles skipped: %d\nComments removed: %d\nBytes saved: %s\nElapsed: %.2fs",
			stats.FilesScanned, stats.FilesModified, stats.FilesSkipped, stats.CommentsRemoved,
			utils.FormatSize(stats.BytesSaved), stats.Elapsed.Seconds())
	}
	fmt.Println(lipgloss.BoxStyle.Render(summary))

	if len(stats.PerLanguage) > 0 {
		languages := make([]string, 0, len(stats.PerLanguage))
		for language := range stats.PerLanguage {
			languages = append(languages, language)
		}
		sort.Strings(languages)

		var tableBuffer bytes.Buffer
		table := tablewriter.NewWriter(&tableBuffer)
		table.SetHeader([]string{"Language", "Files", "Modified", "Comments Removed"})
		table.SetBorder(false)
		table.SetCenterSeparator("")
		table.SetColumnAlignment([]int{
			tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER,
			tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER,
		})

		for _, language := range languages {
			languageStats := stats.PerLanguage[language]
			table.Append([]string{
				language,
				fmt.Sprintf("%d", languageStats.Files),
				fmt.Sprintf("%d", languageStats.Modified),
				fmt.Sprintf("%d", languageStats.RemovedComments),
			})
		}

		table.Render()
		fmt.Printf("\n%s\n", tableBuffer.String())
	}

	if len(stats.Warnings) > 0 {
		fmt.Println(lipgloss.Yellow.Render(fmt.Sprintf("Warnings (%d):", len(stats.Warnings))))
		for _, warning := range stats.Warnings {
			fmt.Println(lipgloss.Yellow.Render("  " + warning))
		}
	}

	if stats.FilesModified > 0 && !stats.DryRun {
		fmt.Println(lipgloss.Gray.Render(fmt.Sprintf("Backup created: %s", backupLocation)))
		fmt.Println(lipgloss.Gray.Render("To restore: decomment --undo"))
	}
}
