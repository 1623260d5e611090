package utils

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/meysamhadeli/decomment/constants/lipgloss"
)

// RenderPreview prints a syntax-highlighted preview of transformed content,
// used in verbose dry-run mode to show what a file would become.
func RenderPreview(relativePath string, content string, language string, theme string, maxLines int) {

	fmt.Println(lipgloss.BlueSky.Render(fmt.Sprintf("--- %s ---", relativePath)))

	lines := strings.Split(content, "\n")
	truncated := false
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
		truncated = true
	}

	preview := strings.Join(lines, "\n") + "\n"
	if err := quick.Highlight(os.Stdout, preview, language, "terminal256", theme); err != nil {
		// Highlighting is cosmetic; fall back to plain output
		fmt.Print(preview)
	}

	if truncated {
		fmt.Println(lipgloss.Gray.Render(fmt.Sprintf("... (%d more lines)", len(strings.Split(content, "\n"))-maxLines)))
	}
}
