package cmd

import (
	"fmt"
	"os"

	"github.com/meysamhadeli/decomment/constants/lipgloss"
	"github.com/meysamhadeli/decomment/directory_scanner"
)

// handleDemoCommand generates sample files for trying the tool out
func handleDemoCommand(rootDependencies *RootDependencies) {
	demoDir, count, err := directory_scanner.GenerateDemoFiles(rootDependencies.Target)
	if err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("Error creating demo: %v", err)))
		os.Exit(1)
	}

	fmt.Println(lipgloss.Green.Render(fmt.Sprintf("Demo files created in: %s (%d files)", demoDir, count)))
	fmt.Println(lipgloss.Gray.Render(fmt.Sprintf("   Run 'decomment %s' to test the tool", demoDir)))
}
