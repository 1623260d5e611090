package comment_stripper

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/meysamhadeli/decomment/comment_stripper/models"
)

// Shared delimiter sets. Triple quotes must come before single quotes so the
// engine matches the longest opener first.
var (
	cStyleStrings = []models.StringDelimiter{
		{Open: `"`, Close: `"`, Escape: true},
		{Open: `'`, Close: `'`, Escape: true},
	}
	cStyleBlock = []models.BlockComment{
		{Open: "/*", Close: "*/"},
	}
	cStyleNestedBlock = []models.BlockComment{
		{Open: "/*", Close: "*/", Nested: true},
	}
	htmlBlock = []models.BlockComment{
		{Open: "<!--", Close: "-->"},
	}
	htmlRegions = []models.EmbeddedRegion{
		{OpenTag: "<style", CloseTag: "</style>", ProfileName: "css"},
		{OpenTag: "<script", CloseTag: "</script>", ProfileName: "javascript"},
	}
)

var profiles = map[string]*models.LanguageProfile{
	"python": {
		Name:         "python",
		LineComments: []string{"#"},
		Strings: []models.StringDelimiter{
			{Open: `"""`, Close: `"""`, Multiline: true},
			{Open: "'''", Close: "'''", Multiline: true},
			{Open: `"`, Close: `"`, Escape: true},
			{Open: `'`, Close: `'`, Escape: true},
		},
	},
	"javascript": {
		Name:          "javascript",
		LineComments:  []string{"//"},
		BlockComments: cStyleBlock,
		Strings: []models.StringDelimiter{
			{Open: `"`, Close: `"`, Escape: true},
			{Open: `'`, Close: `'`, Escape: true},
			{Open: "`", Close: "`", Escape: true, Multiline: true},
		},
	},
	"typescript": {
		Name:          "typescript",
		LineComments:  []string{"//"},
		BlockComments: cStyleBlock,
		Strings: []models.StringDelimiter{
			{Open: `"`, Close: `"`, Escape: true},
			{Open: `'`, Close: `'`, Escape: true},
			{Open: "`", Close: "`", Escape: true, Multiline: true},
		},
	},
	"go": {
		Name:          "go",
		LineComments:  []string{"//"},
		BlockComments: cStyleBlock,
		Strings: []models.StringDelimiter{
			{Open: `"`, Close: `"`, Escape: true},
			{Open: "`", Close: "`", Multiline: true},
			{Open: `'`, Close: `'`, Escape: true},
		},
	},
	"c": {
		Name:          "c",
		LineComments:  []string{"//"},
		BlockComments: cStyleBlock,
		Strings:       cStyleStrings,
	},
	"cpp": {
		Name:          "cpp",
		LineComments:  []string{"//"},
		BlockComments: cStyleBlock,
		Strings:       cStyleStrings,
	},
	"csharp": {
		Name:          "csharp",
		LineComments:  []string{"//"},
		BlockComments: cStyleBlock,
		Strings:       cStyleStrings,
	},
	"java": {
		Name:          "java",
		LineComments:  []string{"//"},
		BlockComments: cStyleBlock,
		Strings:       cStyleStrings,
	},
	"rust": {
		Name:          "rust",
		LineComments:  []string{"//"},
		BlockComments: cStyleNestedBlock,
		Strings: []models.StringDelimiter{
			{Open: `"`, Close: `"`, Escape: true, Multiline: true},
		},
	},
	"ruby": {
		Name:         "ruby",
		LineComments: []string{"#"},
		BlockComments: []models.BlockComment{
			{Open: "=begin", Close: "=end", AtLineStart: true},
		},
		Strings: cStyleStrings,
	},
	"shell": {
		Name:         "shell",
		LineComments: []string{"#"},
		Strings: []models.StringDelimiter{
			{Open: `"`, Close: `"`, Escape: true},
			{Open: `'`, Close: `'`},
		},
	},
	"php": {
		Name:          "php",
		LineComments:  []string{"//", "#"},
		BlockComments: cStyleBlock,
		Strings:       cStyleStrings,
	},
	"swift": {
		Name:          "swift",
		LineComments:  []string{"//"},
		BlockComments: cStyleNestedBlock,
		Strings: []models.StringDelimiter{
			{Open: `"`, Close: `"`, Escape: true},
		},
	},
	"kotlin": {
		Name:          "kotlin",
		LineComments:  []string{"//"},
		BlockComments: cStyleNestedBlock,
		Strings: []models.StringDelimiter{
			{Open: `"""`, Close: `"""`, Multiline: true},
			{Open: `"`, Close: `"`, Escape: true},
		},
	},
	"css": {
		Name:          "css",
		BlockComments: cStyleBlock,
		Strings:       cStyleStrings,
	},
	"scss": {
		Name:          "scss",
		LineComments:  []string{"//"},
		BlockComments: cStyleBlock,
		Strings:       cStyleStrings,
	},
	"less": {
		Name:          "less",
		LineComments:  []string{"//"},
		BlockComments: cStyleBlock,
		Strings:       cStyleStrings,
	},
	"html": {
		Name:            "html",
		BlockComments:   htmlBlock,
		EmbeddedRegions: htmlRegions,
	},
	"xml": {
		Name:          "xml",
		BlockComments: htmlBlock,
	},
	"markdown": {
		Name:          "markdown",
		BlockComments: htmlBlock,
	},
	"yaml": {
		Name:         "yaml",
		LineComments: []string{"#"},
		Strings: []models.StringDelimiter{
			{Open: `"`, Close: `"`, Escape: true},
			{Open: `'`, Close: `'`},
		},
	},
	"toml": {
		Name:         "toml",
		LineComments: []string{"#"},
		Strings: []models.StringDelimiter{
			{Open: `"""`, Close: `"""`, Escape: true, Multiline: true},
			{Open: `"`, Close: `"`, Escape: true},
			{Open: `'`, Close: `'`},
		},
	},
	"ini": {
		Name:         "ini",
		LineComments: []string{";", "#"},
		Strings: []models.StringDelimiter{
			{Open: `"`, Close: `"`, Escape: true},
		},
	},
	"sql": {
		Name:          "sql",
		LineComments:  []string{"--"},
		BlockComments: cStyleBlock,
		Strings: []models.StringDelimiter{
			{Open: `'`, Close: `'`},
			{Open: `"`, Close: `"`},
		},
	},
	"lua": {
		Name:         "lua",
		LineComments: []string{"--"},
		BlockComments: []models.BlockComment{
			{Open: "--[[", Close: "]]"},
		},
		Strings: cStyleStrings,
	},
	"haskell": {
		Name:         "haskell",
		LineComments: []string{"--"},
		BlockComments: []models.BlockComment{
			{Open: "{-", Close: "-}", Nested: true},
		},
		Strings: []models.StringDelimiter{
			{Open: `"`, Close: `"`, Escape: true},
		},
	},
	"terraform": {
		Name:          "terraform",
		LineComments:  []string{"#", "//"},
		BlockComments: cStyleBlock,
		Strings: []models.StringDelimiter{
			{Open: `"`, Close: `"`, Escape: true},
		},
	},
	"perl": {
		Name:         "perl",
		LineComments: []string{"#"},
		Strings:      cStyleStrings,
	},
	"r": {
		Name:         "r",
		LineComments: []string{"#"},
		Strings:      cStyleStrings,
	},
	"dockerfile": {
		Name:         "dockerfile",
		LineComments: []string{"#"},
		Strings: []models.StringDelimiter{
			{Open: `"`, Close: `"`, Escape: true},
		},
	},
	"makefile": {
		Name:         "makefile",
		LineComments: []string{"#"},
	},
}

// extensions maps lowercased file extensions to profile names
var extensions = map[string]string{
	".py":     "python",
	".js":     "javascript",
	".jsx":    "javascript",
	".mjs":    "javascript",
	".ts":     "typescript",
	".tsx":    "typescript",
	".go":     "go",
	".c":      "c",
	".h":      "c",
	".cpp":    "cpp",
	".cc":     "cpp",
	".cxx":    "cpp",
	".hpp":    "cpp",
	".hh":     "cpp",
	".cs":     "csharp",
	".java":   "java",
	".rs":     "rust",
	".rb":     "ruby",
	".sh":     "shell",
	".bash":   "shell",
	".zsh":    "shell",
	".php":    "php",
	".swift":  "swift",
	".kt":     "kotlin",
	".kts":    "kotlin",
	".css":    "css",
	".scss":   "scss",
	".less":   "less",
	".html":   "html",
	".htm":    "html",
	".vue":    "html",
	".xml":    "xml",
	".md":     "markdown",
	".yaml":   "yaml",
	".yml":    "yaml",
	".toml":   "toml",
	".ini":    "ini",
	".sql":    "sql",
	".lua":    "lua",
	".hs":     "haskell",
	".tf":     "terraform",
	".tfvars": "terraform",
	".hcl":    "terraform",
	".pl":     "perl",
	".pm":     "perl",
	".r":      "r",
}

// filenames maps well-known basenames without a usable extension
var filenames = map[string]string{
	"dockerfile": "dockerfile",
	"makefile":   "makefile",
}

// ProfileForFile returns the language profile for a file path, or false when
// the file type is not in the catalog.
func ProfileForFile(path string) (*models.LanguageProfile, bool) {
	base := strings.ToLower(filepath.Base(path))
	if name, ok := filenames[base]; ok {
		return profiles[name], true
	}

	ext := strings.ToLower(filepath.Ext(path))
	name, ok := extensions[ext]
	if !ok {
		return nil, false
	}
	return profiles[name], true
}

// ProfileByName looks up a profile by its language name
func ProfileByName(name string) (*models.LanguageProfile, bool) {
	profile, ok := profiles[name]
	return profile, ok
}

// SupportedExtensions returns the sorted list of recognized extensions
func SupportedExtensions() []string {
	exts := make([]string, 0, len(extensions))
	for ext := range extensions {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
