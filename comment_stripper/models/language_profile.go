package models

// LanguageProfile defines how comments, string literals and embedded regions
// are recognized for a single language. Profiles are immutable and shared.
type LanguageProfile struct {
	Name            string
	LineComments    []string
	BlockComments   []BlockComment
	Strings         []StringDelimiter
	EmbeddedRegions []EmbeddedRegion
}

// BlockComment is a start/end delimited comment. Nested languages (Rust, Swift,
// Kotlin, Haskell) track depth; everyone else closes on the first end token.
type BlockComment struct {
	Open        string
	Close       string
	Nested      bool
	AtLineStart bool
}

// StringDelimiter describes one kind of string literal. Open and Close may be
// multi-character (triple quotes, backticks are single). Non-multiline strings
// implicitly end at end-of-line so a stray quote never swallows the file.
type StringDelimiter struct {
	Open      string
	Close     string
	Escape    bool
	Multiline bool
}

// EmbeddedRegion switches comment recognition to another language between a
// pair of tags. Only the HTML profile carries these (<style> and <script>).
type EmbeddedRegion struct {
	OpenTag     string
	CloseTag    string
	ProfileName string
}
