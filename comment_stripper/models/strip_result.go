package models

// StripResult holds the transformed content of a single file
type StripResult struct {
	Content         string
	RemovedComments int
	Warnings        []string
}
