package directory_scanner

import (
	"fmt"
	"os"
	"path/filepath"
)

// demoSamples cover the comment varieties the tool handles: line and block
// comments, string-literal traps, embedded regions and preserved patterns.
var demoSamples = []struct {
	Name    string
	Content string
}{
	{
		Name: "sample.py",
		Content: `#!/usr/bin/env python3
# This module greets people
import sys

def greet(name):  # trailing comment
    """Docstring stays, it is a string literal."""
    marker = "# not a comment"
    print(f"Hello, {name}")  # see https://example.com/docs

greet(sys.argv[1])
`,
	},
	{
		Name: "sample.js",
		Content: `// Entry point
/* Multi-line
   header comment */
const accent = "#FF5733"; // color kept inside the string
const urlNote = 'docs at https://example.com';
function main() {
	// TODO text that will be removed
	console.log(` + "`template // not a comment`" + `);
}
main();
`,
	},
	{
		Name: "sample.go",
		Content: `package main

import "fmt"

// main prints a greeting
func main() {
	path := "C://not/a/comment"
	/* block comment */
	fmt.Println(path)
}
`,
	},
	{
		Name: "sample.css",
		Content: `/* Base palette: #1A2B3C */
body {
	color: #FF5733; /* brand orange */
	background: url("https://example.com/bg.png");
}
`,
	},
	{
		Name: "sample.html",
		Content: `<!DOCTYPE html>
<!-- page header comment -->
<html>
<head>
<style>
/* embedded css comment */
.title { color: #ABCDEF; }
</style>
<script>
// embedded js comment
console.log("<!-- not an html comment -->");
</script>
</head>
<body><p>Hello</p></body>
</html>
`,
	},
	{
		Name: "sample.yaml",
		Content: `# deployment settings
name: demo
url: "https://example.com" # endpoint
replicas: 3
`,
	},
	{
		Name: "sample.sql",
		Content: `-- fetch active users
SELECT id, name
FROM users /* inline block comment */
WHERE note != '-- not a comment';
`,
	},
	{
		Name: "sample.rs",
		Content: `// nested comments below
/* outer /* inner */ still outer */
fn main() {
    let s = "// not a comment";
    println!("{}", s);
}
`,
	},
	{
		Name: "sample.sh",
		Content: `#!/bin/bash
# cleanup helper
echo "hash # inside string"
rm -rf /tmp/demo  # trailing comment
`,
	},
	{
		Name: "sample.c",
		Content: `#include <stdio.h>
/* classic block comment */
int main(void) {
	// line comment
	printf("see https://example.com\n");
	return 0;
}
`,
	},
}

// GenerateDemoFiles writes one sample file per representative language into
// demo_files/ under the target directory and returns the directory path and
// the number of files written.
func GenerateDemoFiles(target string) (string, int, error) {
	demoDir := filepath.Join(target, "demo_files")
	if err := os.MkdirAll(demoDir, 0755); err != nil {
		return "", 0, fmt.Errorf("failed to create demo directory: %w", err)
	}

	for _, sample := range demoSamples {
		path := filepath.Join(demoDir, sample.Name)
		if err := os.WriteFile(path, []byte(sample.Content), 0644); err != nil {
			return "", 0, fmt.Errorf("failed to write demo file %s: %w", sample.Name, err)
		}
	}

	return demoDir, len(demoSamples), nil
}
