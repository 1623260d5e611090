package comment_stripper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrip_HTMLEmbeddedRegions(t *testing.T) {
	stripper := newTestStripper(t)
	profile, ok := ProfileByName("html")
	require.True(t, ok)

	t.Run("css comment inside style region", func(t *testing.T) {
		result, err := stripper.Strip("<style>/* css comment */ .a{}</style>", profile)
		require.NoError(t, err)
		assert.Equal(t, "<style> .a{}</style>", result.Content)
		assert.Equal(t, 1, result.RemovedComments)
	})

	t.Run("js comment inside script region", func(t *testing.T) {
		input := "<script>\n// js comment\nvar a = 1;\n</script>\n"
		result, err := stripper.Strip(input, profile)
		require.NoError(t, err)
		assert.Equal(t, "<script>\nvar a = 1;\n</script>\n", result.Content)
		assert.Equal(t, 1, result.RemovedComments)
	})

	t.Run("html comment outside regions removed independently", func(t *testing.T) {
		result, err := stripper.Strip("<!-- x -->\n<p>hi</p>\n", profile)
		require.NoError(t, err)
		assert.Equal(t, "<p>hi</p>\n", result.Content)
		assert.Equal(t, 1, result.RemovedComments)
	})

	t.Run("html comment syntax inside script string kept", func(t *testing.T) {
		input := "<script>console.log(\"<!-- not an html comment -->\");</script>"
		result, err := stripper.Strip(input, profile)
		require.NoError(t, err)
		assert.Equal(t, input, result.Content)
	})

	t.Run("tags matched case insensitively", func(t *testing.T) {
		result, err := stripper.Strip("<STYLE>/* c */</STYLE>", profile)
		require.NoError(t, err)
		assert.Equal(t, "<STYLE></STYLE>", result.Content)
	})

	t.Run("tag name must be complete", func(t *testing.T) {
		input := "<styleguide>/* plain text, not a region */</styleguide>\n"
		result, err := stripper.Strip(input, profile)
		require.NoError(t, err)
		assert.Equal(t, input, result.Content)
	})

	t.Run("self closing script has no region body", func(t *testing.T) {
		result, err := stripper.Strip("<script src=\"a.js\"/><!-- x -->", profile)
		require.NoError(t, err)
		assert.Equal(t, "<script src=\"a.js\"/>", result.Content)
		assert.Equal(t, 1, result.RemovedComments)
	})

	t.Run("missing close tag consumes to end of file with warning", func(t *testing.T) {
		result, err := stripper.Strip("<style>\n/* open", profile)
		require.NoError(t, err)
		assert.Equal(t, "<style>\n", result.Content)

		joined := ""
		for _, w := range result.Warnings {
			joined += w + "\n"
		}
		assert.Contains(t, joined, "missing </style>")
	})

	t.Run("mixed document", func(t *testing.T) {
		input := "<!-- header -->\n<html>\n<style>\n/* c */\n.a { color: #FF5733; }\n</style>\n<body></body>\n</html>\n"
		expected := "<html>\n<style>\n.a { color: #FF5733; }\n</style>\n<body></body>\n</html>\n"
		result, err := stripper.Strip(input, profile)
		require.NoError(t, err)
		assert.Equal(t, expected, result.Content)
		assert.Equal(t, 2, result.RemovedComments)

		again, err := stripper.Strip(result.Content, profile)
		require.NoError(t, err)
		assert.Equal(t, result.Content, again.Content)
	})
}
