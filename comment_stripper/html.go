package comment_stripper

import (
	"fmt"
	"strings"
)

// handleEmbeddedRegion recognizes <style> and <script> bodies and strips them
// with the CSS/JS sub-grammar while the outer HTML comment grammar keeps
// applying outside those regions. Returns false when no region starts at the
// current position.
func (e *engine) handleEmbeddedRegion() bool {
	for i := range e.profile.EmbeddedRegions {
		r := &e.profile.EmbeddedRegions[i]
		if !hasPrefixFold(e.src[e.pos:], r.OpenTag) {
			continue
		}

		// The opener must be a complete tag name: <style> or <style ...>,
		// never <styleguide>.
		after := e.pos + len(r.OpenTag)
		if after < len(e.src) {
			c := e.src[after]
			if c != '>' && c != ' ' && c != '\t' && c != '\n' && c != '\r' && c != '/' {
				continue
			}
		}

		gt := strings.IndexByte(e.src[after:], '>')
		if gt == -1 {
			return false
		}
		tagEnd := after + gt + 1

		e.writeVerbatim(e.src[e.pos:tagEnd])

		// Self-closing tags carry no body
		if strings.HasSuffix(strings.TrimRight(e.src[e.pos:tagEnd], "> \t"), "/") {
			e.pos = tagEnd
			return true
		}

		var body string
		closeIdx := indexFold(e.src[tagEnd:], r.CloseTag)
		if closeIdx == -1 {
			body = e.src[tagEnd:]
			e.pos = len(e.src)
			e.warnings = append(e.warnings, fmt.Sprintf("missing %s tag, region extends to end of file", r.CloseTag))
		} else {
			body = e.src[tagEnd : tagEnd+closeIdx]
			e.pos = tagEnd + closeIdx
		}

		profile, ok := ProfileByName(r.ProfileName)
		if !ok {
			e.writeVerbatim(body)
			return true
		}

		sub := newEngine(body, profile, e.preserve)
		sub.run()
		e.removed += sub.removed
		e.warnings = append(e.warnings, sub.warnings...)
		e.writeVerbatim(sub.out.String())

		// The closing tag itself is emitted by the normal scan
		return true
	}
	return false
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

func indexFold(s, substr string) int {
	for i := 0; i+len(substr) <= len(s); i++ {
		if strings.EqualFold(s[i:i+len(substr)], substr) {
			return i
		}
	}
	return -1
}
