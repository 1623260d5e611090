package comment_stripper

import (
	"bytes"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/meysamhadeli/decomment/comment_stripper/contracts"
	"github.com/meysamhadeli/decomment/comment_stripper/models"
)

// ErrBinaryContent is returned when file content cannot be interpreted as text
var ErrBinaryContent = errors.New("content is not valid text")

// CommentStripper removes comments from file content according to a language
// profile, while keeping string literals and preserve-pattern matches intact.
type CommentStripper struct {
	preserve *Matcher
}

// NewCommentStripper creates a stripper bound to one preserve-pattern set
func NewCommentStripper(preserve *Matcher) contracts.ICommentStripper {
	return &CommentStripper{preserve: preserve}
}

// Strip transforms content in a single left-to-right pass. The output never
// contains anything the engine recognizes as a comment, so running Strip on
// its own output yields no further change.
func (cs *CommentStripper) Strip(content string, profile *models.LanguageProfile) (*models.StripResult, error) {
	if !utf8.ValidString(content) || strings.ContainsRune(content, 0) {
		return nil, ErrBinaryContent
	}

	e := newEngine(content, profile, cs.preserve)
	e.run()

	return &models.StripResult{
		Content:         e.out.String(),
		RemovedComments: e.removed,
		Warnings:        e.warnings,
	}, nil
}

type scanState int

const (
	stateNormal scanState = iota
	stateString
	stateLineComment
	stateBlockComment
)

// engine scans the source once, maintaining an explicit state and buffering
// output one line at a time so whole-line comments can be dropped with their
// line terminator.
type engine struct {
	src      string
	profile  *models.LanguageProfile
	preserve *Matcher

	pos   int
	state scanState

	out  bytes.Buffer
	line bytes.Buffer

	// lineHadRemoval marks that at least one comment was removed from the
	// current output line; such a line is dropped entirely when nothing but
	// whitespace remains.
	lineHadRemoval bool

	activeString *models.StringDelimiter
	activeBlock  *models.BlockComment
	blockDepth   int

	// comment collects the inner text of the comment being consumed, for
	// preserve-pattern extraction once the span ends
	comment bytes.Buffer

	removed  int
	warnings []string
}

func newEngine(src string, profile *models.LanguageProfile, preserve *Matcher) *engine {
	return &engine{src: src, profile: profile, preserve: preserve}
}

func (e *engine) run() {
	for e.pos < len(e.src) {
		switch e.state {
		case stateString:
			e.handleString()
		case stateLineComment:
			e.handleLineComment()
		case stateBlockComment:
			e.handleBlockComment()
		default:
			e.handleNormal()
		}
	}

	switch e.state {
	case stateLineComment:
		e.spliceFragments()
	case stateBlockComment:
		e.warnings = append(e.warnings, "unterminated block comment consumed to end of file")
		e.spliceFragments()
	}

	e.flushLine("")
}

func (e *engine) handleNormal() {
	c := e.src[e.pos]

	if c == '\n' {
		e.pos++
		e.flushLine("\n")
		return
	}

	if len(e.profile.EmbeddedRegions) > 0 && e.handleEmbeddedRegion() {
		return
	}

	for i := range e.profile.Strings {
		d := &e.profile.Strings[i]
		if strings.HasPrefix(e.src[e.pos:], d.Open) {
			e.activeString = d
			e.line.WriteString(d.Open)
			e.pos += len(d.Open)
			e.state = stateString
			return
		}
	}

	for i := range e.profile.BlockComments {
		b := &e.profile.BlockComments[i]
		if !strings.HasPrefix(e.src[e.pos:], b.Open) {
			continue
		}
		if b.AtLineStart && strings.TrimSpace(e.line.String()) != "" {
			continue
		}
		if e.preserveCovers() {
			break
		}
		e.activeBlock = b
		e.blockDepth = 1
		e.comment.Reset()
		e.pos += len(b.Open)
		e.state = stateBlockComment
		e.lineHadRemoval = true
		e.removed++
		return
	}

	for _, token := range e.profile.LineComments {
		if !strings.HasPrefix(e.src[e.pos:], token) {
			continue
		}
		if e.preserveCovers() {
			break
		}
		e.comment.Reset()
		e.pos += len(token)
		e.state = stateLineComment
		e.lineHadRemoval = true
		e.removed++
		return
	}

	e.line.WriteByte(c)
	e.pos++
}

func (e *engine) handleString() {
	d := e.activeString
	c := e.src[e.pos]

	// A non-multiline string implicitly ends at end-of-line; the newline is
	// handled by the normal state so the line flush stays in one place.
	if c == '\n' {
		if !d.Multiline {
			e.activeString = nil
			e.state = stateNormal
			return
		}
		e.pos++
		e.flushLine("\n")
		return
	}

	if d.Escape && c == '\\' && e.pos+1 < len(e.src) {
		e.line.WriteByte(c)
		next := e.src[e.pos+1]
		// A backslash line continuation keeps the string open, but the
		// physical line still ends here and must be flushed as one.
		if next == '\n' {
			e.pos += 2
			e.flushLine("\n")
			return
		}
		e.line.WriteByte(next)
		e.pos += 2
		return
	}

	if strings.HasPrefix(e.src[e.pos:], d.Close) {
		e.line.WriteString(d.Close)
		e.pos += len(d.Close)
		e.activeString = nil
		e.state = stateNormal
		return
	}

	e.line.WriteByte(c)
	e.pos++
}

func (e *engine) handleLineComment() {
	c := e.src[e.pos]
	if c == '\n' {
		e.spliceFragments()
		e.state = stateNormal
		return
	}
	// The carriage return of a CRLF terminator belongs to the line, not to
	// the comment being removed.
	if c == '\r' && e.pos+1 < len(e.src) && e.src[e.pos+1] == '\n' {
		e.spliceFragments()
		e.line.WriteByte(c)
		e.pos++
		e.state = stateNormal
		return
	}
	e.comment.WriteByte(c)
	e.pos++
}

func (e *engine) handleBlockComment() {
	b := e.activeBlock

	if b.Nested && strings.HasPrefix(e.src[e.pos:], b.Open) {
		e.blockDepth++
		e.comment.WriteString(b.Open)
		e.pos += len(b.Open)
		return
	}

	if strings.HasPrefix(e.src[e.pos:], b.Close) {
		e.pos += len(b.Close)
		e.blockDepth--
		if e.blockDepth == 0 {
			e.spliceFragments()
			e.activeBlock = nil
			e.state = stateNormal
		} else {
			e.comment.WriteString(b.Close)
		}
		return
	}

	e.comment.WriteByte(e.src[e.pos])
	e.pos++
}

// preserveCovers reports whether the current position falls inside a preserve
// pattern match on its source line. Such a position never starts a comment.
func (e *engine) preserveCovers() bool {
	start := strings.LastIndexByte(e.src[:e.pos], '\n') + 1
	end := strings.IndexByte(e.src[e.pos:], '\n')
	if end == -1 {
		end = len(e.src)
	} else {
		end += e.pos
	}
	return e.preserve.Covers(e.src[start:end], e.pos-start)
}

// spliceFragments emits the preserved substrings of the consumed comment at
// the position where the comment ended, joined by single spaces.
func (e *engine) spliceFragments() {
	fragments := e.preserve.Fragments(e.comment.String())
	e.comment.Reset()
	if len(fragments) == 0 {
		return
	}
	e.line.WriteString(strings.Join(fragments, " "))
}

// flushLine moves the buffered line into the output. A line that had a
// comment removed is trimmed of trailing blanks; when nothing but whitespace
// remains of it, the whole line is dropped together with its terminator.
func (e *engine) flushLine(terminator string) {
	text := e.line.String()
	e.line.Reset()
	had := e.lineHadRemoval
	e.lineHadRemoval = false

	if terminator == "\n" && strings.HasSuffix(text, "\r") {
		text = strings.TrimSuffix(text, "\r")
		terminator = "\r\n"
	}

	if had {
		text = strings.TrimRight(text, " \t")
		if text == "" {
			return
		}
	}

	e.out.WriteString(text)
	e.out.WriteString(terminator)
}

// writeVerbatim appends already-processed text, honoring line boundaries so
// the flush accounting stays correct across embedded regions.
func (e *engine) writeVerbatim(s string) {
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			e.flushLine("\n")
			continue
		}
		e.line.WriteByte(s[i])
	}
}
