// Package markup expands [tag]...[/tag] spans into SGR escape sequences
// using named styles from a theme. Tags with no matching style pass through
// untouched, and the whole layer degrades to plain text when color is
// disabled.
package markup

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/arthur-debert/sgr/pkg/sgr"
	"github.com/arthur-debert/sgr/pkg/theme"
)

// Parser expands markup tags against a theme and a color decision.
type Parser struct {
	theme   theme.Theme
	enabled bool
}

// New creates a parser for the given theme. When enabled is false, Expand
// strips tags instead of styling them.
func New(t theme.Theme, enabled bool) *Parser {
	return &Parser{theme: t, enabled: enabled}
}

var (
	// innerTagPattern matches a tag pair with no tags nested inside, so
	// stripping can work inside-out.
	innerTagPattern = regexp.MustCompile(`\[([a-z0-9_-]+)\]([^\[]*)\[/([a-z0-9_-]+)\]`)
	noFormatPattern = regexp.MustCompile(`\[no-format\](.*?)\[/no-format\]`)
)

// Expand processes markup text and returns styled output. [no-format] spans
// render only when color is disabled.
func (p *Parser) Expand(text string) string {
	if !p.enabled {
		return Strip(noFormatPattern.ReplaceAllString(text, "$1"))
	}

	result := noFormatPattern.ReplaceAllString(text, "")

	// Process each known tag in turn, repeating until a full pass changes
	// nothing so that nested tags get expanded too.
	for {
		oldResult := result
		for tag, style := range p.theme {
			pattern := regexp.MustCompile(`\[` + regexp.QuoteMeta(tag) + `\](.*?)\[/` + regexp.QuoteMeta(tag) + `\]`)
			result = pattern.ReplaceAllStringFunc(result, func(match string) string {
				sub := pattern.FindStringSubmatch(match)
				if len(sub) != 2 {
					return match
				}
				return render(style, sub[1])
			})
		}
		if result == oldResult {
			break
		}
	}

	return result
}

// render wraps content in the style's escapes and a trailing reset.
func render(s sgr.Style, content string) string {
	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		return content
	}
	buf.WriteString(content)
	buf.WriteString(sgr.ResetSeq)
	return buf.String()
}

// Strip removes all well-formed tag pairs, returning the plain text.
// Mismatched pairs are left alone.
func Strip(text string) string {
	result := text
	for {
		stripped := innerTagPattern.ReplaceAllStringFunc(result, func(match string) string {
			sub := innerTagPattern.FindStringSubmatch(match)
			if sub[1] != sub[3] {
				return match
			}
			return sub[2]
		})
		if stripped == result {
			return result
		}
		result = stripped
	}
}

// ExpandTemplate substitutes {{name}} placeholders and then expands markup.
func (p *Parser) ExpandTemplate(template string, vars map[string]string) string {
	result := template
	for key, value := range vars {
		result = strings.ReplaceAll(result, "{{"+key+"}}", value)
	}
	return p.Expand(result)
}
