// Package parser implements the minimal frontmatter header parser used to
// read artifact metadata.
//
// The parser handles exactly the subset of YAML that artifact headers use:
// scalar strings, booleans, inline bracket lists, and two-space indented
// block lists. It is deliberately not a general YAML parser; anchors, nested
// maps, and multi-document streams are out of scope, and malformed input
// degrades to literal strings or is ignored rather than raising errors.
package parser

import (
	"regexp"
	"strings"

	"github.com/kyora-dev/agentos-check/pkg/constants"
	"github.com/kyora-dev/agentos-check/pkg/logger"
)

var frontmatterLog = logger.New("parser:frontmatter")

// inlineListItem matches one item of an inline bracket list: either a quoted
// segment or a bare token delimited by commas/whitespace.
var inlineListItem = regexp.MustCompile(`["']([^"']+)["']|([^,\s]+)`)

// Frontmatter is the key/value mapping extracted from a header block.
// Values are string, bool, or []string. Key insertion order is preserved;
// re-declaring a key overwrites its value in place (last write wins).
type Frontmatter struct {
	keys   []string
	values map[string]any
}

func newFrontmatter() *Frontmatter {
	return &Frontmatter{values: make(map[string]any)}
}

// Set records a key/value pair, preserving the key's original position if it
// was already declared.
func (f *Frontmatter) Set(key string, value any) {
	if _, exists := f.values[key]; !exists {
		f.keys = append(f.keys, key)
	}
	f.values[key] = value
}

// Get returns the value for a key and whether the key was declared.
func (f *Frontmatter) Get(key string) (any, bool) {
	v, ok := f.values[key]
	return v, ok
}

// Keys returns the declared keys in insertion order.
func (f *Frontmatter) Keys() []string {
	return f.keys
}

// Len returns the number of declared keys.
func (f *Frontmatter) Len() int {
	return len(f.keys)
}

// Truthy reports whether a frontmatter value satisfies a required-key check.
// Empty strings, empty lists, and boolean false are all "not satisfied".
// Note that a deliberately-set `flag: false` therefore fails a requirement on
// `flag`; this matches the established validator behavior.
func Truthy(value any) bool {
	switch v := value.(type) {
	case string:
		return v != ""
	case bool:
		return v
	case []string:
		return len(v) > 0
	default:
		return value != nil
	}
}

// ExtractFrontmatterFromContent extracts the frontmatter header block from
// document text. It returns nil when the document has no header: the first
// line is not a bare delimiter, or no closing delimiter is found. An
// unterminated header is treated as no header at all, not as an error.
func ExtractFrontmatterFromContent(content string) *Frontmatter {
	lines := strings.Split(content, "\n")

	// The opening delimiter must be the first line, with no leading
	// whitespace; trailing whitespace is tolerated.
	if len(lines) == 0 || strings.TrimRight(lines[0], " \t\r") != constants.FrontmatterDelimiter {
		return nil
	}

	endIdx := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == constants.FrontmatterDelimiter {
			endIdx = i
			break
		}
	}
	if endIdx == -1 {
		frontmatterLog.Print("Unterminated frontmatter block, treating as absent")
		return nil
	}

	frontmatter := newFrontmatter()

	// Block list parsing is a two-state machine: either no list is open, or
	// the most recent key is accepting "  - item" continuation lines.
	// openKey/openList track the open state; the list is finalized into the
	// mapping when the next key is declared or the block ends.
	var openKey string
	var openList []string
	listOpen := false

	finalizeList := func() {
		if listOpen {
			frontmatter.Set(openKey, openList)
		}
		listOpen = false
		openList = nil
	}

	for _, line := range lines[1:endIdx] {
		stripped := strings.TrimSpace(line)
		if stripped == "" || strings.HasPrefix(stripped, "#") {
			continue
		}

		// List continuation: exactly two spaces of indent, then "- ".
		if strings.HasPrefix(line, "  - ") && listOpen {
			value := strings.TrimSpace(strings.TrimPrefix(stripped, "- "))
			openList = append(openList, stripQuotes(value))
			continue
		}

		colonIdx := strings.Index(line, ":")
		if colonIdx == -1 {
			// Not a key declaration and no list is open: malformed line,
			// ignored without error.
			continue
		}

		finalizeList()

		key := strings.TrimSpace(line[:colonIdx])
		valuePart := strings.TrimSpace(line[colonIdx+1:])
		openKey = key

		switch {
		case valuePart == "" || valuePart == "[]":
			// Empty value opens a block list; it stays an empty list if no
			// continuation lines follow.
			frontmatter.Set(key, []string{})
			openList = []string{}
			listOpen = true
		case strings.HasPrefix(valuePart, "[") && strings.HasSuffix(valuePart, "]"):
			frontmatter.Set(key, parseInlineList(valuePart))
		default:
			frontmatter.Set(key, parseScalar(valuePart))
		}
	}

	finalizeList()

	frontmatterLog.Printf("Parsed frontmatter: keys=%d", frontmatter.Len())
	return frontmatter
}

// parseInlineList parses an inline bracket list like ["a", "b"] or [a, b].
// Quoted segments are matched first; remaining bare tokens are split on
// commas and whitespace.
func parseInlineList(valuePart string) []string {
	inner := strings.TrimSpace(valuePart[1 : len(valuePart)-1])
	items := []string{}
	if inner == "" {
		return items
	}
	for _, match := range inlineListItem.FindAllStringSubmatch(inner, -1) {
		item := match[1]
		if item == "" {
			item = match[2]
		}
		if item != "" {
			items = append(items, strings.TrimSpace(item))
		}
	}
	return items
}

// parseScalar parses a scalar value: quotes are stripped when both ends
// match, and a case-insensitive true/false becomes a boolean.
func parseScalar(valuePart string) any {
	value := stripQuotes(valuePart)
	switch strings.ToLower(value) {
	case "true":
		return true
	case "false":
		return false
	}
	return value
}

// stripQuotes removes one pair of surrounding matching quote characters.
// A lone or mismatched quote is preserved literally.
func stripQuotes(value string) string {
	if len(value) >= 2 {
		if (strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`)) ||
			(strings.HasPrefix(value, `'`) && strings.HasSuffix(value, `'`)) {
			return value[1 : len(value)-1]
		}
	}
	return value
}
