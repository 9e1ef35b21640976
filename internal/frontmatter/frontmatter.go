// Package frontmatter splits rule documents into their YAML header and
// Markdown body and decodes the rule header fields.
package frontmatter

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Style captures the newline shape of a document.
type Style struct {
	Newline            string
	HasTrailingNewline bool
}

// Split separates YAML frontmatter (`---` delimited) from the Markdown body.
//
// If the document does not start with a YAML frontmatter delimiter, had is false
// and body is the full input.
func Split(content []byte) (frontmatter []byte, body []byte, had bool, style Style, err error) {
	style = detectStyle(content)

	nl := style.Newline
	open := []byte("---" + nl)
	if !bytes.HasPrefix(content, open) {
		return nil, content, false, style, nil
	}

	frontmatterStart := len(open)
	closeLine := []byte("---" + nl)
	if bytes.HasPrefix(content[frontmatterStart:], closeLine) {
		bodyStart := frontmatterStart + len(closeLine)
		return []byte{}, content[bodyStart:], true, style, nil
	}

	closeSeq := []byte(nl + "---" + nl)
	idx := bytes.Index(content[frontmatterStart:], closeSeq)
	if idx < 0 {
		return nil, nil, false, style, ErrMissingClosingDelimiter
	}

	frontmatterEnd := frontmatterStart + idx + len(nl)
	bodyStart := frontmatterStart + idx + len(closeSeq)
	return content[frontmatterStart:frontmatterEnd], content[bodyStart:], true, style, nil
}

// ErrMissingClosingDelimiter indicates the document started with a YAML
// frontmatter delimiter but did not contain a closing delimiter.
var ErrMissingClosingDelimiter = errors.New("yaml frontmatter start delimiter found but closing delimiter is missing")

// RuleHeader holds the header fields of an editor rule document (.mdc).
// Globs may be written as a comma-separated string or a YAML list.
type RuleHeader struct {
	Description string
	Globs       []string
	AlwaysApply bool
}

type rawRuleHeader struct {
	Description string    `yaml:"description"`
	Globs       yaml.Node `yaml:"globs"`
	AlwaysApply bool      `yaml:"alwaysApply"`
}

// ParseRule decodes the header of a rendered rule document. A document
// without frontmatter yields a zero header and the whole input as body.
func ParseRule(content []byte) (RuleHeader, []byte, error) {
	fm, body, had, _, err := Split(content)
	if err != nil {
		return RuleHeader{}, nil, err
	}
	if !had || len(bytes.TrimSpace(fm)) == 0 {
		return RuleHeader{}, body, nil
	}

	var raw rawRuleHeader
	if err := yaml.Unmarshal(fm, &raw); err != nil {
		return RuleHeader{}, body, fmt.Errorf("parse rule header: %w", err)
	}

	h := RuleHeader{Description: raw.Description, AlwaysApply: raw.AlwaysApply}
	switch raw.Globs.Kind {
	case yaml.ScalarNode:
		for _, g := range strings.Split(raw.Globs.Value, ",") {
			if g = strings.TrimSpace(g); g != "" {
				h.Globs = append(h.Globs, g)
			}
		}
	case yaml.SequenceNode:
		if err := raw.Globs.Decode(&h.Globs); err != nil {
			return RuleHeader{}, body, fmt.Errorf("parse rule globs: %w", err)
		}
	}
	return h, body, nil
}

func detectStyle(content []byte) Style {
	newline := "\n"
	for i := 0; i+1 < len(content); i++ {
		if content[i] == '\r' && content[i+1] == '\n' {
			newline = "\r\n"
			break
		}
		if content[i] == '\n' {
			newline = "\n"
			break
		}
	}

	hasTrailingNewline := len(content) > 0 && (content[len(content)-1] == '\n')

	return Style{
		Newline:            newline,
		HasTrailingNewline: hasTrailingNewline,
	}
}
