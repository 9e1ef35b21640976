package templates

import (
	"encoding/json"
	"fmt"
	"os"

	sgerrors "git.home.luguber.info/inful/sitegen/internal/errors"
	"git.home.luguber.info/inful/sitegen/internal/frontmatter"
	"git.home.luguber.info/inful/sitegen/internal/markdown"
)

// ValidateJSONFile re-reads a written file and checks that it decodes as JSON.
func ValidateJSONFile(path string) error {
	// #nosec G304 -- path was just written by the generator.
	data, err := os.ReadFile(path)
	if err != nil {
		return sgerrors.OutputWriteFailed(path, err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return sgerrors.InvalidJSONOutput(path, err)
	}
	return nil
}

// CheckRule reports problems in a rendered rule document: an unparseable
// header, and links that lost their destination.
func CheckRule(content []byte) []string {
	var issues []string
	_, body, err := frontmatter.ParseRule(content)
	if err != nil {
		issues = append(issues, err.Error())
		if body == nil {
			body = content
		}
	}
	for _, l := range markdown.EmptyLinks(body) {
		issues = append(issues, fmt.Sprintf("link %q has an empty destination", l.Text))
	}
	return issues
}
