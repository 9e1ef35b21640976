// Package output writes generated artifacts. A target whose bytes already
// match the new content is left untouched; any other target is overwritten.
// The returned status compares content fingerprints of the previous and the
// new file so the run summary can tell real changes from rewrites.
package output

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/inful/mdfp"

	"git.home.luguber.info/inful/sitegen/internal/frontmatter"
)

// Status classifies a write against the file it replaced.
type Status string

const (
	StatusCreated   Status = "created"
	StatusUpdated   Status = "updated"
	StatusUnchanged Status = "unchanged"
)

// Result describes one written file.
type Result struct {
	Path        string
	Status      Status
	Fingerprint string
}

// Write creates parent directories and writes content to path unless the
// file already holds exactly these bytes.
func Write(path string, content []byte) (Result, error) {
	if path == "" {
		return Result{}, errors.New("output path is required")
	}

	res := Result{Path: path, Status: StatusCreated, Fingerprint: Fingerprint(content)}

	// #nosec G304 -- path is derived from the configured output directories.
	if prev, err := os.ReadFile(path); err == nil {
		res.Status = StatusUpdated
		if Fingerprint(prev) == res.Fingerprint {
			res.Status = StatusUnchanged
		}
		if bytes.Equal(prev, content) {
			return res, nil
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return Result{}, fmt.Errorf("create output directory: %w", err)
	}
	// #nosec G306 -- generated site files are served publicly.
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return Result{}, fmt.Errorf("write output file: %w", err)
	}
	return res, nil
}

// WriteString is Write for string content.
func WriteString(path, content string) (Result, error) {
	return Write(path, []byte(content))
}

// Fingerprint hashes a document. Rule documents hash their header and body
// separately; anything without a well-formed header hashes as body only.
func Fingerprint(content []byte) string {
	fm, body, had, _, err := frontmatter.Split(content)
	if err != nil || !had {
		return mdfp.CalculateFingerprintFromParts("", string(content))
	}
	return mdfp.CalculateFingerprintFromParts(strings.TrimSuffix(string(fm), "\n"), string(body))
}
