// Package emit builds the structured data files that are generated straight
// from the business record instead of from a template: robots.txt, the
// scrape summary, FAQ, portfolio and blog stubs, and the two TypeScript
// configuration modules.
//
// Emitters are independent. Each writes one fixed path and reports its own
// failure; the caller decides whether to continue.
package emit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"

	"git.home.luguber.info/inful/sitegen/internal/business"
	"git.home.luguber.info/inful/sitegen/internal/config"
	"git.home.luguber.info/inful/sitegen/internal/output"
)

// Context carries the inputs shared by every emitter.
type Context struct {
	Record   *business.Record
	Defaults config.Defaults
	Paths    config.PathsConfig // already resolved against the site root
	Logger   *slog.Logger
}

// Emitter produces one output document.
type Emitter interface {
	Name() string
	Path(paths config.PathsConfig) string
	Emit(ctx *Context) (Result, error)
}

// Result reports one emitter run. Skipped emitters wrote nothing.
type Result struct {
	Emitter  string
	Path     string
	Write    output.Result
	Skipped  bool
	Warnings []string
}

// All returns every emitter in run order.
func All() []Emitter {
	return []Emitter{
		Robots{},
		ScrapeData{},
		BlogPosts{},
		FAQ{},
		Portfolio{},
		BusinessConfig{},
		SEOConfig{},
	}
}

// Enabled returns the emitters switched on in cfg, in run order.
func Enabled(cfg config.EmittersConfig) []Emitter {
	var out []Emitter
	for _, e := range All() {
		if cfg.Enabled(e.Name()) {
			out = append(out, e)
		}
	}
	return out
}

func (c *Context) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

func (c *Context) businessName() string { return c.Record.BusinessName(c.Defaults.BusinessName) }
func (c *Context) websiteURL() string   { return c.Record.WebsiteURL(c.Defaults.WebsiteURL) }

func (c *Context) primaryKeyword() string {
	return c.Record.String(business.KeyPrimaryKeyword, c.Defaults.PrimaryKeyword)
}

func (c *Context) ctaText() string {
	return c.Record.String(business.KeyCTAText, c.Defaults.CTAText)
}

// write stores content and wraps the outcome as a Result.
func write(name, path string, content []byte) (Result, error) {
	w, err := output.Write(path, content)
	if err != nil {
		return Result{Emitter: name, Path: path}, err
	}
	return Result{Emitter: name, Path: path, Write: w}, nil
}

// encodeJSON renders v with two-space indentation and a trailing newline.
// Non-ASCII text and HTML characters are written as-is.
func encodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJSON(name, path string, v any) (Result, error) {
	data, err := encodeJSON(v)
	if err != nil {
		return Result{Emitter: name, Path: path}, fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	return write(name, path, data)
}

// head returns at most the first n elements of s.
func head[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// nonNil keeps empty lists encoding as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// textOrEmpty renders a raw record value for JSON, mapping absent to "".
func textOrEmpty(v business.Value) business.Value {
	if v.IsNull() {
		return business.String("")
	}
	return v
}
