package emit

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"text/template"

	"golang.org/x/net/html"
)

//go:embed assets/*.tmpl
var assets embed.FS

var identPattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

var tsFuncs = template.FuncMap{
	"ts":    tsString,
	"key":   tsKey,
	"array": tsArray,
}

// mustAsset parses an embedded template. A missing or broken asset is a
// programmer error.
func mustAsset(name string) *template.Template {
	raw, err := assets.ReadFile("assets/" + name)
	if err != nil {
		panic(fmt.Sprintf("embedded template missing %s: %v", name, err))
	}
	return template.Must(template.New(name).Funcs(tsFuncs).Parse(string(raw)))
}

func execute(t *template.Template, name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}

// braceEscaper keeps literal braces out of generated blocks so the
// seo-config block patterns still match on the next run.
var braceEscaper = strings.NewReplacer("{", `\u007b`, "}", `\u007d`)

// tsString quotes s as a TypeScript string literal. Braces are written as
// unicode escapes.
func tsString(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// Strings always encode.
	_ = enc.Encode(s)
	return braceEscaper.Replace(strings.TrimSuffix(buf.String(), "\n"))
}

// tsKey renders an object key, quoting it only when it is not an identifier.
func tsKey(s string) string {
	if identPattern.MatchString(s) {
		return s
	}
	return tsString(s)
}

// tsArray renders a one-line array of string literals.
func tsArray(items []string) string {
	quoted := make([]string, 0, len(items))
	for _, s := range items {
		quoted = append(quoted, tsString(s))
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// embedSrc returns the src of the first iframe in an embed snippet, or ""
// when the snippet holds none.
func embedSrc(snippet string) string {
	if !strings.Contains(snippet, "<") {
		return ""
	}
	doc, err := html.Parse(strings.NewReader(snippet))
	if err != nil {
		return ""
	}
	var find func(*html.Node) string
	find = func(n *html.Node) string {
		if n.Type == html.ElementNode && n.Data == "iframe" {
			for _, a := range n.Attr {
				if a.Key == "src" {
					return a.Val
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if src := find(c); src != "" {
				return src
			}
		}
		return ""
	}
	return find(doc)
}
