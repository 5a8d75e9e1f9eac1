package changelog

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// RenderMarkdown writes the fragment as Keep a Changelog category sections,
// in first-seen order, separated by a blank line.
//
// The output is stable: the same fragment always renders identically.
func RenderMarkdown(f Fragment, w io.Writer) error {
	for i, c := range f.categories {
		if err := renderCategory(c, w, i == 0); err != nil {
			return fmt.Errorf("rendering category %s: %w", c.Name, err)
		}
	}
	return nil
}

// RenderMarkdownString is a convenience function that renders to a string.
func RenderMarkdownString(f Fragment) (string, error) {
	var b strings.Builder
	if err := RenderMarkdown(f, &b); err != nil {
		return "", err
	}
	return b.String(), nil
}

// renderCategory writes a single category section with its entries.
func renderCategory(c Category, w io.Writer, isFirst bool) error {
	if !isFirst {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "### "+c.Name+"\n\n"); err != nil {
		return err
	}
	_, err := io.WriteString(w, renderBullets(c.Bullets, "\n")+"\n")
	return err
}

// RenderYAML writes the fragment as an ordered YAML mapping of category to
// bullet list.
func RenderYAML(f Fragment, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("encoding fragment YAML: %w", err)
	}
	return enc.Close()
}
