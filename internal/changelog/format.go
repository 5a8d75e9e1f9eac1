package changelog

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// CategoryStyle defines the color and icon for a changelog category.
type CategoryStyle struct {
	Color *color.Color
	Icon  string
}

// categoryStyles maps lower-cased Keep a Changelog categories to their
// terminal styling. Unknown categories fall back to defaultStyle.
var categoryStyles = map[string]CategoryStyle{
	"added":      {Color: color.New(color.FgGreen), Icon: "✓"},
	"changed":    {Color: color.New(color.FgBlue), Icon: "~"},
	"deprecated": {Color: color.New(color.FgRed), Icon: "⚠"},
	"removed":    {Color: color.New(color.FgRed), Icon: "✗"},
	"fixed":      {Color: color.New(color.FgYellow), Icon: "⚡"},
	"security":   {Color: color.New(color.FgMagenta), Icon: "🔒"},
}

var defaultStyle = CategoryStyle{Color: color.New(color.FgCyan), Icon: "•"}

// FormatOptions controls the terminal output formatting.
type FormatOptions struct {
	Plain    bool // Disable colors and icons
	MaxWidth int  // Maximum line width (0 = auto-detect)
}

// styleFor returns the style for a category name, case-insensitively.
func styleFor(category string) CategoryStyle {
	if s, ok := categoryStyles[strings.ToLower(category)]; ok {
		return s
	}
	return defaultStyle
}

// FormatFragment writes every category of f with its entries, wrapping long
// entries to the terminal width.
func FormatFragment(f Fragment, w io.Writer, opts FormatOptions) error {
	width := resolveWidth(opts.MaxWidth)

	for _, c := range f.categories {
		style := styleFor(c.Name)
		if err := writeCategoryHeader(c.Name, style, w, opts); err != nil {
			return fmt.Errorf("formatting category %s: %w", c.Name, err)
		}
		for _, b := range c.Bullets {
			if err := writeEntry(b, style, w, opts, width); err != nil {
				return fmt.Errorf("formatting category %s: %w", c.Name, err)
			}
		}
	}

	return nil
}

// FormatSummary writes a one-line-per-category summary of a merge, e.g.
// "  ✓ Added (2 entries)".
func FormatSummary(f Fragment, w io.Writer, opts FormatOptions) error {
	for _, c := range f.categories {
		label := fmt.Sprintf("%s (%s)", c.Name, pluralize(len(c.Bullets), "entry", "entries"))
		if opts.Plain {
			if _, err := fmt.Fprintf(w, "  - %s\n", label); err != nil {
				return err
			}
			continue
		}
		style := styleFor(c.Name)
		colored := style.Color.SprintFunc()
		if _, err := fmt.Fprintf(w, "  %s %s\n", colored(style.Icon), label); err != nil {
			return err
		}
	}
	return nil
}

// writeCategoryHeader writes the category header line.
func writeCategoryHeader(category string, style CategoryStyle, w io.Writer, opts FormatOptions) error {
	if opts.Plain {
		_, err := fmt.Fprintf(w, "\n### %s\n", category)
		return err
	}

	colored := style.Color.SprintFunc()
	_, err := fmt.Fprintf(w, "\n%s %s\n", colored(style.Icon), colored(category))
	return err
}

// writeEntry writes a single changelog entry with optional wrapping.
func writeEntry(text string, style CategoryStyle, w io.Writer, opts FormatOptions, width int) error {
	prefix := "  - "

	if opts.Plain {
		_, err := fmt.Fprintf(w, "%s%s\n", prefix, text)
		return err
	}

	wrapped := wrapText(text, width-len(prefix), "    ")

	colored := style.Color.SprintFunc()
	_, err := fmt.Fprintf(w, "%s%s\n", prefix, colored(wrapped))
	return err
}

// resolveWidth determines the terminal width to use.
func resolveWidth(maxWidth int) int {
	if maxWidth > 0 {
		return maxWidth
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

// wrapText wraps text to fit within maxWidth runes, using indent for
// continuation lines. Breaks always fall on rune boundaries.
func wrapText(text string, maxWidth int, indent string) string {
	if maxWidth <= 0 || utf8.RuneCountInString(text) <= maxWidth {
		return text
	}

	var lines []string
	remaining := []rune(text)

	for len(remaining) > maxWidth {
		// Break at the last space that fits, or hard-break a long word.
		breakPoint := maxWidth
		for i := maxWidth - 1; i > 0; i-- {
			if remaining[i] == ' ' {
				breakPoint = i
				break
			}
		}

		lines = append(lines, string(remaining[:breakPoint]))
		remaining = []rune(strings.TrimLeft(string(remaining[breakPoint:]), " "))
	}

	if len(remaining) > 0 {
		lines = append(lines, string(remaining))
	}

	return strings.Join(lines, "\n"+indent)
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}
