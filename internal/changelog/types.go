package changelog

import (
	"gopkg.in/yaml.v3"
)

// Category is a single changelog subsection (e.g. "Added") together with
// the bullet entries collected for it, in source order.
type Category struct {
	Name    string   `yaml:"name"`
	Bullets []string `yaml:"bullets"`
}

// Fragment is the ordered set of categorized bullets extracted from a single
// PR description. Categories keep the order in which they were first seen.
// The zero value is an empty fragment ready to use.
type Fragment struct {
	categories []Category
	index      map[string]int
}

// Add appends a bullet to the named category, creating the category on
// first use. Empty bullets are ignored so a category never exists without
// at least one entry.
func (f *Fragment) Add(category, bullet string) {
	if category == "" || bullet == "" {
		return
	}
	if f.index == nil {
		f.index = make(map[string]int)
	}
	i, ok := f.index[category]
	if !ok {
		i = len(f.categories)
		f.index[category] = i
		f.categories = append(f.categories, Category{Name: category})
	}
	f.categories[i].Bullets = append(f.categories[i].Bullets, bullet)
}

// Categories returns a copy of the categories in first-seen order.
func (f Fragment) Categories() []Category {
	out := make([]Category, len(f.categories))
	for i, c := range f.categories {
		out[i] = Category{Name: c.Name, Bullets: append([]string(nil), c.Bullets...)}
	}
	return out
}

// Names returns the category names in first-seen order.
func (f Fragment) Names() []string {
	names := make([]string, len(f.categories))
	for i, c := range f.categories {
		names[i] = c.Name
	}
	return names
}

// Bullets returns the entries recorded for category, or nil if the category
// is not part of the fragment.
func (f Fragment) Bullets(category string) []string {
	i, ok := f.index[category]
	if !ok {
		return nil
	}
	return append([]string(nil), f.categories[i].Bullets...)
}

// Len returns the number of categories.
func (f Fragment) Len() int {
	return len(f.categories)
}

// IsEmpty returns true if the fragment has nothing to merge.
func (f Fragment) IsEmpty() bool {
	return len(f.categories) == 0
}

// Count returns the total number of bullets across all categories.
func (f Fragment) Count() int {
	n := 0
	for _, c := range f.categories {
		n += len(c.Bullets)
	}
	return n
}

// MarshalYAML renders the fragment as a mapping of category name to bullet
// list. A yaml.Node is used so keys keep their first-seen order instead of
// being sorted like a Go map.
func (f Fragment) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, c := range f.categories {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: c.Name}
		list := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, b := range c.Bullets {
			list.Content = append(list.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: b})
		}
		node.Content = append(node.Content, key, list)
	}
	return node, nil
}

// Result describes the outcome of a full update run.
type Result struct {
	// Document is the merged and normalized changelog text.
	Document string
	// Merged lists the category names merged, in merge order.
	Merged []string
	// Entries is the number of bullets merged across all categories.
	Entries int
	// Changed is true when Document differs from the input document.
	Changed bool
}
