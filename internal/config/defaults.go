package config

// DefaultChangelog is the conventional changelog filename.
const DefaultChangelog = "CHANGELOG.md"

// GetDefaultConfigTemplate returns a commented config template for
// .prchangelog.yml.
func GetDefaultConfigTemplate() string {
	return `# prchangelog configuration

changelog: CHANGELOG.md               # Destination changelog (overridden by --changelog)
plain: false                          # Disable colors and icons
summary: true                         # Print per-category summary after merging
`
}

// GetDefaults returns the default configuration values keyed by koanf path.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"changelog": DefaultChangelog,
		"plain":     false,
		"summary":   true,
	}
}
