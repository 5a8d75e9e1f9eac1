package changelog

import "github.com/rs/zerolog"

// logger receives debug output from extraction and merging. It discards
// everything until SetLogger is called.
var logger = zerolog.Nop()

// SetLogger configures the logger used by this package.
func SetLogger(l zerolog.Logger) {
	logger = l
}
