package blaze

/*
options.go carries the library's runtime knobs (SPEC_FULL §B.3): a
single Options value rather than scattered package-level globals,
mirroring the teacher's Options struct in opts.go. There is no on-disk
config - spec.md §6.4 rules out persisted state - so this is purely an
in-process configuration value a caller builds once and threads
through.
*/

import (
	"io"

	"github.com/rs/zerolog"
)

// Options carries the package's runtime configuration. The zero value
// is ready to use: strict bounds checking, isatty-detected pretty-print
// color, and a discarding logger.
type Options struct {
	// LaxBounds reproduces the reference implementation's off-by-one
	// bounds check, cursor+n >= len instead of cursor+n > len, so a
	// capture decoded against the original server can be compared
	// byte-for-byte against this decoder (spec §9, open question two).
	// False (the default) is the recommended, corrected behavior.
	LaxBounds bool

	// PrettyColor, when PrettyColorSet is true, overrides Printer's
	// isatty-detected color default.
	PrettyColor    bool
	PrettyColorSet bool

	// Logger receives router and stream-bridge diagnostics. The zero
	// value discards everything, matching log.go's default.
	Logger zerolog.Logger
}

// DefaultOptions returns the library's default configuration.
func DefaultOptions() Options { return Options{} }

// ApplyReader configures r's bounds-check mode per o.
func (o Options) ApplyReader(r *Reader) { r.SetStrict(!o.LaxBounds) }

// Apply installs o.Logger as the package-wide logger (see SetLogger).
// Bounds-checking and color are consumed per-Reader/per-Printer via
// ApplyReader and NewPrinterWithOptions, not through this method -
// Apply only wires the ambient, process-global piece.
func (o Options) Apply() { SetLogger(o.Logger) }

// NewPrinterWithOptions builds a Printer honoring o's color override.
func NewPrinterWithOptions(w io.Writer, o Options) *Printer {
	p := NewPrinter(w)
	if o.PrettyColorSet {
		p.SetColor(o.PrettyColor)
	}
	return p
}
