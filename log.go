package blaze

/*
log.go is the ambient structured-logging setup (SPEC_FULL §B.2). The
codec path (components 1-6) never logs - only the router and the
stream bridge, the genuinely async/long-lived pieces, emit log lines.
The package stays silent until a caller opts in via SetLogger.
*/

import (
	"io"

	"github.com/rs/zerolog"
)

var pkgLogger = zerolog.New(io.Discard)

// SetLogger installs l as the package-wide logger used by the router
// and stream bridge. Call once during process startup; it is not
// safe to call concurrently with in-flight Router.Handle or
// StreamBridge calls.
func SetLogger(l zerolog.Logger) { pkgLogger = l }

func logger() *zerolog.Logger { return &pkgLogger }
