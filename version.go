package portfolio

import _ "embed"

// Version is the release of the portfolio module, read from the VERSION file.
//
//go:embed VERSION
var Version string
