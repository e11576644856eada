package constant

import _ "embed"

// AsciiArtLogo is the application's banner, embedded at compile time.
//
//go:embed ascii.txt
var AsciiArtLogo string
