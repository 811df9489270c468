package dirdupes

// Digest sizes in bytes; every supported algorithm yields 256 bits
const (
	HashSizeSHA256     = 32
	HashSizeSHA512_256 = 32
)

// Output format names
const (
	FormatHuman  = "human"
	FormatJSON   = "json"
	FormatYAML   = "yaml"
	FormatFdupes = "fdupes"
)

// Colour modes for human output
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config file location relative to the user config directory
const (
	ConfigDirName  = "dirdupes"
	ConfigFileName = "config"
)
