package dirdupes

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Debug flags accepted in [verbose] debug
const (
	DebugScan   = "scan"   // every classified directory entry
	DebugReport = "report" // buffer counts per rendered report
)

// debugTraceLevel is the verbose level debug-flag output is logged at
const debugTraceLevel = 3

var (
	verboseLevel  int
	debugFlags    = map[string]bool{}
	verboseOutput io.Writer = os.Stderr
)

// SetVerboseLevel sets the global verbose level
func SetVerboseLevel(level int) {
	verboseLevel = level
}

// GetVerboseLevel returns the current verbose level
func GetVerboseLevel() int {
	return verboseLevel
}

// SetVerboseOutput redirects verbose output, stderr by default
func SetVerboseOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	verboseOutput = w
}

// VerboseLog logs a message at the specified verbose level
func VerboseLog(level int, format string, args ...interface{}) {
	if verboseLevel < level {
		return
	}
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(verboseOutput, "[VERBOSE-%d] %s\n", level, strings.TrimSuffix(msg, "\n"))
}

// SetDebugFlags enables the flags in a comma-separated list. An entry may be
// written "name:false" to switch it off.
func SetDebugFlags(flagsStr string) {
	debugFlags = map[string]bool{}
	for _, flag := range strings.Split(flagsStr, ",") {
		name, value, _ := strings.Cut(strings.TrimSpace(flag), ":")
		if name == "" {
			continue
		}
		switch strings.ToLower(value) {
		case "false", "0", "no", "off":
			debugFlags[strings.ToLower(name)] = false
		default:
			debugFlags[strings.ToLower(name)] = true
		}
	}
}

// IsDebugEnabled returns true if the specified debug flag is enabled
func IsDebugEnabled(flag string) bool {
	return debugFlags[strings.ToLower(flag)]
}

// debugLog writes a trace line tagged with flag when the flag is enabled and the
// verbose level reaches trace
func debugLog(flag, format string, args ...interface{}) {
	if !IsDebugEnabled(flag) {
		return
	}
	VerboseLog(debugTraceLevel, "["+flag+"] "+format, args...)
}
