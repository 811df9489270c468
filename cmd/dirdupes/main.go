package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	dirdupes "github.com/mattkeenan/dirdupes/pkg"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "dirdupes: %v\n", err)
		os.Exit(exitConfig)
	}

	if err := run(os.Args[1:], cfg, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "dirdupes: %v\n", err)
		os.Exit(exitCode(err))
	}
}

// Exit statuses
const (
	exitScan   = 1 // a regular file could not be read
	exitConfig = 2 // the config file is unreadable or invalid
	exitOutput = 3 // the report could not be written
)

// exitCode maps a run error to the process exit status
func exitCode(err error) int {
	if dirdupes.IsFileReadError(err) {
		return exitScan
	}
	var cfgErr *configError
	if errors.As(err, &cfgErr) {
		return exitConfig
	}
	return exitOutput
}

// configError marks failures that happen before any root is scanned
type configError struct {
	err error
}

func (e *configError) Error() string { return "invalid configuration: " + e.err.Error() }
func (e *configError) Unwrap() error { return e.err }

// loadConfig reads the user config file, falling back to defaults when the
// config directory cannot be determined
func loadConfig() (*dirdupes.Config, error) {
	configPath, err := dirdupes.DefaultConfigPath()
	if err != nil {
		return dirdupes.LoadConfigData(nil)
	}
	return dirdupes.LoadConfig(configPath)
}

// run scans each root in turn and reports its duplicate groups before moving on
// to the next. The first scan error stops processing.
func run(roots []string, cfg *dirdupes.Config, stdout, stderr io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return &configError{err: err}
	}
	cfg.ApplyVerbose()

	scanner, err := dirdupes.NewScannerFromConfig(cfg, stderr)
	if err != nil {
		return &configError{err: err}
	}

	reporter, err := dirdupes.NewReporterFromConfig(stdout, cfg)
	if err != nil {
		return &configError{err: err}
	}

	for _, root := range roots {
		result, err := scanner.Scan(root)
		if err != nil {
			return err
		}

		if err := reporter.Report(root, dirdupes.FindDuplicates(result)); err != nil {
			return err
		}
	}

	return nil
}
