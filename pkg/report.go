package dirdupes

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
)

// Reporter renders duplicate groups to a sink in one of the output formats
type Reporter struct {
	out    io.Writer
	format string
	header *color.Color
}

// rootReport is the structured form used by the json and yaml formats
type rootReport struct {
	Root   string           `json:"root" yaml:"root"`
	Groups []DuplicateGroup `json:"groups" yaml:"groups"`
}

// NewReporter creates a reporter. colorMode only affects the human format.
func NewReporter(out io.Writer, format, colorMode string) (*Reporter, error) {
	if err := ValidateOutputFormat(format); err != nil {
		return nil, err
	}
	if err := ValidateColorMode(colorMode); err != nil {
		return nil, err
	}

	header := color.New(color.FgYellow, color.Bold)
	if useColor(out, strings.ToLower(colorMode)) {
		header.EnableColor()
	} else {
		header.DisableColor()
	}

	return &Reporter{
		out:    out,
		format: strings.ToLower(format),
		header: header,
	}, nil
}

// NewReporterFromConfig creates a reporter using the [output] section of cfg
func NewReporterFromConfig(out io.Writer, cfg *Config) (*Reporter, error) {
	outputConfig := cfg.GetOutputConfig()
	return NewReporter(out, outputConfig.Format, outputConfig.Color)
}

func useColor(out io.Writer, mode string) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Report writes the groups found under root
func (r *Reporter) Report(root string, groups []DuplicateGroup) error {
	var lines [][]byte
	var err error

	switch r.format {
	case FormatHuman:
		lines = r.humanLines(groups)
	case FormatFdupes:
		lines = fdupesLines(groups)
	case FormatJSON:
		lines, err = jsonLines(root, groups)
	case FormatYAML:
		lines, err = yamlLines(root, groups)
	}
	if err != nil {
		return err
	}

	debugLog(DebugReport, "%d groups, %d buffers for %s", len(groups), len(lines), root)
	return writeLines(r.out, lines)
}

// humanLines renders "N:" followed by one tab-indented line per path
func (r *Reporter) humanLines(groups []DuplicateGroup) [][]byte {
	var lines [][]byte
	for _, group := range groups {
		lines = append(lines, []byte(r.header.Sprintf("%d:", len(group.Files))+"\n"))
		for _, file := range group.Files {
			lines = append(lines, []byte("\t"+file+"\n"))
		}
	}
	return lines
}

// fdupesLines renders one path per line with a blank line after each group
func fdupesLines(groups []DuplicateGroup) [][]byte {
	var lines [][]byte
	for _, group := range groups {
		for _, file := range group.Files {
			lines = append(lines, []byte(file+"\n"))
		}
		lines = append(lines, []byte("\n"))
	}
	return lines
}

func jsonLines(root string, groups []DuplicateGroup) ([][]byte, error) {
	data, err := json.Marshal(rootReport{Root: root, Groups: nonNil(groups)})
	if err != nil {
		return nil, fmt.Errorf("failed to encode json report: %w", err)
	}
	return [][]byte{data, []byte("\n")}, nil
}

func yamlLines(root string, groups []DuplicateGroup) ([][]byte, error) {
	data, err := yaml.Marshal(rootReport{Root: root, Groups: nonNil(groups)})
	if err != nil {
		return nil, fmt.Errorf("failed to encode yaml report: %w", err)
	}
	return [][]byte{[]byte("---\n"), data}, nil
}

func nonNil(groups []DuplicateGroup) []DuplicateGroup {
	if groups == nil {
		return []DuplicateGroup{}
	}
	return groups
}
