package dirdupes

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// readDirBatch bounds the number of entries fetched per getdents round trip
const readDirBatch = 256

// Scanner groups the regular files below a root path by content digest.
//
// Policy for unreadable things:
//   - a directory that cannot be opened or listed contributes nothing, silently
//     (this includes the root itself)
//   - an entry whose metadata cannot be read is skipped
//   - symlinks are never followed and contribute nothing
//   - devices, sockets, FIFOs and other types are reported to the diagnostics
//     writer and skipped
//   - a regular file that cannot be opened or read fails the whole scan with a
//     *FileReadError and no partial result
type Scanner struct {
	algorithm   *HashAlgorithm
	diagnostics io.Writer
	open        fileOpener
}

// NewScanner creates a scanner. A nil algorithm selects SHA-256 and a nil
// diagnostics writer selects stderr.
func NewScanner(algorithm *HashAlgorithm, diagnostics io.Writer) *Scanner {
	if algorithm == nil {
		algorithm = DefaultHashAlgorithm()
	}
	if diagnostics == nil {
		diagnostics = os.Stderr
	}
	return &Scanner{
		algorithm:   algorithm,
		diagnostics: diagnostics,
		open:        openFile,
	}
}

// Algorithm returns the digest algorithm in use
func (s *Scanner) Algorithm() *HashAlgorithm {
	return s.algorithm
}

// Scan walks root depth-first and returns a freshly built ScanResult
func (s *Scanner) Scan(root string) (ScanResult, error) {
	debugLog(DebugScan, "scan of %s started", root)

	result, err := s.scanDirRecursive(root)
	if err != nil {
		return nil, fmt.Errorf("scan of %s aborted: %w", root, err)
	}

	VerboseLog(1, "scanned %s: %d files, %d distinct digests", root, result.FileCount(), len(result))
	return result, nil
}

// scanDirRecursive hashes the regular files of dir in listing order, then
// recurses into its subdirectories in listing order, merging each child result
// after the files of this level.
func (s *Scanner) scanDirRecursive(dir string) (ScanResult, error) {
	result := make(ScanResult)

	entries := s.listDir(dir)

	var subdirs []string
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		info, err := entry.Info()
		if err != nil {
			VerboseLog(2, "skipping %s: %v", path, err)
			continue
		}

		mode := info.Mode()
		debugLog(DebugScan, "%s %s", fileTypeName(mode), path)

		switch {
		case mode.IsRegular():
			digest, err := s.hashFile(path)
			if err != nil {
				return nil, err
			}
			result.Add(digest, path)
		case mode.IsDir():
			subdirs = append(subdirs, path)
		case mode&fs.ModeSymlink != 0:
			// never followed
		default:
			fmt.Fprintf(s.diagnostics, "Unknown file type %s for %s\n", fileTypeName(mode), path)
		}
	}

	for _, subdir := range subdirs {
		sub, err := s.scanDirRecursive(subdir)
		if err != nil {
			return nil, err
		}
		result.Merge(sub)
	}

	return result, nil
}

// listDir returns the entries of dir in the order the filesystem yields them.
// Open and listing failures end the listing; whatever was read so far is kept.
// The directory handle is released before any entry is processed.
func (s *Scanner) listDir(dir string) []fs.DirEntry {
	// O_DIRECTORY keeps a FIFO or device root from blocking the open
	f, err := os.OpenFile(dir, os.O_RDONLY|unix.O_DIRECTORY, 0)
	if err != nil {
		VerboseLog(2, "skipping unreadable directory %s: %v", dir, err)
		return nil
	}
	defer f.Close()

	var entries []fs.DirEntry
	for {
		batch, err := f.ReadDir(readDirBatch)
		entries = append(entries, batch...)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				VerboseLog(2, "listing of %s stopped: %v", dir, err)
			}
			return entries
		}
	}
}

// fileTypeName names the type bits of mode for diagnostics
func fileTypeName(mode fs.FileMode) string {
	switch {
	case mode.IsRegular():
		return "regular file"
	case mode.IsDir():
		return "directory"
	case mode&fs.ModeSymlink != 0:
		return "symlink"
	case mode&fs.ModeNamedPipe != 0:
		return "named pipe"
	case mode&fs.ModeSocket != 0:
		return "socket"
	case mode&fs.ModeCharDevice != 0:
		return "character device"
	case mode&fs.ModeDevice != 0:
		return "block device"
	default:
		return fmt.Sprintf("irregular (%s)", mode.Type())
	}
}

// NewScannerFromConfig creates a scanner using the [filehash] section of cfg
func NewScannerFromConfig(cfg *Config, diagnostics io.Writer) (*Scanner, error) {
	algorithm, err := GetHashAlgorithm(cfg.GetHashConfig().Default)
	if err != nil {
		return nil, fmt.Errorf("failed to get hash algorithm: %w", err)
	}
	return NewScanner(algorithm, diagnostics), nil
}
