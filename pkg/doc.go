// Package dirdupes finds files with identical content below a directory tree.
//
// # Core API
//
// A Scanner walks one root path depth-first and groups every regular file by
// the digest of its complete content:
//
//	scanner := dirdupes.NewScanner(nil, os.Stderr)
//	result, err := scanner.Scan("/path/to/dir")
//
// The ScanResult holds every digest seen, including singletons. FindDuplicates
// keeps only the groups with more than one path:
//
//	for _, group := range dirdupes.FindDuplicates(result) {
//		fmt.Printf("%d: %v\n", group.Count, group.Files)
//	}
//
// # Failure policy
//
// Directories that cannot be listed, entries whose metadata cannot be read and
// symlinks contribute nothing. Other non-regular entries (devices, sockets,
// FIFOs) are reported to the diagnostics writer and skipped. A regular file that
// cannot be opened or read aborts the scan with a *FileReadError.
//
// # Configuration
//
// An optional INI file at DefaultConfigPath selects the digest algorithm, the
// report format and verbosity:
//
//	[filehash]
//	default = sha256
//
//	[output]
//	format = human
//	color = auto
//
//	[verbose]
//	level = 0
//	debug = scan
package dirdupes
