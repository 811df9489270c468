package dirdupes

import (
	"bytes"
	"os"
)

// fileOpener opens a regular file for reading
type fileOpener func(name string) (*os.File, error)

func openFile(name string) (*os.File, error) {
	return os.Open(name)
}

// readFileContents copies the complete content of filePath into a heap buffer.
// The file handle is closed before returning on every path.
func readFileContents(filePath string, open fileOpener) ([]byte, error) {
	file, err := open(filePath)
	if err != nil {
		return nil, &FileReadError{Path: filePath, Op: "open", Err: err}
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, &FileReadError{Path: filePath, Op: "stat", Err: err}
	}

	// The size is only a hint; the file may change between Stat and EOF
	var buf bytes.Buffer
	if size := stat.Size(); size > 0 && int64(int(size)) == size {
		buf.Grow(int(size) + bytes.MinRead)
	}
	if _, err := buf.ReadFrom(file); err != nil {
		return nil, &FileReadError{Path: filePath, Op: "read", Err: err}
	}
	return buf.Bytes(), nil
}

// hashFile reads a regular file into memory and digests its full content
func (s *Scanner) hashFile(filePath string) (DigestKey, error) {
	data, err := readFileContents(filePath, s.open)
	if err != nil {
		return "", err
	}
	return s.algorithm.Digest(data), nil
}
