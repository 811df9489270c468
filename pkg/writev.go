package dirdupes

import (
	"fmt"
	"io"
	"os"
	"syscall"

	"github.com/google/vectorio"
)

// writeLines writes the buffers in order. File sinks get one writev per IOV_MAX
// buffers; other writers get one Write per buffer.
func writeLines(w io.Writer, lines [][]byte) error {
	if f, ok := w.(*os.File); ok {
		return writevFile(f, lines)
	}
	for _, line := range lines {
		if _, err := w.Write(line); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}
	return nil
}

func writevFile(f *os.File, lines [][]byte) error {
	for start := 0; start < len(lines); start += maxIovecs {
		end := min(start+maxIovecs, len(lines))
		chunk := lines[start:end]

		iovecs := make([]syscall.Iovec, 0, len(chunk))
		expected := 0
		for _, line := range chunk {
			if len(line) == 0 {
				continue
			}
			iov := syscall.Iovec{Base: &line[0]}
			iov.SetLen(len(line))
			iovecs = append(iovecs, iov)
			expected += len(line)
		}
		if len(iovecs) == 0 {
			continue
		}

		nw, err := vectorio.WritevRaw(f.Fd(), iovecs)
		if err != nil {
			return fmt.Errorf("failed to write report with vectorio: %w", err)
		}
		if nw < expected {
			// Short write on a pipe or tty; finish with plain writes
			if err := writeRemainder(f, chunk, nw); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeRemainder writes everything in lines past the first skip bytes
func writeRemainder(f *os.File, lines [][]byte, skip int) error {
	for _, line := range lines {
		if skip >= len(line) {
			skip -= len(line)
			continue
		}
		if _, err := f.Write(line[skip:]); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		skip = 0
	}
	return nil
}

// maxIovecs is Linux UIO_MAXIOV, the value glibc reports for sysconf(_SC_IOV_MAX)
const maxIovecs = 1024
