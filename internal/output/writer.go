package output

import (
	"os"

	"golang.org/x/sys/unix"
)

// Writer writes to a file descriptor, using writev for batching.
type Writer struct {
	fd int
}

// NewWriter creates a Writer that writes to stdout.
func NewWriter() *Writer {
	return &Writer{fd: int(os.Stdout.Fd())}
}

// NewFdWriter creates a Writer for an already-open file descriptor.
// The Writer does not own fd and never closes it.
func NewFdWriter(fd int) *Writer {
	return &Writer{fd: fd}
}

// Write writes all of data, continuing after short writes.
func (w *Writer) Write(data []byte) (int, error) {
	return w.Writev(data)
}

// Writev writes the given buffers in order using scatter-gather I/O.
func (w *Writer) Writev(bufs ...[]byte) (int, error) {
	iovs := make([][]byte, 0, len(bufs))
	for _, b := range bufs {
		if len(b) > 0 {
			iovs = append(iovs, b)
		}
	}

	total := 0
	for len(iovs) > 0 {
		n, err := unix.Writev(w.fd, iovs)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return total, err
		}
		total += n
		// Drop fully written buffers and trim a partially written one.
		for n > 0 && len(iovs) > 0 {
			if n >= len(iovs[0]) {
				n -= len(iovs[0])
				iovs = iovs[1:]
				continue
			}
			iovs[0] = iovs[0][n:]
			n = 0
		}
	}
	return total, nil
}

// IsTerminal reports whether the underlying descriptor is a terminal.
func (w *Writer) IsTerminal() bool {
	return IsTerminal(uintptr(w.fd))
}
