package fileio

import (
	"fmt"
	"io"

	"golang.org/x/sys/unix"
)

// Put creates the file at path, or truncates it if it exists, and writes data.
// The overwrite is not atomic: an interrupted Put can leave the file empty or
// partially written. Callers that need durability write to a temporary file
// and rename it into place.
func Put(path string, data []byte) error {
	fd, err := openTrunc(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := writeAll(fd, data); err != nil {
		unix.Close(fd)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := unix.Close(fd); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// writeAll writes data to fd, continuing after short writes.
func writeAll(fd int, data []byte) error {
	for len(data) > 0 {
		n, err := unix.Write(fd, data)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return err
		}
		if n == 0 {
			return io.ErrShortWrite
		}
		data = data[n:]
	}
	return nil
}
