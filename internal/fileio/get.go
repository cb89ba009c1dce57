package fileio

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// minRead is the initial capacity when the size is unknown or tiny.
const minRead = 512

// Get reads the whole file at path and returns its contents.
// The returned slice is freshly allocated and owned by the caller.
func Get(path string) ([]byte, error) {
	fd, err := openRead(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer unix.Close(fd)

	data, err := readAll(fd, sizeHint(fd))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// readAll reads fd until EOF. size is only a capacity hint: the file may
// have grown or shrunk since fstat, and special files report 0.
func readAll(fd int, size int64) ([]byte, error) {
	// One extra byte so the final EOF read does not force a grow.
	hint := size + 1
	if hint < minRead || int64(int(hint)) != hint {
		hint = minRead
	}
	buf := make([]byte, 0, hint)

	for {
		if len(buf) == cap(buf) {
			buf = append(buf, 0)[:len(buf)]
		}
		n, err := unix.Read(fd, buf[len(buf):cap(buf)])
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return buf, nil
		}
		buf = buf[:len(buf)+n]
	}
}
