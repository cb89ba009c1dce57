package fileio

import (
	"golang.org/x/sys/unix"
)

// openRead opens a file read-only with O_NOATIME, falling back without it.
// O_NOATIME is refused with EPERM when the caller does not own the file.
func openRead(path string) (int, error) {
	for {
		fd, err := unix.Open(path, unix.O_RDONLY|unix.O_CLOEXEC|unix.O_NOATIME, 0)
		if err == unix.EPERM {
			fd, err = unix.Open(path, unix.O_RDONLY|unix.O_CLOEXEC, 0)
		}
		if err == unix.EINTR {
			continue
		}
		return fd, err
	}
}

// openTrunc creates path or truncates it to zero length for writing.
func openTrunc(path string) (int, error) {
	for {
		fd, err := unix.Open(path, unix.O_WRONLY|unix.O_CREAT|unix.O_TRUNC|unix.O_CLOEXEC, 0o666)
		if err == unix.EINTR {
			continue
		}
		return fd, err
	}
}

// sizeHint returns the size fstat reports for fd, or 0 when unknown.
func sizeHint(fd int) int64 {
	var stat unix.Stat_t
	if err := unix.Fstat(fd, &stat); err != nil {
		return 0
	}
	if stat.Mode&unix.S_IFMT != unix.S_IFREG {
		return 0
	}
	return stat.Size
}
