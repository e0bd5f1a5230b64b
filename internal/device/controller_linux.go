// internal/device/controller_linux.go

//go:build linux

package device

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/tamzrod/dacctl/internal/ioc"
)

// sysController issues real ioctl(2) calls.
type sysController struct{}

func (sysController) Control(fd uintptr, req ioc.Request, payload []byte) error {
	var errno syscall.Errno
	if len(payload) == 0 {
		_, _, errno = unix.Syscall(unix.SYS_IOCTL, fd, uintptr(req), 0)
	} else {
		_, _, errno = unix.Syscall(unix.SYS_IOCTL, fd, uintptr(req), uintptr(unsafe.Pointer(&payload[0])))
	}
	if errno != 0 {
		return errno
	}
	return nil
}
