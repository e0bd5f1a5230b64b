// internal/device/controller_other.go

//go:build !linux

package device

import (
	"errors"

	"github.com/tamzrod/dacctl/internal/ioc"
)

// sysController is a stub; the driver only exists on linux.
type sysController struct{}

func (sysController) Control(fd uintptr, req ioc.Request, payload []byte) error {
	return errors.New("device-control calls require linux")
}
