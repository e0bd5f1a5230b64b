// internal/dispatch/dispatch.go
package dispatch

import (
	"fmt"

	"github.com/tamzrod/dacctl/internal/codec"
	"github.com/tamzrod/dacctl/internal/device"
	"github.com/tamzrod/dacctl/internal/protocol"
)

// Device is the part of a session dispatch drives.
type Device interface {
	Control(cmd protocol.Command, arg ...int32) error
	WriteValue(v int32) error
	Close() error
}

// Opener acquires the device. Called at most once per Execute, and only after Parse succeeded.
type Opener func() (Device, error)

// Invocation is a fully validated command line.
type Invocation struct {
	Spec protocol.Spec
	Args []int32
}

// Parse validates a command line against profile p.
// It performs no IO. Arity is checked here so no handle is opened for malformed input.
func Parse(p *protocol.Profile, args []string) (Invocation, error) {
	if len(args) == 0 {
		return Invocation{}, &device.Error{Code: device.BadArity, Msg: "command required"}
	}

	token := args[0]
	spec, ok := p.Lookup(token)
	if !ok {
		return Invocation{}, &device.Error{Code: device.UnknownCommand, Op: token, Msg: fmt.Sprintf("unknown to profile %s", p.Name)}
	}

	rest := args[1:]
	op := spec.Command.String()
	if want := spec.Arity(); len(rest) != want {
		return Invocation{}, &device.Error{
			Code: device.BadArity,
			Op:   op,
			Msg:  fmt.Sprintf("want %d argument(s), got %d", want, len(rest)),
		}
	}

	inv := Invocation{Spec: spec}
	for _, raw := range rest {
		v, err := codec.ParseInt32(raw)
		if err != nil {
			return Invocation{}, &device.Error{Code: device.BadArity, Op: op, Msg: fmt.Sprintf("invalid integer %q", raw), Err: err}
		}
		inv.Args = append(inv.Args, v)
	}

	return inv, nil
}

// Execute opens the device, runs inv, and closes the device on every path.
func Execute(inv Invocation, open Opener) (err error) {
	dev, err := open()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := dev.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if inv.Spec.Transport == protocol.TransportWrite {
		if len(inv.Args) != 1 {
			return &device.Error{Code: device.MissingArgument, Op: inv.Spec.Command.String()}
		}
		return dev.WriteValue(inv.Args[0])
	}

	return dev.Control(inv.Spec.Command, inv.Args...)
}

// Run is Parse followed by Execute.
func Run(p *protocol.Profile, args []string, open Opener) error {
	inv, err := Parse(p, args)
	if err != nil {
		return err
	}
	return Execute(inv, open)
}

// SessionOpener adapts device.Open to an Opener.
func SessionOpener(p *protocol.Profile, opts ...device.Option) Opener {
	return func() (Device, error) {
		s, err := device.Open(p, opts...)
		if err != nil {
			// keep the interface nil on failure
			return nil, err
		}
		return s, nil
	}
}

