// internal/device/session.go
package device

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/tamzrod/dacctl/internal/codec"
	"github.com/tamzrod/dacctl/internal/ioc"
	"github.com/tamzrod/dacctl/internal/protocol"
)

// Controller issues one device-control call on an open descriptor.
// payload is nil for NoTransfer requests.
type Controller interface {
	Control(fd uintptr, req ioc.Request, payload []byte) error
}

type state int

const (
	stateUnopened state = iota
	stateOpen
	stateClosed
)

func (s state) String() string {
	switch s {
	case stateOpen:
		return "open"
	case stateClosed:
		return "closed"
	default:
		return "unopened"
	}
}

// Session exclusively owns one open handle to the device special file.
// It is single-use: one command, then Close. Not safe for concurrent use.
type Session struct {
	profile *protocol.Profile
	path    string
	file    *os.File
	state   state
	ctl     Controller
	log     zerolog.Logger
}

type Option func(*Session)

// WithPath overrides the profile's device path.
func WithPath(path string) Option {
	return func(s *Session) {
		if path != "" {
			s.path = path
		}
	}
}

// WithController replaces the ioctl(2) boundary.
func WithController(c Controller) Option {
	return func(s *Session) {
		if c != nil {
			s.ctl = c
		}
	}
}

func WithLogger(l zerolog.Logger) Option {
	return func(s *Session) { s.log = l }
}

// Open opens the device for read+write.
func Open(p *protocol.Profile, opts ...Option) (*Session, error) {
	if p == nil {
		return nil, errors.New("device: profile required")
	}

	s := &Session{
		profile: p,
		path:    p.Path,
		ctl:     sysController{},
		log:     log.Logger,
	}
	for _, opt := range opts {
		opt(s)
	}

	f, err := os.OpenFile(s.path, os.O_RDWR, 0)
	if err != nil {
		return nil, openError(s.path, err)
	}

	s.file = f
	s.state = stateOpen
	s.log.Debug().Str("path", s.path).Str("profile", p.Name).Msg("device open")

	return s, nil
}

// Path is the device path this session was opened on.
func (s *Session) Path() string { return s.path }

// Control issues the device-control request for cmd.
// WriteToDevice commands require exactly one argument; NoTransfer commands ignore arguments.
func (s *Session) Control(cmd protocol.Command, arg ...int32) error {
	op := "control " + cmd.String()

	if err := s.checkOpen(op); err != nil {
		return err
	}

	spec, ok := s.profile.Spec(cmd)
	if !ok {
		return &Error{Code: UnknownCommand, Op: op, Msg: fmt.Sprintf("not supported by profile %s", s.profile.Name)}
	}
	if spec.Transport != protocol.TransportIoctl {
		return &Error{Code: UnknownCommand, Op: op, Msg: "not a device-control command"}
	}

	var payload []byte
	if spec.Direction == ioc.WriteToDevice {
		switch len(arg) {
		case 0:
			return &Error{Code: MissingArgument, Op: op}
		case 1:
			payload = codec.PutInt32(arg[0])
		default:
			return &Error{Code: BadArity, Op: op, Msg: fmt.Sprintf("want 1 argument, got %d", len(arg))}
		}
	}

	ev := s.log.Debug().Str("path", s.path).Stringer("request", spec.Request)
	if payload != nil {
		ev = ev.Hex("payload", payload)
	}
	ev.Msg("device control")

	if err := s.ctl.Control(s.file.Fd(), spec.Request, payload); err != nil {
		return &Error{Code: ControlFailed, Op: op, Path: s.path, Errno: errnoOf(err), Err: err}
	}

	return nil
}

// WriteValue writes v as decimal text through the driver's write interface.
func (s *Session) WriteValue(v int32) error {
	const op = "write SET"

	if err := s.checkOpen(op); err != nil {
		return err
	}

	buf := codec.Decimal(v)
	s.log.Debug().Str("path", s.path).Bytes("text", buf).Msg("device write")

	if _, err := s.file.Write(buf); err != nil {
		return &Error{Code: WriteFailed, Op: op, Path: s.path, Errno: errnoOf(err), Err: err}
	}

	return nil
}

// Close releases the handle. Idempotent.
func (s *Session) Close() error {
	if s == nil || s.state == stateClosed {
		return nil
	}

	prev := s.state
	s.state = stateClosed
	if prev != stateOpen || s.file == nil {
		return nil
	}

	err := s.file.Close()
	s.file = nil
	s.log.Debug().Str("path", s.path).Msg("device close")

	if err != nil {
		return fmt.Errorf("device: close %s: %w", s.path, err)
	}
	return nil
}

func (s *Session) checkOpen(op string) error {
	if s == nil {
		return &Error{Code: InvalidState, Op: op, Msg: "nil session"}
	}
	if s.state != stateOpen {
		return &Error{Code: InvalidState, Op: op, Path: s.path, Msg: "session is " + s.state.String()}
	}
	return nil
}
