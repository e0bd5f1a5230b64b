// internal/led/led.go
package led

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// DefaultRoot is where the platform driver exposes one directory per LED.
const DefaultRoot = "/sys/devices/platform"

// DefaultAttribute is the sysfs attribute holding the LED state.
const DefaultAttribute = "value"

// LED is one sysfs-backed LED. Every call opens and closes the attribute file.
type LED struct {
	Index int
	path  string
}

// New targets <root>/led<index>/<attr>. Empty root/attr select the defaults.
func New(root string, index int, attr string) *LED {
	if root == "" {
		root = DefaultRoot
	}
	if attr == "" {
		attr = DefaultAttribute
	}
	return &LED{
		Index: index,
		path:  filepath.Join(root, "led"+strconv.Itoa(index), attr),
	}
}

func (l *LED) Path() string { return l.path }

func (l *LED) On() error  { return l.set(1) }
func (l *LED) Off() error { return l.set(0) }

// Value reads the current state: 0 off, anything else on.
func (l *LED) Value() (int, error) {
	raw, err := os.ReadFile(l.path)
	if err != nil {
		return 0, fmt.Errorf("led %d: read: %w", l.Index, err)
	}
	v, err := strconv.Atoi(string(bytes.TrimSpace(raw)))
	if err != nil {
		return 0, fmt.Errorf("led %d: parse %q: %w", l.Index, raw, err)
	}
	return v, nil
}

// Toggle flips the LED and returns the new state.
func (l *LED) Toggle() (int, error) {
	v, err := l.Value()
	if err != nil {
		return 0, err
	}
	if v != 0 {
		return 0, l.Off()
	}
	return 1, l.On()
}

func (l *LED) set(v int) error {
	// sysfs attributes exist already; never create one.
	f, err := os.OpenFile(l.path, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return fmt.Errorf("led %d: open: %w", l.Index, err)
	}
	defer f.Close()

	if _, err := f.WriteString(strconv.Itoa(v)); err != nil {
		return fmt.Errorf("led %d: write: %w", l.Index, err)
	}
	return nil
}
