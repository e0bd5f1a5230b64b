// internal/led/led_test.go
package led

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSysfs lays out <root>/led<i>/<attr> with an initial value.
func fakeSysfs(t *testing.T, index int, attr, initial string) string {
	t.Helper()
	root := t.TempDir()
	dir := filepath.Join(root, "led"+strconv.Itoa(index))
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, attr), []byte(initial), 0o644))
	return root
}

func TestLED_Path(t *testing.T) {
	assert.Equal(t, "/sys/devices/platform/led2/value", New("", 2, "").Path())
	assert.Equal(t, "/x/led0/my_gpio_value", New("/x", 0, "my_gpio_value").Path())
}

func TestLED_OnOffValue(t *testing.T) {
	root := fakeSysfs(t, 1, "value", "0\n")
	l := New(root, 1, "")

	v, err := l.Value()
	require.NoError(t, err)
	assert.Equal(t, 0, v)

	require.NoError(t, l.On())
	v, err = l.Value()
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	require.NoError(t, l.Off())
	raw, err := os.ReadFile(l.Path())
	require.NoError(t, err)
	assert.Equal(t, "0", string(raw))
}

func TestLED_Toggle(t *testing.T) {
	root := fakeSysfs(t, 3, "my_gpio_value", "1")
	l := New(root, 3, "my_gpio_value")

	v, err := l.Toggle()
	require.NoError(t, err)
	assert.Equal(t, 0, v)

	v, err = l.Toggle()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestLED_MissingAttribute(t *testing.T) {
	l := New(t.TempDir(), 0, "")

	_, err := l.Value()
	assert.Error(t, err)
	assert.Error(t, l.On(), "attribute file is never created")

	_, err = os.Stat(l.Path())
	assert.True(t, os.IsNotExist(err))
}

func TestLED_Garbage(t *testing.T) {
	root := fakeSysfs(t, 0, "value", "on")
	_, err := New(root, 0, "").Value()
	assert.Error(t, err)
}
