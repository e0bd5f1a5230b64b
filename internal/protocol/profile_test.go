// internal/protocol/profile_test.go
package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamzrod/dacctl/internal/ioc"
)

func profile(t *testing.T, name string) *Profile {
	t.Helper()
	cat, err := DefaultCatalog()
	require.NoError(t, err)
	p, err := cat.Profile(name)
	require.NoError(t, err)
	return p
}

func TestCatalog_DefaultIsSecondGeneration(t *testing.T) {
	cat, err := DefaultCatalog()
	require.NoError(t, err)

	p, err := cat.Profile("")
	require.NoError(t, err)
	assert.Equal(t, "dac_mcp4921", p.Name)
	assert.Equal(t, []string{"dac_mcp4921", "mcp4921"}, cat.Names())

	_, err = cat.Profile("missing")
	assert.Error(t, err)
}

func TestProfile_SecondGenerationWords(t *testing.T) {
	p := profile(t, "dac_mcp4921")

	want := map[Command]uint32{
		Reset:            0x00006b00,
		Enable:           0x00006b01,
		Disable:          0x00006b02,
		SetGain:          0x40046b03,
		SetReferenceMode: 0x40046b04,
	}
	for cmd, w := range want {
		req, ok := p.Request(cmd)
		require.True(t, ok, "cmd=%s", cmd)
		assert.Equal(t, w, uint32(req), "cmd=%s", cmd)
	}

	_, ok := p.Request(SetValue)
	assert.False(t, ok, "SET is not a device-control call")
}

func TestProfile_FirstGenerationWords(t *testing.T) {
	p := profile(t, "mcp4921")

	want := map[Command]uint32{
		Reset:            0x00006b00,
		Enable:           0x40046b01,
		SetGain:          0x40046b02,
		SetReferenceMode: 0x40046b03,
	}
	for cmd, w := range want {
		req, ok := p.Request(cmd)
		require.True(t, ok, "cmd=%s", cmd)
		assert.Equal(t, w, uint32(req), "cmd=%s", cmd)
	}

	_, ok := p.Spec(Disable)
	assert.False(t, ok)
}

func TestProfile_SizeFieldMatchesDirection(t *testing.T) {
	for _, name := range []string{"mcp4921", "dac_mcp4921"} {
		p := profile(t, name)
		for _, s := range p.Specs() {
			if s.Transport != TransportIoctl {
				continue
			}
			switch s.Direction {
			case ioc.NoTransfer:
				assert.Equal(t, uint16(0), s.Request.Size(), "%s %s", name, s.Command)
			case ioc.WriteToDevice:
				assert.Equal(t, uint16(4), s.Request.Size(), "%s %s", name, s.Command)
			}
			assert.Equal(t, byte('k'), s.Request.Magic())
			assert.Equal(t, s.Opcode, s.Request.Nr())
		}
	}
}

func TestProfile_LookupAliasesAnyCase(t *testing.T) {
	p := profile(t, "dac_mcp4921")

	for tok, want := range map[string]Command{
		"EN":        Enable,
		"dis":       Disable,
		"Reset":     Reset,
		"gain":      SetGain,
		"VREF_BUFF": SetReferenceMode,
		"set":       SetValue,
	} {
		s, ok := p.Lookup(tok)
		require.True(t, ok, "token=%s", tok)
		assert.Equal(t, want, s.Command)
	}

	_, ok := p.Lookup("FOO")
	assert.False(t, ok)
}

func TestSpec_Arity(t *testing.T) {
	gen1 := profile(t, "mcp4921")
	gen2 := profile(t, "dac_mcp4921")

	en1, _ := gen1.Spec(Enable)
	en2, _ := gen2.Spec(Enable)
	assert.Equal(t, 1, en1.Arity())
	assert.Equal(t, 0, en2.Arity())

	set, _ := gen2.Spec(SetValue)
	assert.Equal(t, 1, set.Arity())

	reset, _ := gen2.Spec(Reset)
	assert.Equal(t, 0, reset.Arity())
}

func TestCommand_String(t *testing.T) {
	assert.Equal(t, "GAIN", SetGain.String())
	assert.Equal(t, "UNKNOWN", Command(99).String())

	c, ok := ParseCommand("vref")
	require.True(t, ok)
	assert.Equal(t, SetReferenceMode, c)
}
