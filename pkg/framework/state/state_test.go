package state

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRoundTrip(t *testing.T) {
	s := NewSnapshot()
	s.Name = "Test Synth"
	s.Label = "testsynth"
	s.Active = true
	s.CtrlChannel = 2
	s.CurrentProgramIndex = 1
	s.CurrentProgramName = "Bright"
	s.Parameters = []ParameterState{
		{Index: 0, Name: "Cutoff", Value: 0.75, MidiCC: 74},
		{Index: 1, Name: "Resonance", Value: 0.2},
	}
	s.CustomData = []CustomData{
		{Type: "http://example.org/chunk", Key: "patch", Value: "AAAA"},
	}

	var buf bytes.Buffer
	require.NoError(t, s.Write(&buf))

	got, err := ReadSnapshot(&buf)
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestSnapshotDefaults(t *testing.T) {
	s := NewSnapshot()
	assert.EqualValues(t, -1, s.CurrentProgramIndex)
	assert.EqualValues(t, -1, s.CurrentMidiBank)
	assert.EqualValues(t, -1, s.CurrentMidiProgram)
	assert.EqualValues(t, 1.0, s.DryWet)
	assert.EqualValues(t, 1.0, s.Volume)
}

func TestReadSnapshotBadMagic(t *testing.T) {
	_, err := ReadSnapshot(bytes.NewBufferString("NOTAST\x00\x00\x00\x00"))
	require.Error(t, err)
}

func TestCustomDataList(t *testing.T) {
	var l CustomDataList

	l.Set(CustomData{Type: "t", Key: "a", Value: "1"})
	l.Set(CustomData{Type: "t", Key: "b", Value: "2"})
	l.Set(CustomData{Type: "t", Key: "a", Value: "3"}) // replace, keep position

	require.Equal(t, 2, l.Len())
	got, ok := l.Get("t", "a")
	require.True(t, ok)
	assert.Equal(t, "3", got.Value)

	all := l.All()
	assert.Equal(t, "a", all[0].Key)
	assert.Equal(t, "b", all[1].Key)

	_, ok = l.Get("t", "missing")
	assert.False(t, ok)

	l.Clear()
	assert.Equal(t, 0, l.Len())
}

func TestStoreSettings(t *testing.T) {
	store, err := OpenStore(":memory:")
	require.NoError(t, err)
	defer store.Close()

	const (
		optFixedBuffers uint32 = 1 << 0
		optForceStereo  uint32 = 1 << 1
		optSendNotes    uint32 = 1 << 2
	)

	require.NoError(t, store.SaveSetting("org.example.synth", optFixedBuffers, true))
	require.NoError(t, store.SaveSetting("org.example.synth", optForceStereo, false))
	require.NoError(t, store.SaveSetting("org.example.synth", optSendNotes, true))
	require.NoError(t, store.SaveSetting("org.example.other", optForceStereo, true))

	on, ok, err := store.LoadSetting("org.example.synth", optFixedBuffers)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, on)

	on, ok, err = store.LoadSetting("org.example.synth", optForceStereo)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.False(t, on)

	_, ok, err = store.LoadSetting("org.example.synth", 1<<7)
	require.NoError(t, err)
	assert.False(t, ok, "never-saved option must report ok=false")

	opts, err := store.LoadOptions("org.example.synth")
	require.NoError(t, err)
	assert.Equal(t, optFixedBuffers|optSendNotes, opts)

	// Overwrite flips the stored bit.
	require.NoError(t, store.SaveSetting("org.example.synth", optSendNotes, false))
	opts, err = store.LoadOptions("org.example.synth")
	require.NoError(t, err)
	assert.Equal(t, optFixedBuffers, opts)
}
