package state

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/sugawarayuuta/sonnet"
)

// snapshot wire format: magic, format version, payload length, then the
// JSON payload.
var snapshotMagic = []byte("HOSTGO")

const snapshotVersion uint32 = 1

// ParameterState is one parameter's persisted value and MIDI binding.
type ParameterState struct {
	Index       int32   `json:"index"`
	Name        string  `json:"name,omitempty"`
	Symbol      string  `json:"symbol,omitempty"`
	Value       float32 `json:"value"`
	MidiChannel uint8   `json:"midiChannel,omitempty"`
	MidiCC      int16   `json:"midiCC,omitempty"`
}

// Snapshot is the serializable image of a plugin instance, produced and
// re-applied under the master lock so the tables it reads are always
// internally consistent.
type Snapshot struct {
	Name     string `json:"name"`
	Label    string `json:"label,omitempty"`
	Binary   string `json:"binary,omitempty"`
	UniqueID int64  `json:"uniqueId,omitempty"`

	Active       bool    `json:"active"`
	DryWet       float32 `json:"dryWet"`
	Volume       float32 `json:"volume"`
	BalanceLeft  float32 `json:"balanceLeft"`
	BalanceRight float32 `json:"balanceRight"`
	Panning      float32 `json:"panning"`
	CtrlChannel  int8    `json:"ctrlChannel"`

	CurrentProgramIndex int32  `json:"currentProgramIndex"`
	CurrentProgramName  string `json:"currentProgramName,omitempty"`
	CurrentMidiBank     int32  `json:"currentMidiBank"`
	CurrentMidiProgram  int32  `json:"currentMidiProgram"`

	Parameters []ParameterState `json:"parameters,omitempty"`
	CustomData []CustomData     `json:"customData,omitempty"`
	Chunk      []byte           `json:"chunk,omitempty"`
}

// NewSnapshot returns a snapshot with the no-selection defaults.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		DryWet:              1.0,
		Volume:              1.0,
		BalanceLeft:         -1.0,
		BalanceRight:        1.0,
		CurrentProgramIndex: -1,
		CurrentMidiBank:     -1,
		CurrentMidiProgram:  -1,
	}
}

// Write serializes the snapshot.
func (s *Snapshot) Write(w io.Writer) error {
	payload, err := sonnet.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if _, err := w.Write(snapshotMagic); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, snapshotVersion); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(payload))); err != nil {
		return err
	}
	_, err = w.Write(payload)
	return err
}

// ReadSnapshot deserializes a snapshot written by Write.
func ReadSnapshot(r io.Reader) (*Snapshot, error) {
	magic := make([]byte, len(snapshotMagic))
	if _, err := io.ReadFull(r, magic); err != nil {
		return nil, err
	}
	if string(magic) != string(snapshotMagic) {
		return nil, fmt.Errorf("invalid snapshot format")
	}

	var version uint32
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return nil, err
	}
	if version > snapshotVersion {
		return nil, fmt.Errorf("snapshot version %d is newer than supported version %d", version, snapshotVersion)
	}

	var size uint32
	if err := binary.Read(r, binary.LittleEndian, &size); err != nil {
		return nil, err
	}
	payload := make([]byte, size)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, err
	}

	s := NewSnapshot()
	if err := sonnet.Unmarshal(payload, s); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return s, nil
}
