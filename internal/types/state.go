package types

import (
	"errors"
	"os"
)

// ErrShortState is returned when a state holds fewer bytes than
// the object loading it needs.
var ErrShortState = errors.New("state too short")

// State holds serialized emulator state. This is used to
// save and load states between runs.
type State struct {
	raw          []byte // raw state data (for serialization)
	readPosition int    // current read position
}

// Stater is an interface that allows an object to be saved
// and loaded from a state.
type Stater interface {
	Load(*State) error // Load the state of the object
	Save(*State)       // Save the state of the object
}

// NewState creates a new state.
func NewState() *State {
	return &State{
		raw: make([]byte, 0),
	}
}

// StateFromBytes creates a new state from the given bytes.
func StateFromBytes(raw []byte) *State {
	return &State{
		raw: raw,
	}
}

// StateFromFile reads a state previously written with SaveToFile.
func StateFromFile(filename string) (*State, error) {
	raw, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return StateFromBytes(raw), nil
}

// Remaining returns the number of bytes left to read.
func (s *State) Remaining() int {
	return len(s.raw) - s.readPosition
}

func (s *State) Write8(value uint8) {
	s.raw = append(s.raw, value)
}

func (s *State) Write16(value uint16) {
	s.raw = append(s.raw, byte(value), byte(value>>8))
}

func (s *State) Write64(value uint64) {
	for i := 0; i < 8; i++ {
		s.raw = append(s.raw, byte(value>>(8*i)))
	}
}

func (s *State) Read8() uint8 {
	value := s.raw[s.readPosition]
	s.readPosition++
	return value
}

func (s *State) Read16() uint16 {
	value := uint16(s.raw[s.readPosition]) | uint16(s.raw[s.readPosition+1])<<8
	s.readPosition += 2
	return value
}

func (s *State) Read64() uint64 {
	var value uint64
	for i := 0; i < 8; i++ {
		value |= uint64(s.raw[s.readPosition+i]) << (8 * i)
	}
	s.readPosition += 8
	return value
}

func (s *State) SaveToFile(filename string) error {
	return os.WriteFile(filename, s.raw, 0644)
}

func (s *State) Bytes() []byte {
	return s.raw
}
