// Package memory provides the byte-addressable program store read by
// the CPU.
package memory

import (
	"fmt"

	"github.com/cespare/xxhash"
)

// ReadOnlyMemory is a block of memory that can only be read. Read
// returns an *OutOfRangeError if the address is beyond the end
// of the memory.
type ReadOnlyMemory interface {
	Read(address uint16) (uint8, error)
}

// OutOfRangeError is returned when reading past the end of a memory block.
type OutOfRangeError struct {
	Address uint16
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("address 0x%04X is out of range", e.Address)
}

// ROM is a ReadOnlyMemory backed by a byte slice. Address 0 is the first
// byte of the slice.
type ROM struct {
	data []byte
}

// NewROM returns a ROM holding the given data.
func NewROM(data []byte) *ROM {
	return &ROM{data: data}
}

// Read returns the byte at the given address.
func (r *ROM) Read(address uint16) (uint8, error) {
	if int(address) >= len(r.data) {
		return 0, &OutOfRangeError{Address: address}
	}
	return r.data[address], nil
}

// Len returns the size of the ROM in bytes.
func (r *ROM) Len() int {
	return len(r.data)
}

// Checksum returns the 64-bit xxHash of the ROM contents, used to
// identify a program image.
func (r *ROM) Checksum() uint64 {
	return xxhash.Sum64(r.data)
}
