package types

import (
	"strings"

	"github.com/thelolagemann/sm83/pkg/bits"
)

// Flag is the bit index of a flag within the F register.
type Flag = uint8

const (
	FlagZero      Flag = 7
	FlagSubtract  Flag = 6
	FlagHalfCarry Flag = 5
	FlagCarry     Flag = 4
)

// Flags is the set of status flags, laid out as they are
// stored in the upper nibble of the F register.
type Flags uint8

const (
	Z Flags = 1 << FlagZero
	N Flags = 1 << FlagSubtract
	H Flags = 1 << FlagHalfCarry
	C Flags = 1 << FlagCarry
)

// NewFlags creates a Flags set from the individual flag states.
func NewFlags(zero, subtract, halfCarry, carry bool) Flags {
	var f uint8
	f = bits.Assign(f, FlagZero, zero)
	f = bits.Assign(f, FlagSubtract, subtract)
	f = bits.Assign(f, FlagHalfCarry, halfCarry)
	f = bits.Assign(f, FlagCarry, carry)
	return Flags(f)
}

// Has returns true if the given flag is set.
func (f Flags) Has(flag Flag) bool {
	return bits.Test(uint8(f), flag)
}

// Carry returns the carry flag as 0 or 1, for use as an
// incoming carry.
func (f Flags) Carry() uint8 {
	return bits.Val(uint8(f), FlagCarry)
}

// String returns the flags as "ZNHC", with unset flags replaced by "-".
func (f Flags) String() string {
	var b strings.Builder
	for i, name := range "ZNHC" {
		if f.Has(FlagZero - Flag(i)) {
			b.WriteRune(name)
		} else {
			b.WriteByte('-')
		}
	}
	return b.String()
}
