// Package alu implements the arithmetic primitives of the SM83. Every
// function is pure: it returns the numeric result together with the
// complete set of flags produced by the operation.
package alu

import "github.com/thelolagemann/sm83/internal/types"

// width describes an operand width and the masks used to derive
// the carry and half-carry flags.
type width struct {
	mask uint32 // 0xFF or 0xFFFF
	half uint32 // 0x0F or 0xFF
}

var (
	width8  = width{mask: 0xFF, half: 0x0F}
	width16 = width{mask: 0xFFFF, half: 0xFF}
)

func (w width) add(a, b uint32) (uint32, types.Flags) {
	sum := a + b
	return sum & w.mask, types.NewFlags(
		sum&w.mask == 0,
		false,
		(a&w.half)+(b&w.half) > w.half,
		sum > w.mask,
	)
}

func (w width) sub(a, b, carry uint32) (uint32, types.Flags) {
	temp := (a - b) & w.mask
	diff := (temp - carry) & w.mask
	return diff, types.NewFlags(
		diff == 0,
		true,
		(a&w.half) < (b&w.half)+carry,
		a < b || temp < carry,
	)
}

// Add8 adds two bytes together.
//
//	ADD A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func Add8(a, b uint8) (uint8, types.Flags) {
	sum, flags := width8.add(uint32(a), uint32(b))
	return uint8(sum), flags
}

// Add16 adds two 16-bit values together.
//
//	ADD HL, rr
//	ADD SP, r8
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 7.
//	C - Set if carry from bit 15.
func Add16(a, b uint16) (uint16, types.Flags) {
	sum, flags := width16.add(uint32(a), uint32(b))
	return uint16(sum), flags
}

// Sub8 subtracts b from a.
//
//	SUB n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func Sub8(a, b uint8) (uint8, types.Flags) {
	return SubCarry8(a, b, 0)
}

// Sub16 is the 16-bit form of Sub8, with the half-borrow taken
// from bit 8.
func Sub16(a, b uint16) (uint16, types.Flags) {
	return SubCarry16(a, b, 0)
}

// SubCarry8 subtracts b and the incoming carry from a, in two
// wrapping steps. The half-borrow is a single test of the low nibble
// of a against the low nibble of b plus the carry.
//
//	SBC A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if either step borrowed.
func SubCarry8(a, b, carry uint8) (uint8, types.Flags) {
	diff, flags := width8.sub(uint32(a), uint32(b), uint32(carry))
	return uint8(diff), flags
}

// SubCarry16 is the 16-bit form of SubCarry8.
func SubCarry16(a, b, carry uint16) (uint16, types.Flags) {
	diff, flags := width16.sub(uint32(a), uint32(b), uint32(carry))
	return uint16(diff), flags
}

// Compare8 compares b to a. It is a Sub8 with the result thrown away.
//
//	CP n
//	n = d8, B, C, D, E, H, L, (HL), A
func Compare8(a, b uint8) types.Flags {
	_, flags := Sub8(a, b)
	return flags
}

// Compare16 is the 16-bit form of Compare8.
func Compare16(a, b uint16) types.Flags {
	_, flags := Sub16(a, b)
	return flags
}
