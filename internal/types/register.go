package types

import "github.com/thelolagemann/sm83/pkg/bits"

// Register represents a GB Register which is used to hold an 8-bit value.
// The CPU has 8 registers: A, B, C, D, E, H, L, and F. The F register is
// special in that it is used to hold the flags.
type Register = uint8

// RegisterPair represents a pair of GB Registers which is used to hold a 16-bit
// value. A RegisterPair never holds a value of its own, it only composes the
// two registers it points to.
type RegisterPair struct {
	High *Register
	Low  *Register
}

// Uint16 returns the value of the RegisterPair as an uint16.
func (r RegisterPair) Uint16() uint16 {
	return bits.Join(*r.High, *r.Low)
}

// SetUint16 sets the value of the RegisterPair to the given value.
func (r RegisterPair) SetUint16(value uint16) {
	*r.High, *r.Low = bits.Split(value)
}

// Registers represents the SM83 register file. The zero value is the
// power-on state used by the CPU.
type Registers struct {
	A Register
	B Register
	C Register
	D Register
	E Register
	F Register
	H Register
	L Register

	// SP is the stack pointer.
	SP uint16
	// PC is the program counter, it points to the next byte to be fetched.
	PC uint16
}

func pair(high, low *Register) RegisterPair {
	return RegisterPair{High: high, Low: low}
}

// AF returns the AF register pair.
func (r Registers) AF() uint16 { return pair(&r.A, &r.F).Uint16() }

// BC returns the BC register pair.
func (r Registers) BC() uint16 { return pair(&r.B, &r.C).Uint16() }

// DE returns the DE register pair.
func (r Registers) DE() uint16 { return pair(&r.D, &r.E).Uint16() }

// HL returns the HL register pair.
func (r Registers) HL() uint16 { return pair(&r.H, &r.L).Uint16() }

// SetAF sets the AF register pair. The lower nibble of F is always zero.
func (r *Registers) SetAF(v uint16) {
	pair(&r.A, &r.F).SetUint16(v)
	r.F &= 0xF0
}

// SetBC sets the BC register pair.
func (r *Registers) SetBC(v uint16) { pair(&r.B, &r.C).SetUint16(v) }

// SetDE sets the DE register pair.
func (r *Registers) SetDE(v uint16) { pair(&r.D, &r.E).SetUint16(v) }

// SetHL sets the HL register pair.
func (r *Registers) SetHL(v uint16) { pair(&r.H, &r.L).SetUint16(v) }

// Flags returns the flags held in the F register.
func (r Registers) Flags() Flags {
	return Flags(r.F & 0xF0)
}

// SetFlags replaces the contents of the F register with the given flags.
func (r *Registers) SetFlags(f Flags) {
	r.F = uint8(f) & 0xF0
}
