package cpu

import (
	"github.com/thelolagemann/sm83/internal/alu"
	"github.com/thelolagemann/sm83/internal/instructions"
	"github.com/thelolagemann/sm83/internal/types"
)

// Add8 adds the operand to the A Register.
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
func (c *CPU) Add8(i instructions.Add8) (uint8, error) {
	n, err := c.operand8(i.Operand, i)
	if err != nil {
		return 0, err
	}

	var flags types.Flags
	c.r.A, flags = alu.Add8(c.r.A, n)
	c.setFlags(flags)
	return i.Cycles, nil
}

// Add16 adds the given RegisterPair to the HL RegisterPair.
//
//	ADD HL, rr
//	rr = BC, DE, HL, SP
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 7.
//	C - Set if carry from bit 15.
func (c *CPU) Add16(i instructions.Add16) (uint8, error) {
	var n uint16
	r, ok := i.Operand.Register16()
	if ok {
		n, ok = c.register16(r)
	}
	if !ok {
		return 0, &instructions.InvalidOperandError{Operand: i.Operand, Instruction: i.String()}
	}

	hl, flags := alu.Add16(c.r.HL(), n)
	c.r.SetHL(hl)
	c.setFlags(flags)
	return i.Cycles, nil
}

// AddSP16 adds a signed immediate byte to the stack pointer.
//
//	ADD SP, r8
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 7.
//	C - Set if carry from bit 15.
func (c *CPU) AddSP16(i instructions.AddSP16) (uint8, error) {
	if i.Operand != instructions.ImmSigned8 {
		return 0, &instructions.InvalidOperandError{Operand: i.Operand, Instruction: i.String()}
	}

	n, err := c.readImmediate(i)
	if err != nil {
		return 0, err
	}

	var flags types.Flags
	c.r.SP, flags = alu.Add16(c.r.SP, uint16(int8(n)))
	c.setFlags(flags)
	return i.Cycles, nil
}

// Adc8 adds the operand and the carry flag to the A Register. The carry
// is added first, then the operand; a half carry or carry from either
// step is reported.
//
//	ADC A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) Adc8(i instructions.Adc8) (uint8, error) {
	n, err := c.operand8(i.Operand, i)
	if err != nil {
		return 0, err
	}

	a, carryFlags := alu.Add8(c.r.A, c.r.Flags().Carry())
	a, flags := alu.Add8(a, n)
	c.r.A = a
	c.setFlags(flags | carryFlags&(types.H|types.C))
	return i.Cycles, nil
}

// Sub8 subtracts the operand from the A Register.
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
func (c *CPU) Sub8(i instructions.Sub8) (uint8, error) {
	n, err := c.operand8(i.Operand, i)
	if err != nil {
		return 0, err
	}

	var flags types.Flags
	c.r.A, flags = alu.Sub8(c.r.A, n)
	c.setFlags(flags)
	return i.Cycles, nil
}

// Sbc8 subtracts the operand and the carry flag from the A Register.
//
//	SBC A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) Sbc8(i instructions.Sbc8) (uint8, error) {
	n, err := c.operand8(i.Operand, i)
	if err != nil {
		return 0, err
	}

	var flags types.Flags
	c.r.A, flags = alu.SubCarry8(c.r.A, n, c.r.Flags().Carry())
	c.setFlags(flags)
	return i.Cycles, nil
}

// Cp8 compares the operand to the A Register, leaving A untouched.
//
//	CP n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) Cp8(i instructions.Cp8) (uint8, error) {
	n, err := c.operand8(i.Operand, i)
	if err != nil {
		return 0, err
	}

	c.setFlags(alu.Compare8(c.r.A, n))
	return i.Cycles, nil
}
