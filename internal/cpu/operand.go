package cpu

import (
	"fmt"

	"github.com/thelolagemann/sm83/internal/instructions"
)

// register8 returns the value of the given 8-bit register, and false
// if r does not name one.
func (c *CPU) register8(r instructions.Register8) (uint8, bool) {
	switch r {
	case instructions.A:
		return c.r.A, true
	case instructions.B:
		return c.r.B, true
	case instructions.C:
		return c.r.C, true
	case instructions.D:
		return c.r.D, true
	case instructions.E:
		return c.r.E, true
	case instructions.H:
		return c.r.H, true
	case instructions.L:
		return c.r.L, true
	}
	return 0, false
}

// register16 returns the value of the given 16-bit register, and false
// if r does not name one.
func (c *CPU) register16(r instructions.Register16) (uint16, bool) {
	switch r {
	case instructions.BC:
		return c.r.BC(), true
	case instructions.DE:
		return c.r.DE(), true
	case instructions.HL:
		return c.r.HL(), true
	case instructions.SP:
		return c.r.SP, true
	}
	return 0, false
}

// readImmediate reads the byte following the opcode of instr, advancing
// the program counter.
func (c *CPU) readImmediate(instr instructions.Instruction) (uint8, error) {
	pc := c.r.PC
	v, err := c.readOperand()
	if err != nil {
		return 0, &instructions.FailedError{
			Reason: fmt.Sprintf("reading operand of %s at 0x%04X", instr, pc),
			Err:    err,
		}
	}
	return v, nil
}

// operand8 resolves the 8-bit value of an operand of an accumulator
// instruction: a register, or an immediate byte.
func (c *CPU) operand8(op instructions.Operand, instr instructions.Instruction) (uint8, error) {
	switch op.Kind() {
	case instructions.KindRegister8:
		r, _ := op.Register8()
		if v, ok := c.register8(r); ok {
			return v, nil
		}
	case instructions.KindImm8:
		return c.readImmediate(instr)
	case instructions.KindMemory:
		// TODO read through HL once the CPU has access to the memory bus
		return 0, &instructions.InvalidOperandError{Operand: op, Instruction: instr.String(), Reason: "not implemented yet"}
	}
	return 0, &instructions.InvalidOperandError{Operand: op, Instruction: instr.String()}
}
