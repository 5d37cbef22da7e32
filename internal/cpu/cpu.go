// Package cpu implements the SM83 fetch-decode-execute loop and the
// semantics of every supported instruction family.
package cpu

import (
	"fmt"

	"github.com/thelolagemann/sm83/internal/instructions"
	"github.com/thelolagemann/sm83/internal/memory"
	"github.com/thelolagemann/sm83/internal/types"
	"github.com/thelolagemann/sm83/pkg/log"
)

// Observer is notified after every instruction the CPU executes.
type Observer interface {
	Executed(pc uint16, opcode uint8, instr instructions.Instruction, cycles uint8)
}

// CPU represents the SM83 CPU. It owns the register file and fetches its
// instructions from a ReadOnlyMemory.
type CPU struct {
	r       types.Registers
	mem     memory.ReadOnlyMemory
	decoder instructions.Decoder

	// Debug enables logging of every executed instruction.
	Debug bool

	log      log.Logger
	observer Observer

	// cycles is the total number of cycles executed
	cycles uint64
}

var _ instructions.Handler = (*CPU)(nil)

// New creates a new CPU reading its program from mem. All registers
// start at zero and instructions are decoded with instructions.DefaultTable
// unless overridden by an Opt.
func New(mem memory.ReadOnlyMemory, opts ...Opt) *CPU {
	c := &CPU{
		mem:     mem,
		decoder: instructions.DefaultTable,
		log:     log.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Registers returns a copy of the register file.
func (c *CPU) Registers() types.Registers {
	return c.r
}

// SetRegisters replaces the register file.
func (c *CPU) SetRegisters(r types.Registers) {
	c.r = r
	c.r.F &= 0xF0
}

// Cycles returns the total number of cycles executed so far.
func (c *CPU) Cycles() uint64 {
	return c.cycles
}

// Tick fetches, decodes and executes a single instruction, returning the
// number of cycles it took. A failed Tick may leave the program counter
// advanced past the bytes it had already fetched.
func (c *CPU) Tick() (uint8, error) {
	pc := c.r.PC
	opcode, err := c.readOperand()
	if err != nil {
		return 0, &instructions.FailedError{Reason: fmt.Sprintf("fetching opcode at 0x%04X", pc), Err: err}
	}

	instr, err := c.decoder.Decode(opcode)
	if err != nil {
		return 0, err
	}

	cycles, err := instr.Execute(c)
	if err != nil {
		return 0, err
	}
	c.cycles += uint64(cycles)

	if c.Debug {
		c.log.Debugf("%04X: %-12s (%2d cycles) A: %02X F: %s BC: %04X DE: %04X HL: %04X SP: %04X",
			pc, instr, cycles, c.r.A, c.r.Flags(), c.r.BC(), c.r.DE(), c.r.HL(), c.r.SP)
	}
	if c.observer != nil {
		c.observer.Executed(pc, opcode, instr, cycles)
	}

	return cycles, nil
}

// Step runs up to n instructions, stopping at the first error. It returns
// the number of instructions executed and the cycles they took.
func (c *CPU) Step(n int) (int, uint64, error) {
	var total uint64
	for i := 0; i < n; i++ {
		cycles, err := c.Tick()
		if err != nil {
			return i, total, err
		}
		total += uint64(cycles)
	}
	return n, total, nil
}

// readOperand reads the byte at the program counter and
// advances it.
func (c *CPU) readOperand() (uint8, error) {
	value, err := c.mem.Read(c.r.PC)
	if err != nil {
		return 0, err
	}
	c.r.PC++
	return value, nil
}

// StateSize is the number of bytes written by Save.
const StateSize = 8 + 2 + 2 + 8

var _ types.Stater = (*CPU)(nil)

// Load restores the registers and cycle counter written by Save. It
// returns an error wrapping types.ErrShortState, and leaves the CPU
// untouched, if s holds fewer than StateSize bytes.
func (c *CPU) Load(s *types.State) error {
	if s.Remaining() < StateSize {
		return fmt.Errorf("cpu: %w: need %d bytes, got %d", types.ErrShortState, StateSize, s.Remaining())
	}
	c.r.A = s.Read8()
	c.r.F = s.Read8() & 0xF0
	c.r.B = s.Read8()
	c.r.C = s.Read8()
	c.r.D = s.Read8()
	c.r.E = s.Read8()
	c.r.H = s.Read8()
	c.r.L = s.Read8()
	c.r.SP = s.Read16()
	c.r.PC = s.Read16()
	c.cycles = s.Read64()
	return nil
}

// Save writes the registers and cycle counter to s.
func (c *CPU) Save(s *types.State) {
	s.Write8(c.r.A)
	s.Write8(c.r.F)
	s.Write8(c.r.B)
	s.Write8(c.r.C)
	s.Write8(c.r.D)
	s.Write8(c.r.E)
	s.Write8(c.r.H)
	s.Write8(c.r.L)
	s.Write16(c.r.SP)
	s.Write16(c.r.PC)
	s.Write64(c.cycles)
}
