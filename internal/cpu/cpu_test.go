package cpu

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/thelolagemann/sm83/internal/instructions"
	"github.com/thelolagemann/sm83/internal/memory"
	"github.com/thelolagemann/sm83/internal/types"
	"github.com/thelolagemann/sm83/pkg/log"
)

// newTestCPU creates a CPU running the given program.
func newTestCPU(program []byte, opts ...Opt) *CPU {
	return New(memory.NewROM(program), opts...)
}

// tick runs a single instruction, failing the test on error.
func tick(t *testing.T, c *CPU) uint8 {
	t.Helper()
	cycles, err := c.Tick()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return cycles
}

func expectFlags(t *testing.T, c *CPU, expected types.Flags) {
	t.Helper()
	if f := c.Registers().Flags(); f != expected {
		t.Errorf("expected flags %s, got %s", expected, f)
	}
}

func TestCPU_Scenarios(t *testing.T) {
	t.Run("ADD A, d8", func(t *testing.T) {
		c := newTestCPU([]byte{0xC6, 0x03})
		if cycles := tick(t, c); cycles != 8 {
			t.Errorf("expected 8 cycles, got %d", cycles)
		}
		if c.Registers().A != 0x03 {
			t.Errorf("expected A to be 0x03, got 0x%02x", c.Registers().A)
		}
		expectFlags(t, c, 0)
		if c.Registers().PC != 2 {
			t.Errorf("expected PC to be 0x0002, got 0x%04x", c.Registers().PC)
		}
	})
	t.Run("ADD A, d8 rollover", func(t *testing.T) {
		c := newTestCPU([]byte{0xC6, 0xFF}, WithRegisters(types.Registers{A: 0x01}))
		if cycles := tick(t, c); cycles != 8 {
			t.Errorf("expected 8 cycles, got %d", cycles)
		}
		if c.Registers().A != 0x00 {
			t.Errorf("expected A to be 0x00, got 0x%02x", c.Registers().A)
		}
		expectFlags(t, c, types.Z|types.H|types.C)
	})
	t.Run("ADD HL, HL", func(t *testing.T) {
		r := types.Registers{}
		r.SetHL(0xFFFF)
		c := newTestCPU([]byte{0x29}, WithRegisters(r))
		if cycles := tick(t, c); cycles != 8 {
			t.Errorf("expected 8 cycles, got %d", cycles)
		}
		if hl := c.Registers().HL(); hl != 0xFFFE {
			t.Errorf("expected HL to be 0xFFFE, got 0x%04x", hl)
		}
		expectFlags(t, c, types.H|types.C)
	})
	t.Run("ADD SP, r8", func(t *testing.T) {
		c := newTestCPU([]byte{0xE8, 0x05})
		if cycles := tick(t, c); cycles != 16 {
			t.Errorf("expected 16 cycles, got %d", cycles)
		}
		if sp := c.Registers().SP; sp != 0x0005 {
			t.Errorf("expected SP to be 0x0005, got 0x%04x", sp)
		}
	})
	t.Run("ADD A, (HL)", func(t *testing.T) {
		c := newTestCPU([]byte{0x86})
		_, err := c.Tick()
		if !errors.Is(err, instructions.ErrInvalidOperand) {
			t.Errorf("expected invalid operand error, got %v", err)
		}
	})
	t.Run("invalid opcode", func(t *testing.T) {
		c := newTestCPU([]byte{0xFF})
		_, err := c.Tick()
		var opErr *instructions.InvalidOpcodeError
		if !errors.As(err, &opErr) || opErr.Opcode != 0xFF {
			t.Errorf("expected InvalidOpcode(0xFF), got %v", err)
		}
	})
}

func TestCPU_Tick(t *testing.T) {
	t.Run("all registers to accumulator", func(t *testing.T) {
		r := types.Registers{B: 0x01, C: 0x02, D: 0x03, E: 0x04, H: 0x05, L: 0x06}
		c := newTestCPU([]byte{0x80, 0x81, 0x82, 0x83, 0x84, 0x85, 0x87}, WithRegisters(r))

		executed, cycles, err := c.Step(7)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if executed != 7 || cycles != 7*4 {
			t.Errorf("expected 7 instructions in 28 cycles, got %d in %d", executed, cycles)
		}
		if c.Registers().A != (1+2+3+4+5+6)*2 {
			t.Errorf("expected A to be 0x%02x, got 0x%02x", (1+2+3+4+5+6)*2, c.Registers().A)
		}
		if c.Cycles() != 28 {
			t.Errorf("expected 28 total cycles, got %d", c.Cycles())
		}
	})
	t.Run("fetch past end of program", func(t *testing.T) {
		c := newTestCPU(nil)
		_, err := c.Tick()
		var rangeErr *memory.OutOfRangeError
		if !errors.Is(err, instructions.ErrFailed) || !errors.As(err, &rangeErr) {
			t.Fatalf("expected failed error wrapping OutOfRangeError, got %v", err)
		}
		if c.Registers().PC != 0 {
			t.Errorf("expected PC to stay at 0x0000, got 0x%04x", c.Registers().PC)
		}
	})
	t.Run("missing immediate", func(t *testing.T) {
		c := newTestCPU([]byte{0xC6})
		_, err := c.Tick()
		var rangeErr *memory.OutOfRangeError
		if !errors.As(err, &rangeErr) || rangeErr.Address != 0x0001 {
			t.Fatalf("expected OutOfRangeError at 0x0001, got %v", err)
		}
		// the opcode fetch is not rolled back
		if c.Registers().PC != 1 {
			t.Errorf("expected PC to be 0x0001, got 0x%04x", c.Registers().PC)
		}
	})
	t.Run("Step stops at first error", func(t *testing.T) {
		c := newTestCPU([]byte{0x80, 0x80, 0xFF, 0x80})
		executed, cycles, err := c.Step(4)
		if !errors.Is(err, instructions.ErrInvalidOpcode) {
			t.Errorf("expected invalid opcode error, got %v", err)
		}
		if executed != 2 || cycles != 8 {
			t.Errorf("expected 2 instructions in 8 cycles, got %d in %d", executed, cycles)
		}
	})
}

// recorder is an Observer collecting every executed instruction.
type recorder struct {
	pcs     []uint16
	opcodes []uint8
	names   []string
}

func (r *recorder) Executed(pc uint16, opcode uint8, instr instructions.Instruction, cycles uint8) {
	r.pcs = append(r.pcs, pc)
	r.opcodes = append(r.opcodes, opcode)
	r.names = append(r.names, instr.String())
}

func TestCPU_Observer(t *testing.T) {
	rec := &recorder{}
	c := newTestCPU([]byte{0xC6, 0x01, 0x90, 0xFE, 0x01}, WithObserver(rec))
	if _, _, err := c.Step(3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []string{"ADD A, d8", "SUB B", "CP d8"}
	for i, name := range expected {
		if rec.names[i] != name {
			t.Errorf("expected %s, got %s", name, rec.names[i])
		}
	}
	if rec.pcs[0] != 0 || rec.pcs[1] != 2 || rec.pcs[2] != 3 {
		t.Errorf("unexpected program counters %v", rec.pcs)
	}
	if rec.opcodes[2] != 0xFE {
		t.Errorf("expected opcode 0xFE, got 0x%02x", rec.opcodes[2])
	}
}

func TestCPU_Debug(t *testing.T) {
	var buf bytes.Buffer
	c := newTestCPU([]byte{0xC6, 0x03}, Debug(), WithLogger(log.NewWithWriter(&buf)))
	tick(t, c)

	if !strings.Contains(buf.String(), "ADD A, d8") {
		t.Errorf("expected trace to contain the instruction, got %q", buf.String())
	}
}

// singleDecoder decodes every opcode to the same instruction.
type singleDecoder struct {
	instr instructions.Instruction
}

func (d singleDecoder) Decode(uint8) (instructions.Instruction, error) {
	return d.instr, nil
}

func TestCPU_WithDecoder(t *testing.T) {
	c := newTestCPU([]byte{0x00}, WithDecoder(singleDecoder{instructions.Add8{Operand: instructions.Reg8(instructions.B), Cycles: 4}}),
		WithRegisters(types.Registers{A: 1, B: 2}))
	tick(t, c)
	if c.Registers().A != 3 {
		t.Errorf("expected A to be 0x03, got 0x%02x", c.Registers().A)
	}
}

func TestCPU_State(t *testing.T) {
	r := types.Registers{A: 0x12, F: 0xB0, B: 0x34, C: 0x56, D: 0x78, E: 0x9A, H: 0xBC, L: 0xDE, SP: 0xFFFE, PC: 0x0001}
	c := newTestCPU([]byte{0x00, 0x80}, WithRegisters(r))
	tick(t, c)

	s := types.NewState()
	c.Save(s)
	if len(s.Bytes()) != StateSize {
		t.Fatalf("expected %d bytes of state, got %d", StateSize, len(s.Bytes()))
	}

	restored := newTestCPU(nil)
	if err := restored.Load(types.StateFromBytes(s.Bytes())); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if restored.Registers() != c.Registers() {
		t.Errorf("expected registers %+v, got %+v", c.Registers(), restored.Registers())
	}
	if restored.Cycles() != 4 {
		t.Errorf("expected 4 cycles, got %d", restored.Cycles())
	}
}

func TestCPU_LoadShortState(t *testing.T) {
	r := types.Registers{A: 0x12, PC: 0x0100}
	c := newTestCPU(nil, WithRegisters(r))

	err := c.Load(types.StateFromBytes([]byte{1, 2, 3}))
	if !errors.Is(err, types.ErrShortState) {
		t.Fatalf("expected ErrShortState, got %v", err)
	}
	if c.Registers() != r {
		t.Errorf("expected registers to be untouched, got %+v", c.Registers())
	}

	s := types.NewState()
	c.Save(s)
	if err := c.Load(types.StateFromBytes(s.Bytes()[:StateSize-1])); !errors.Is(err, types.ErrShortState) {
		t.Errorf("expected ErrShortState for a truncated state, got %v", err)
	}
}

func TestCPU_SetRegisters(t *testing.T) {
	c := newTestCPU(nil)
	c.SetRegisters(types.Registers{F: 0xFF})
	if f := c.Registers().F; f != 0xF0 {
		t.Errorf("expected F to be 0xF0, got 0x%02x", f)
	}
	if f := c.Registers().Flags(); !f.Has(types.FlagZero) || !f.Has(types.FlagCarry) {
		t.Errorf("expected all flags to be set")
	}

	// the snapshot is a copy
	snapshot := c.Registers()
	snapshot.A = 0xFF
	if c.Registers().A != 0 {
		t.Errorf("expected snapshot changes not to affect the CPU")
	}
}
