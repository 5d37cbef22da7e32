package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/thelolagemann/sm83/internal/cpu"
	"github.com/thelolagemann/sm83/internal/types"
)

const (
	colourReset = "\x1b[0m"
	colourName  = "\x1b[36m"
	colourSet   = "\x1b[32m"
	colourClear = "\x1b[90m"
)

var errPresetRange = errors.New("register preset out of range")

// presetRegisters builds the initial register file from the command line
// presets. Negative values leave the register at zero.
func presetRegisters(pc, sp, a int) (types.Registers, error) {
	var r types.Registers
	if pc > 0xFFFF || sp > 0xFFFF {
		return r, fmt.Errorf("%w: pc and sp must be at most 0xFFFF", errPresetRange)
	}
	if a > 0xFF {
		return r, fmt.Errorf("%w: a must be at most 0xFF", errPresetRange)
	}
	if pc >= 0 {
		r.PC = uint16(pc)
	}
	if sp >= 0 {
		r.SP = uint16(sp)
	}
	if a >= 0 {
		r.A = uint8(a)
	}
	return r, nil
}

func applyPresets(c *cpu.CPU, pc, sp, a int) {
	r := c.Registers()
	if pc >= 0 {
		r.PC = uint16(pc)
	}
	if sp >= 0 {
		r.SP = uint16(sp)
	}
	if a >= 0 {
		r.A = uint8(a)
	}
	c.SetRegisters(r)
}

// formatRegisters renders the register file, highlighting names and set
// flags with ANSI colours when colour is true.
func formatRegisters(r types.Registers, colour bool) string {
	name := func(s string) string {
		if !colour {
			return s
		}
		return colourName + s + colourReset
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s: %02X  %s: %04X  %s: %04X  %s: %04X  %s: %04X  %s: %04X  ",
		name("A"), r.A, name("BC"), r.BC(), name("DE"), r.DE(), name("HL"), r.HL(),
		name("SP"), r.SP, name("PC"), r.PC)

	b.WriteString(name("F"))
	b.WriteString(": ")
	flags := r.Flags().String()
	if !colour {
		b.WriteString(flags)
	} else {
		for _, f := range flags {
			if f == '-' {
				b.WriteString(colourClear + "-" + colourReset)
			} else {
				b.WriteString(colourSet + string(f) + colourReset)
			}
		}
	}
	b.WriteByte('\n')
	return b.String()
}
