package cpu

import (
	"github.com/thelolagemann/sm83/internal/instructions"
	"github.com/thelolagemann/sm83/internal/types"
	"github.com/thelolagemann/sm83/pkg/log"
)

// Opt is a function that modifies a CPU instance.
type Opt func(c *CPU)

// Debug logs every executed instruction.
func Debug() Opt {
	return func(c *CPU) {
		c.Debug = true
	}
}

// WithDecoder replaces the decoder used to decode opcodes.
func WithDecoder(d instructions.Decoder) Opt {
	return func(c *CPU) {
		c.decoder = d
	}
}

func WithLogger(l log.Logger) Opt {
	return func(c *CPU) {
		c.log = l
	}
}

// WithRegisters sets the initial register file.
func WithRegisters(r types.Registers) Opt {
	return func(c *CPU) {
		c.SetRegisters(r)
	}
}

func WithObserver(o Observer) Opt {
	return func(c *CPU) {
		c.observer = o
	}
}
