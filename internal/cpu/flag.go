package cpu

import "github.com/thelolagemann/sm83/internal/types"

// setFlags replaces the flags in the F register.
func (c *CPU) setFlags(f types.Flags) {
	c.r.SetFlags(f)
}
