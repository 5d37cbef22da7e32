// Package instructions defines the decoded form of SM83 instructions, the
// protocol used to execute them and the table that decodes opcode bytes.
//
// Execution uses double dispatch: an Instruction value knows which
// method of the Handler implements it, and the Handler (usually the CPU)
// implements one method per instruction family.
package instructions

import "fmt"

// Instruction is a decoded instruction, ready to be executed.
type Instruction interface {
	// Execute runs the instruction against h and returns the
	// number of cycles it took.
	Execute(h Handler) (uint8, error)
	fmt.Stringer
}

// Handler implements the semantics of every instruction family.
type Handler interface {
	Add8(Add8) (uint8, error)
	Add16(Add16) (uint8, error)
	AddSP16(AddSP16) (uint8, error)
	Adc8(Adc8) (uint8, error)
	Sub8(Sub8) (uint8, error)
	Sbc8(Sbc8) (uint8, error)
	Cp8(Cp8) (uint8, error)
}
