package instructions

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidOpcode matches every *InvalidOpcodeError.
	ErrInvalidOpcode = errors.New("invalid opcode")
	// ErrInvalidOperand matches every *InvalidOperandError.
	ErrInvalidOperand = errors.New("invalid operand")
	// ErrFailed matches every *FailedError.
	ErrFailed = errors.New("instruction failed")
)

// InvalidOpcodeError is returned when no instruction is assigned to
// an opcode. Illegal and not yet implemented opcodes are not told apart.
type InvalidOpcodeError struct {
	Opcode uint8
}

func (e *InvalidOpcodeError) Error() string {
	return fmt.Sprintf("opcode 0x%02X is not supported", e.Opcode)
}

func (e *InvalidOpcodeError) Is(target error) bool {
	return target == ErrInvalidOpcode
}

// InvalidOperandError is returned when an instruction carries an operand
// its handler can not resolve.
type InvalidOperandError struct {
	Operand     Operand
	Instruction string
	Reason      string
}

func (e *InvalidOperandError) Error() string {
	msg := fmt.Sprintf("invalid operand: %s for instruction %s", e.Operand, e.Instruction)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

func (e *InvalidOperandError) Is(target error) bool {
	return target == ErrInvalidOperand
}

// FailedError wraps a failure of a lower layer, such as a memory read,
// that aborted an instruction.
type FailedError struct {
	Reason string
	Err    error
}

func (e *FailedError) Error() string {
	if e.Err == nil {
		return "instruction failed: " + e.Reason
	}
	return fmt.Sprintf("instruction failed: %s: %v", e.Reason, e.Err)
}

func (e *FailedError) Unwrap() error {
	return e.Err
}

func (e *FailedError) Is(target error) bool {
	return target == ErrFailed
}

// ConflictError is returned when building a Table from families that
// claim the same opcode.
type ConflictError struct {
	Opcode   uint8
	Families [2]string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("opcode 0x%02X claimed by both %s and %s", e.Opcode, e.Families[0], e.Families[1])
}
