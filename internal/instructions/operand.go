package instructions

// Register8 names one of the 8-bit registers that can be used as an operand.
type Register8 uint8

const (
	A Register8 = iota
	B
	C
	D
	E
	H
	L
)

var register8Names = [...]string{"A", "B", "C", "D", "E", "H", "L"}

func (r Register8) String() string {
	if int(r) < len(register8Names) {
		return register8Names[r]
	}
	return "?"
}

// Register16 names one of the 16-bit registers that can be used as an operand.
type Register16 uint8

const (
	BC Register16 = iota
	DE
	HL
	SP
)

var register16Names = [...]string{"BC", "DE", "HL", "SP"}

func (r Register16) String() string {
	if int(r) < len(register16Names) {
		return register16Names[r]
	}
	return "?"
}

// Memory names the addressing mode of a memory-indirect operand.
type Memory uint8

const (
	AtHL  Memory = iota // (HL)
	AtBC                // (BC)
	AtDE                // (DE)
	AtHLI               // (HL+), HL is incremented after the access
	AtHLD               // (HL-), HL is decremented after the access
)

var memoryNames = [...]string{"(HL)", "(BC)", "(DE)", "(HL+)", "(HL-)"}

func (m Memory) String() string {
	if int(m) < len(memoryNames) {
		return memoryNames[m]
	}
	return "(?)"
}

// OperandKind tags where an instruction's data comes from.
type OperandKind uint8

const (
	KindNone OperandKind = iota
	KindRegister8
	KindRegister16
	KindImm8
	KindImm16
	KindImmSigned8
	KindMemory
)

// Operand is the data source of an instruction. Operands are
// comparable values and never change once created.
type Operand struct {
	kind OperandKind
	// which holds the Register8, Register16 or Memory
	// selected by kind.
	which uint8
}

var (
	// Imm8 is an unsigned byte following the opcode.
	Imm8 = Operand{kind: KindImm8}
	// Imm16 is a little-endian word following the opcode.
	Imm16 = Operand{kind: KindImm16}
	// ImmSigned8 is a two's complement byte following the opcode.
	ImmSigned8 = Operand{kind: KindImmSigned8}
)

// Reg8 returns an operand reading the given 8-bit register.
func Reg8(r Register8) Operand {
	return Operand{kind: KindRegister8, which: uint8(r)}
}

// Reg16 returns an operand reading the given 16-bit register.
func Reg16(r Register16) Operand {
	return Operand{kind: KindRegister16, which: uint8(r)}
}

// Mem returns an operand addressing memory through the given mode.
func Mem(m Memory) Operand {
	return Operand{kind: KindMemory, which: uint8(m)}
}

// Kind returns the kind of the operand.
func (o Operand) Kind() OperandKind {
	return o.kind
}

// Register8 returns the register of a KindRegister8 operand.
func (o Operand) Register8() (Register8, bool) {
	return Register8(o.which), o.kind == KindRegister8
}

// Register16 returns the register of a KindRegister16 operand.
func (o Operand) Register16() (Register16, bool) {
	return Register16(o.which), o.kind == KindRegister16
}

// Memory returns the addressing mode of a KindMemory operand.
func (o Operand) Memory() (Memory, bool) {
	return Memory(o.which), o.kind == KindMemory
}

func (o Operand) String() string {
	switch o.kind {
	case KindRegister8:
		return Register8(o.which).String()
	case KindRegister16:
		return Register16(o.which).String()
	case KindImm8:
		return "d8"
	case KindImm16:
		return "d16"
	case KindImmSigned8:
		return "r8"
	case KindMemory:
		return Memory(o.which).String()
	}
	return "<none>"
}
