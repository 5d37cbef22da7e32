package instructions

// Sub8 subtracts the value of the operand from the accumulator register (A).
//
//	SUB n
//	n = d8, B, C, D, E, H, L, (HL), A
type Sub8 struct {
	Operand Operand
	Cycles  uint8
}

func (i Sub8) Execute(h Handler) (uint8, error) { return h.Sub8(i) }
func (i Sub8) String() string                   { return "SUB " + i.Operand.String() }

// Sbc8 subtracts the value of the operand and the carry flag from the
// accumulator register (A).
//
//	SBC A, n
//	n = d8, B, C, D, E, H, L, (HL), A
type Sbc8 struct {
	Operand Operand
	Cycles  uint8
}

func (i Sbc8) Execute(h Handler) (uint8, error) { return h.Sbc8(i) }
func (i Sbc8) String() string                   { return "SBC A, " + i.Operand.String() }

// Cp8 compares the value of the operand with the accumulator register (A),
// setting the flags of a subtraction without storing its result.
//
//	CP n
//	n = d8, B, C, D, E, H, L, (HL), A
type Cp8 struct {
	Operand Operand
	Cycles  uint8
}

func (i Cp8) Execute(h Handler) (uint8, error) { return h.Cp8(i) }
func (i Cp8) String() string                   { return "CP " + i.Operand.String() }

var Sub8Family = Family{
	Name: "SUB",
	Entries: []Entry{
		{0x90, Sub8{Reg8(B), 4}},
		{0x91, Sub8{Reg8(C), 4}},
		{0x92, Sub8{Reg8(D), 4}},
		{0x93, Sub8{Reg8(E), 4}},
		{0x94, Sub8{Reg8(H), 4}},
		{0x95, Sub8{Reg8(L), 4}},
		{0x96, Sub8{Mem(AtHL), 8}},
		{0x97, Sub8{Reg8(A), 4}},
		{0xD6, Sub8{Imm8, 8}},
	},
}

var Sbc8Family = Family{
	Name: "SBC A",
	Entries: []Entry{
		{0x98, Sbc8{Reg8(B), 4}},
		{0x99, Sbc8{Reg8(C), 4}},
		{0x9A, Sbc8{Reg8(D), 4}},
		{0x9B, Sbc8{Reg8(E), 4}},
		{0x9C, Sbc8{Reg8(H), 4}},
		{0x9D, Sbc8{Reg8(L), 4}},
		{0x9E, Sbc8{Mem(AtHL), 8}},
		{0x9F, Sbc8{Reg8(A), 4}},
		{0xDE, Sbc8{Imm8, 8}},
	},
}

var Cp8Family = Family{
	Name: "CP",
	Entries: []Entry{
		{0xB8, Cp8{Reg8(B), 4}},
		{0xB9, Cp8{Reg8(C), 4}},
		{0xBA, Cp8{Reg8(D), 4}},
		{0xBB, Cp8{Reg8(E), 4}},
		{0xBC, Cp8{Reg8(H), 4}},
		{0xBD, Cp8{Reg8(L), 4}},
		{0xBE, Cp8{Mem(AtHL), 8}},
		{0xBF, Cp8{Reg8(A), 4}},
		{0xFE, Cp8{Imm8, 8}},
	},
}
