package instructions

// Add8 adds the value of the operand to the accumulator register (A).
//
//	ADD A, n
//	n = d8, B, C, D, E, H, L, (HL), A
type Add8 struct {
	Operand Operand
	Cycles  uint8
}

func (i Add8) Execute(h Handler) (uint8, error) { return h.Add8(i) }
func (i Add8) String() string                   { return "ADD A, " + i.Operand.String() }

// Add16 adds the value of the operand to the HL register pair.
//
//	ADD HL, rr
//	rr = BC, DE, HL, SP
type Add16 struct {
	Operand Operand
	Cycles  uint8
}

func (i Add16) Execute(h Handler) (uint8, error) { return h.Add16(i) }
func (i Add16) String() string                   { return "ADD HL, " + i.Operand.String() }

// AddSP16 adds a signed immediate byte to the stack pointer.
//
//	ADD SP, r8
type AddSP16 struct {
	Operand Operand
	Cycles  uint8
}

func (i AddSP16) Execute(h Handler) (uint8, error) { return h.AddSP16(i) }
func (i AddSP16) String() string                   { return "ADD SP, " + i.Operand.String() }

var Add8Family = Family{
	Name: "ADD A",
	Entries: []Entry{
		{0x80, Add8{Reg8(B), 4}},
		{0x81, Add8{Reg8(C), 4}},
		{0x82, Add8{Reg8(D), 4}},
		{0x83, Add8{Reg8(E), 4}},
		{0x84, Add8{Reg8(H), 4}},
		{0x85, Add8{Reg8(L), 4}},
		{0x86, Add8{Mem(AtHL), 8}},
		{0x87, Add8{Reg8(A), 4}},
		{0xC6, Add8{Imm8, 8}},
	},
}

var Add16Family = Family{
	Name: "ADD HL",
	Entries: []Entry{
		{0x09, Add16{Reg16(BC), 8}},
		{0x19, Add16{Reg16(DE), 8}},
		{0x29, Add16{Reg16(HL), 8}},
		{0x39, Add16{Reg16(SP), 8}},
	},
}

var AddSP16Family = Family{
	Name: "ADD SP",
	Entries: []Entry{
		{0xE8, AddSP16{ImmSigned8, 16}},
	},
}
