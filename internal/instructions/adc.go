package instructions

// Adc8 adds the value of the operand and the carry flag to the
// accumulator register (A).
//
//	ADC A, n
//	n = d8, B, C, D, E, H, L, (HL), A
type Adc8 struct {
	Operand Operand
	Cycles  uint8
}

func (i Adc8) Execute(h Handler) (uint8, error) { return h.Adc8(i) }
func (i Adc8) String() string                   { return "ADC A, " + i.Operand.String() }

var Adc8Family = Family{
	Name: "ADC A",
	Entries: []Entry{
		{0x88, Adc8{Reg8(B), 4}},
		{0x89, Adc8{Reg8(C), 4}},
		{0x8A, Adc8{Reg8(D), 4}},
		{0x8B, Adc8{Reg8(E), 4}},
		{0x8C, Adc8{Reg8(H), 4}},
		{0x8D, Adc8{Reg8(L), 4}},
		{0x8E, Adc8{Mem(AtHL), 8}},
		{0x8F, Adc8{Reg8(A), 4}},
		{0xCE, Adc8{Imm8, 8}},
	},
}
