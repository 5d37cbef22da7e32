package instructions

// Decoder decodes an opcode byte into an Instruction. Decode returns an
// *InvalidOpcodeError if the opcode is not assigned.
type Decoder interface {
	Decode(opcode uint8) (Instruction, error)
}

// Entry assigns an instruction to an opcode.
type Entry struct {
	Opcode      uint8
	Instruction Instruction
}

// Family is the decode rule of one instruction family: the
// opcodes it claims and the instruction each one decodes to.
type Family struct {
	Name    string
	Entries []Entry
}

// Decode returns the instruction the family assigns to opcode.
func (f Family) Decode(opcode uint8) (Instruction, error) {
	for _, e := range f.Entries {
		if e.Opcode == opcode {
			return e.Instruction, nil
		}
	}
	return nil, &InvalidOpcodeError{Opcode: opcode}
}

// DefaultFamilies returns the supported instruction families in
// registration order.
func DefaultFamilies() []Family {
	return []Family{
		Add8Family,
		Add16Family,
		AddSP16Family,
		Adc8Family,
		Sub8Family,
		Sbc8Family,
		Cp8Family,
	}
}

// DefaultTable decodes every supported instruction family.
var DefaultTable = MustNewTable(DefaultFamilies()...)

// Table is a flat opcode lookup table, built once from a list of
// families.
type Table struct {
	instructions [256]Instruction
	families     [256]string
}

// NewTable builds a Table from the given families. Every opcode may be
// claimed by at most one entry, otherwise a *ConflictError is returned.
func NewTable(families ...Family) (*Table, error) {
	t := &Table{}
	for _, f := range families {
		for _, e := range f.Entries {
			if t.instructions[e.Opcode] != nil {
				return nil, &ConflictError{Opcode: e.Opcode, Families: [2]string{t.families[e.Opcode], f.Name}}
			}
			t.instructions[e.Opcode] = e.Instruction
			t.families[e.Opcode] = f.Name
		}
	}
	return t, nil
}

// MustNewTable is like NewTable but panics on conflict.
func MustNewTable(families ...Family) *Table {
	t, err := NewTable(families...)
	if err != nil {
		panic(err)
	}
	return t
}

// Decode returns the instruction assigned to opcode.
func (t *Table) Decode(opcode uint8) (Instruction, error) {
	if i := t.instructions[opcode]; i != nil {
		return i, nil
	}
	return nil, &InvalidOpcodeError{Opcode: opcode}
}

// Family returns the name of the family that owns opcode, or an
// empty string if the opcode is not assigned.
func (t *Table) Family(opcode uint8) string {
	return t.families[opcode]
}

// Instructions returns every assigned opcode in ascending order.
func (t *Table) Instructions() []Entry {
	var entries []Entry
	for op, i := range t.instructions {
		if i != nil {
			entries = append(entries, Entry{Opcode: uint8(op), Instruction: i})
		}
	}
	return entries
}
