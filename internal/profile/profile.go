// Package profile collects statistics about the instructions executed
// by the CPU and renders them as a chart.
package profile

import (
	"errors"
	"io"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/thelolagemann/sm83/internal/instructions"
)

// ErrNoData is returned when rendering a chart before any instruction
// has been recorded.
var ErrNoData = errors.New("profile: no instructions recorded")

// Stat holds the statistics of a single opcode or family.
type Stat struct {
	Opcode uint8
	Name   string
	Count  uint64
	Cycles uint64
}

// FamilyNamer names the family an opcode belongs to. It is satisfied
// by *instructions.Table.
type FamilyNamer interface {
	Family(opcode uint8) string
}

// Recorder counts every executed instruction. It implements cpu.Observer.
type Recorder struct {
	families FamilyNamer

	names  [256]string
	counts [256]uint64
	cycles [256]uint64
}

// NewRecorder creates a Recorder grouping opcodes with the given namer.
// A nil namer uses instructions.DefaultTable.
func NewRecorder(families FamilyNamer) *Recorder {
	if families == nil {
		families = instructions.DefaultTable
	}
	return &Recorder{families: families}
}

// Executed records an executed instruction.
func (r *Recorder) Executed(_ uint16, opcode uint8, instr instructions.Instruction, cycles uint8) {
	r.names[opcode] = instr.String()
	r.counts[opcode]++
	r.cycles[opcode] += uint64(cycles)
}

// Instructions returns the number of instructions recorded.
func (r *Recorder) Instructions() uint64 {
	var total uint64
	for _, n := range r.counts {
		total += n
	}
	return total
}

// Cycles returns the number of cycles recorded.
func (r *Recorder) Cycles() uint64 {
	var total uint64
	for _, n := range r.cycles {
		total += n
	}
	return total
}

// Opcodes returns the statistics of every executed opcode, in
// ascending opcode order.
func (r *Recorder) Opcodes() []Stat {
	var stats []Stat
	for op, n := range r.counts {
		if n == 0 {
			continue
		}
		stats = append(stats, Stat{Opcode: uint8(op), Name: r.names[op], Count: n, Cycles: r.cycles[op]})
	}
	return stats
}

// Families returns the statistics of every executed instruction family,
// ordered by descending cycles.
func (r *Recorder) Families() []Stat {
	index := make(map[string]int)
	var stats []Stat
	for _, s := range r.Opcodes() {
		name := r.families.Family(s.Opcode)
		if name == "" {
			name = s.Name
		}
		i, ok := index[name]
		if !ok {
			i = len(stats)
			index[name] = i
			stats = append(stats, Stat{Opcode: s.Opcode, Name: name})
		}
		stats[i].Count += s.Count
		stats[i].Cycles += s.Cycles
	}
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Cycles > stats[j].Cycles
	})
	return stats
}

// WriteChart renders a PNG bar chart of the cycles spent in every
// instruction family.
func (r *Recorder) WriteChart(w io.Writer) error {
	stats := r.Families()
	if len(stats) == 0 {
		return ErrNoData
	}

	p := plot.New()
	p.Title.Text = "Cycles per instruction family"
	p.Y.Label.Text = "Cycles"

	values := make(plotter.Values, len(stats))
	names := make([]string, len(stats))
	for i, s := range stats {
		values[i] = float64(s.Cycles)
		names[i] = s.Name
	}

	bars, err := plotter.NewBarChart(values, vg.Points(24))
	if err != nil {
		return err
	}
	p.Add(bars)
	p.NominalX(names...)

	c := vgimg.New(640, 480)
	p.Draw(draw.New(c))

	_, err = vgimg.PngCanvas{Canvas: c}.WriteTo(w)
	return err
}
