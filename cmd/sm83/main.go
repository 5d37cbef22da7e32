package main

import (
	"flag"
	"os"

	"golang.org/x/term"

	"github.com/thelolagemann/sm83/internal/cpu"
	"github.com/thelolagemann/sm83/internal/memory"
	"github.com/thelolagemann/sm83/internal/profile"
	"github.com/thelolagemann/sm83/internal/types"
	"github.com/thelolagemann/sm83/pkg/log"
	"github.com/thelolagemann/sm83/pkg/utils"
)

func main() {
	var logger = log.New()

	romFile := flag.String("rom", "", "The program image to load (raw, .gz, .zip or .7z)")
	steps := flag.Int("steps", 0, "The maximum number of instructions to execute, 0 runs until an error occurs")
	pc := flag.Int("pc", -1, "The initial program counter")
	sp := flag.Int("sp", -1, "The initial stack pointer")
	a := flag.Int("a", -1, "The initial value of the accumulator")
	state := flag.String("state", "", "The state file to load")
	save := flag.String("save", "", "Write the final state to this file")
	profileFile := flag.String("profile", "", "Write a PNG chart of the cycles spent per instruction family to this file")
	debug := flag.Bool("debug", false, "Log every executed instruction")
	flag.Parse()

	if *romFile == "" {
		flag.Usage()
		os.Exit(2)
	}

	image, err := utils.LoadFile(*romFile)
	if err != nil {
		logger.Fatalf("loading %s: %v", *romFile, err)
	}
	rom := memory.NewROM(image)
	logger.Infof("loaded %s (%d bytes, checksum %016x)", *romFile, rom.Len(), rom.Checksum())

	regs, err := presetRegisters(*pc, *sp, *a)
	if err != nil {
		logger.Fatalf("%v", err)
	}

	recorder := profile.NewRecorder(nil)
	opts := []cpu.Opt{cpu.WithLogger(logger), cpu.WithObserver(recorder), cpu.WithRegisters(regs)}
	if *debug {
		opts = append(opts, cpu.Debug())
	}
	c := cpu.New(rom, opts...)

	if *state != "" {
		s, err := types.StateFromFile(*state)
		if err != nil {
			logger.Fatalf("loading state: %v", err)
		}
		if err := c.Load(s); err != nil {
			logger.Fatalf("loading state %s: %v", *state, err)
		}
		// command line presets take precedence over the saved state
		applyPresets(c, *pc, *sp, *a)
	}

	executed, cycles, runErr := run(c, *steps)

	os.Stdout.WriteString(formatRegisters(c.Registers(), term.IsTerminal(int(os.Stdout.Fd()))))
	logger.Infof("executed %d instructions in %d cycles (%d total)", executed, cycles, c.Cycles())
	if runErr != nil {
		logger.Errorf("stopped: %v", runErr)
	}

	if *save != "" {
		s := types.NewState()
		c.Save(s)
		if err := s.SaveToFile(*save); err != nil {
			logger.Errorf("saving state: %v", err)
		}
	}

	if *profileFile != "" {
		if err := writeProfile(recorder, *profileFile); err != nil {
			logger.Errorf("writing profile: %v", err)
		}
	}
}

// run executes up to steps instructions, or until the first error when
// steps is 0.
func run(c *cpu.CPU, steps int) (int, uint64, error) {
	if steps > 0 {
		return c.Step(steps)
	}

	var executed int
	var total uint64
	for {
		cycles, err := c.Tick()
		if err != nil {
			return executed, total, err
		}
		executed++
		total += uint64(cycles)
	}
}

func writeProfile(r *profile.Recorder, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := r.WriteChart(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
