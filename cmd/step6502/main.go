// step6502 loads a flat binary image into memory and runs the engine
// against it, optionally emitting a trace line per instruction. It
// exists to exercise the cpu package end to end, the way the teacher's
// own small command-line tools drive its packages outside of tests.
package main

import (
	"flag"
	"io/ioutil"
	"log"
	"os"

	"github.com/sixfiveohtwo/engine/cpu"
	"github.com/sixfiveohtwo/engine/memory"
	"github.com/sixfiveohtwo/engine/trace"
)

var (
	rom       = flag.String("rom", "", "Path to a flat binary image to load")
	loadAddr  = flag.Uint("load_addr", 0x0000, "Address at which to load -rom")
	pc        = flag.Uint("pc", 0, "If nonzero, overrides the reset vector and starts execution here")
	maxCycles = flag.Uint64("max_cycles", 1000000, "Upper bound on total cycles before giving up")
	doTrace   = flag.Bool("trace", false, "Emit one trace line per instruction to stdout")
)

func main() {
	flag.Parse()
	if *rom == "" {
		log.Fatalf("Usage: %s -rom <path> [-load_addr 0xNNNN] [-pc 0xNNNN] [-trace]", os.Args[0])
	}

	data, err := ioutil.ReadFile(*rom)
	if err != nil {
		log.Fatalf("Can't read rom %q: %v", *rom, err)
	}

	bus := memory.NewFlatBus()
	bus.Load(uint16(*loadAddr), data)

	c := cpu.New()
	c.Reset(bus)
	if *pc != 0 {
		c.OverridePC(uint16(*pc))
	}

	for c.Registers().TotalCycles < *maxCycles {
		if *doTrace && c.Registers().RemainCycles == 0 {
			os.Stdout.WriteString(trace.Line(c.Registers(), bus) + "\n")
		}
		if err := c.Step(bus); err != nil {
			log.Printf("stopped after %d cycles: %v", c.Registers().TotalCycles, err)
			return
		}
	}
	log.Printf("reached max_cycles (%d) without halting", *maxCycles)
}
