// Package machine ties a cpu.Processor to a populated mem.Bus and the
// peripheral set a sample board exposes: one ACIA, one PIA, one standalone
// VIA, and one VIA+FT245 board FIFO. It owns the only copy of each, clocks
// them after every instruction, and polls their IRQ lines the way a real
// board's interrupt wire-OR would.
package machine

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"

	"w65816/acia"
	"w65816/board"
	"w65816/cpu"
	"w65816/mem"
	"w65816/pia"
	"w65816/via"
)

// Layout describes where each region lives in bank 0. The zero value is
// not usable; call DefaultLayout for the addresses sample programs assume.
type Layout struct {
	RAMStart, RAMEnd    uint16
	ACIABase, ACIAEnd   uint16
	PIABase, PIAEnd     uint16
	VIABase, VIAEnd     uint16
	BoardBase, BoardEnd uint16
	ROMStart, ROMEnd    uint16
}

// DefaultLayout is the memory map assumed by sample programs (spec.md
// §4.2); it is not normative, but it is what New builds when called with
// it.
func DefaultLayout() Layout {
	return Layout{
		RAMStart: 0x0000, RAMEnd: 0x7f7f,
		ACIABase: 0x7f80, ACIAEnd: 0x7f83,
		PIABase: 0x7fa0, PIAEnd: 0x7fa3,
		VIABase: 0x7fc0, VIAEnd: 0x7fcf,
		BoardBase: 0x7fe0, BoardEnd: 0x7fef,
		ROMStart: 0x8000, ROMEnd: 0xffff,
	}
}

// Machine is a complete, runnable system: one 65816, one banked bus, and
// the peripheral set wired into bank 0 at construction.
type Machine struct {
	CPU *cpu.Processor
	Bus *mem.Bus

	ACIA  *acia.ACIA
	PIA   *pia.PIA
	VIA   *via.VIA
	Board *board.FIFO

	layout Layout
}

// New builds a Machine with layout's regions installed in bank 0: RAM,
// then the ACIA/PIA/VIA/board-FIFO device windows, then a writable-until-
// loaded ROM region. The processor is reset once the bus is fully wired.
func New(layout Layout) *Machine {
	bus := mem.NewBus()
	bus.AddRAM(0, layout.RAMStart, layout.RAMEnd)

	m := &Machine{
		Bus:   bus,
		ACIA:  acia.New(),
		PIA:   pia.New(),
		VIA:   via.New(),
		Board: board.New(),
	}

	bus.AddDevice(0, layout.ACIABase, layout.ACIAEnd, m.ACIA)
	bus.AddDevice(0, layout.PIABase, layout.PIAEnd, m.PIA)
	bus.AddDevice(0, layout.VIABase, layout.VIAEnd, m.VIA)
	bus.AddDevice(0, layout.BoardBase, layout.BoardEnd, m.Board)
	bus.AddROM(0, layout.ROMStart, layout.ROMEnd)

	m.layout = layout
	m.CPU = cpu.New(bus)
	return m
}

// Reset reloads the processor from the reset vector; bus contents
// (including any already-loaded ROM) are untouched.
func (m *Machine) Reset() { m.CPU.Reset() }

// ReadByte, WriteByte are ordinary bus accesses for debuggers; WriteByte
// drops writes to ROM (WriteByteRaw writes through it).
func (m *Machine) ReadByte(addr mem.Addr24) byte     { return m.Bus.ReadByte(addr) }
func (m *Machine) WriteByte(addr mem.Addr24, v byte) { m.Bus.WriteByte(addr, v) }

// WriteByteRaw is the privileged write path a loader.Writer targets: it
// writes through ROM instead of dropping the write, so program images can
// be staged before the processor ever runs.
func (m *Machine) WriteByteRaw(bank byte, addr uint16, v byte) {
	m.Bus.WriteByteRaw(mem.Join(bank, addr), v)
}

// LoadROM pre-fills the ROM region at bank 0 starting at addr.
func (m *Machine) LoadROM(addr uint16, data []byte) error {
	return m.Bus.LoadROM(0, addr, data)
}

// Step executes exactly one cpu.Processor.Step, clocks every peripheral by
// the reported cycle count, and polls the aggregate IRQ line once
// afterward. While the processor is Waiting (inside WAI), each Step call
// advances peripherals by a single cycle instead, matching spec.md's
// "WAI only returns on interrupt, one cycle at a time" contract without
// blocking the caller's thread.
func (m *Machine) Step() cpu.StepResult {
	if m.CPU.Halted {
		return cpu.StepResult{Halted: true}
	}

	result := m.CPU.Step()

	if result.Waiting {
		m.clockPeripherals(1)
		if m.pendingIRQ() {
			m.CPU.IRQ()
		}
		return result
	}

	m.clockPeripherals(result.Cycles)
	if m.pendingIRQ() {
		m.CPU.IRQ()
	}
	return result
}

// NMI delivers a non-maskable interrupt to the processor, bypassing the
// I-flag gate IRQ lines are subject to.
func (m *Machine) NMI() { m.CPU.NMI() }

func (m *Machine) clockPeripherals(n int) {
	m.ACIA.ClockCycles(n)
	m.VIA.ClockCycles(n)
	m.Board.ClockCycles(n)
}

func (m *Machine) pendingIRQ() bool {
	return m.ACIA.IRQ() || m.PIA.IRQA() || m.PIA.IRQB() ||
		m.VIA.IRQ() || m.Board.VIA.IRQ()
}

// Dump renders a full register-and-peripheral snapshot for debugging
// with go-spew's structure-walking formatter; cmd/w65816run prints it
// when a run ends.
func (m *Machine) Dump() string {
	return fmt.Sprintf("CPU:\n%s\nACIA:\n%s\nPIA:\n%s\nVIA:\n%s\nBoard:\n%s\n",
		spew.Sdump(m.CPU), spew.Sdump(m.ACIA), spew.Sdump(m.PIA), spew.Sdump(m.VIA), spew.Sdump(m.Board))
}
