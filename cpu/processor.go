// Package cpu implements the W65C816S 8/16-bit microprocessor: its
// register file, the 256-entry opcode dispatch table, all addressing-mode
// resolvers, and interrupt/mode sequencing.
//
// A Processor has no memory of its own; it operates exclusively through a
// *mem.Bus.
package cpu

import (
	"w65816/mem"
)

// Status register (P) bit positions.
const (
	FlagC byte = 1 << 0 // Carry
	FlagZ byte = 1 << 1 // Zero
	FlagI byte = 1 << 2 // IRQ disable
	FlagD byte = 1 << 3 // Decimal mode
	FlagX byte = 1 << 4 // native mode: index register width (1 = 8-bit); emulation mode: unused (reads as 1)
	FlagB byte = 1 << 4 // emulation mode: the pushed-to-stack Break pseudo-flag shares this bit position
	FlagM byte = 1 << 5 // accumulator/memory width (1 = 8-bit)
	FlagV byte = 1 << 6 // Overflow
	FlagN byte = 1 << 7 // Negative
)

// Vectors, bank 0, little-endian words. See spec.md §4.1.4.
const (
	VectorNativeCOP   uint16 = 0xffe4
	VectorNativeABORT uint16 = 0xffe8
	VectorNativeNMI   uint16 = 0xffea
	VectorNativeIRQ   uint16 = 0xffee
	VectorNativeBRK   uint16 = 0xffe6

	VectorEmulationCOP   uint16 = 0xfff4
	VectorEmulationABORT uint16 = 0xfff8
	VectorEmulationNMI   uint16 = 0xfffa
	VectorEmulationRESET uint16 = 0xfffc
	VectorEmulationIRQ   uint16 = 0xfffe
	VectorEmulationBRK   uint16 = 0xfffe
)

// Processor is the 65816 register file plus the transient decode state
// (current operand bytes, resolved effective address) that addressing
// resolvers and instruction handlers share within a single step.
type Processor struct {
	Bus *mem.Bus

	A uint16 // accumulator; only the logical (M-width) low bits are "visible" to ALU ops
	X uint16 // index register X; high byte forced to zero whenever X-width is 8 bits
	Y uint16 // index register Y; high byte forced to zero whenever X-width is 8 bits

	PC  uint16 // program counter
	PBR byte   // program bank register

	SP uint16 // stack pointer; page-1-constrained in emulation mode

	DP  uint16 // direct page base
	DBR byte   // data bank register

	P byte // status register (N V M X D I Z C)

	EmulationMode       bool // mirror of E
	InterruptsDisabled  bool // mirror of I, kept in sync by SetFlag/GetFlag callers
	Waiting             bool // set by WAI
	Halted              bool // set by STP

	// Transient per-step decode state, set by decode/resolve and consumed
	// by the instruction handler.
	argOne   uint16 // low 16 bits of the operand (immediate value, or low word of an address)
	argTwo   byte   // long-address bank byte, or the block-move src/dst pair's companion byte
	eaValid  bool   // whether effAddr was computed this step (false for Implied/Accumulator/Immediate)
	effAddr  uint32 // resolved effective address (24-bit), when eaValid
	mode     AddrMode
	extraCyc byte // extra cycles added to this step's total; reset each step and not raised by any resolver or handler
}

// New returns a Processor wired to bus, in its post-RESET state.
func New(bus *mem.Bus) *Processor {
	p := &Processor{Bus: bus}
	p.Reset()
	return p
}

// GetFlag reports whether the given P bit is set.
func (p *Processor) GetFlag(bit byte) bool { return p.P&bit != 0 }

// SetFlag sets or clears the given P bit.
func (p *Processor) SetFlag(bit byte, v bool) {
	if v {
		p.P |= bit
	} else {
		p.P &^= bit
	}
	if bit == FlagI {
		p.InterruptsDisabled = v
	}
}

// mWidth8 reports whether the accumulator's logical width is 8 bits:
// always true in emulation mode, otherwise mirrors the M flag.
func (p *Processor) mWidth8() bool {
	return p.EmulationMode || p.GetFlag(FlagM)
}

// xWidth8 reports whether X/Y's logical width is 8 bits.
func (p *Processor) xWidth8() bool {
	return p.EmulationMode || p.GetFlag(FlagX)
}

// GetA returns the accumulator at its current logical width; in 8-bit
// mode the hidden high byte is not exposed (but is preserved in storage).
func (p *Processor) GetA() uint16 {
	if p.mWidth8() {
		return p.A & 0x00ff
	}
	return p.A
}

// SetA stores v into the accumulator at its current logical width. In
// 8-bit mode only the low byte is modified; the hidden high byte of A is
// left untouched, matching spec.md §4.1.1.
func (p *Processor) SetA(v uint16) {
	if p.mWidth8() {
		p.A = (p.A & 0xff00) | (v & 0x00ff)
		return
	}
	p.A = v
}

// GetX returns the X register (already zero in its high byte when 8-bit).
func (p *Processor) GetX() uint16 { return p.X }

// SetX stores v into X at its current logical width, always zeroing the
// high byte in 8-bit mode (X has no hidden high byte, unlike A).
func (p *Processor) SetX(v uint16) {
	if p.xWidth8() {
		p.X = v & 0x00ff
		return
	}
	p.X = v
}

// GetY returns the Y register.
func (p *Processor) GetY() uint16 { return p.Y }

// SetY stores v into Y, zeroing the high byte in 8-bit mode.
func (p *Processor) SetY(v uint16) {
	if p.xWidth8() {
		p.Y = v & 0x00ff
		return
	}
	p.Y = v
}

// forceNarrowIndexRegisters zeroes the high bytes of X and Y, as required
// whenever X-width becomes 8 bits (spec.md §4.1.1).
func (p *Processor) forceNarrowIndexRegisters() {
	p.X &= 0x00ff
	p.Y &= 0x00ff
}

// setNZ8 sets N and Z from the low 8 bits of v.
func (p *Processor) setNZ8(v byte) {
	p.SetFlag(FlagZ, v == 0)
	p.SetFlag(FlagN, v&0x80 != 0)
}

// setNZ16 sets N and Z from all 16 bits of v.
func (p *Processor) setNZ16(v uint16) {
	p.SetFlag(FlagZ, v == 0)
	p.SetFlag(FlagN, v&0x8000 != 0)
}

// setNZWidth sets N and Z at the accumulator's current logical width.
func (p *Processor) setNZWidth(v uint16, width8 bool) {
	if width8 {
		p.setNZ8(byte(v))
	} else {
		p.setNZ16(v)
	}
}

// Reset reloads the processor into its post-RESET state: emulation mode,
// interrupts disabled, decimal cleared, SP at 0x01FF, PC loaded from the
// RESET vector (bank 0, 0xFFFC).
func (p *Processor) Reset() {
	p.A, p.X, p.Y = 0, 0, 0
	p.DP = 0
	p.DBR = 0
	p.PBR = 0
	p.SP = 0x01ff
	p.EmulationMode = true
	p.P = FlagM | FlagX | FlagI
	p.InterruptsDisabled = true
	p.SetFlag(FlagD, false)
	p.Waiting = false
	p.Halted = false
	p.forceNarrowIndexRegisters()
	p.PC = p.Bus.ReadWord(mem.Join(0, VectorEmulationRESET))
}

// stackAddr returns the 24-bit bank-0 address of the current SP.
func (p *Processor) stackAddr() uint32 { return mem.Join(0, p.SP) }

// spDecrement decrements SP by one, wrapping within page 1 in emulation
// mode or across the full 16 bits in native mode (spec.md "Stack
// wrapping").
func (p *Processor) spDecrement() {
	if p.EmulationMode {
		p.SP = 0x0100 | uint16(byte(p.SP)-1)
	} else {
		p.SP--
	}
}

func (p *Processor) spIncrement() {
	if p.EmulationMode {
		p.SP = 0x0100 | uint16(byte(p.SP)+1)
	} else {
		p.SP++
	}
}

// pushByte writes v at the current SP, then decrements SP.
func (p *Processor) pushByte(v byte) {
	p.Bus.WriteByte(p.stackAddr(), v)
	p.spDecrement()
}

// popByte increments SP, then reads from the new SP ("pop pre-increments").
func (p *Processor) popByte() byte {
	p.spIncrement()
	return p.Bus.ReadByte(p.stackAddr())
}

// pushWord pushes v high-byte-first, so that popWord (low then high)
// reconstructs it.
func (p *Processor) pushWord(v uint16) {
	p.pushByte(byte(v >> 8))
	p.pushByte(byte(v))
}

func (p *Processor) popWord() uint16 {
	lo := p.popByte()
	hi := p.popByte()
	return uint16(hi)<<8 | uint16(lo)
}

// XCE exchanges the Carry flag with the Emulation flag. Entering
// emulation mode (E 0->1) forces M and X set, zeroes X/Y's high bytes,
// and forces SP's high byte to 0x01.
func (p *Processor) XCE() {
	oldCarry := p.GetFlag(FlagC)
	oldEmulation := p.EmulationMode

	p.SetFlag(FlagC, oldEmulation)
	p.EmulationMode = oldCarry

	if p.EmulationMode && !oldEmulation {
		p.SetFlag(FlagM, true)
		p.SetFlag(FlagX, true)
		p.forceNarrowIndexRegisters()
		p.SP = 0x0100 | (p.SP & 0x00ff)
	}
}

// REP clears exactly the P bits set in mask (SEP sets them). In
// emulation mode M and X bits are unaffected since they are forced.
func (p *Processor) REP(mask byte) {
	if p.EmulationMode {
		mask &^= FlagM | FlagX
	}
	p.P &^= mask
	p.InterruptsDisabled = p.GetFlag(FlagI)
}

// SEP sets exactly the P bits set in mask.
func (p *Processor) SEP(mask byte) {
	p.P |= mask
	if p.GetFlag(FlagX) {
		p.forceNarrowIndexRegisters()
	}
	p.InterruptsDisabled = p.GetFlag(FlagI)
}
