// Package board wires a via.VIA to an ft245.FT245 the way a real single-
// board computer does: Port A carries the FT245 data bus, Port B carries
// its RD#/WR/RXF#/TXE#/PWREN# control and status lines.
package board

import (
	"w65816/ft245"
	"w65816/via"
)

// Port B bit assignments for FT245 control/status.
const (
	PortBRDn    byte = 0x01 // RD# output (active low)
	PortBWR     byte = 0x02 // WR output (active high)
	PortBRXFn   byte = 0x04 // RXF# input (active low: data available)
	PortBTXEn   byte = 0x08 // TXE# input (active low: space available)
	PortBPWRENn byte = 0x10 // PWREN# input (active low: USB configured)
)

// FIFO glues one VIA to one FT245 over the board's wiring.
type FIFO struct {
	FT245 *ft245.FT245
	VIA   *via.VIA

	portBOutputs byte
}

// New returns a FIFO board with the USB side already connected and
// enumerated, matching init_board_fifo's startup sequence.
func New() *FIFO {
	f := &FIFO{
		FT245: ft245.New(),
		VIA:   via.New(),
	}
	f.portBOutputs = PortBRDn // RD# inactive (high), WR inactive (low)
	f.FT245.SetUSBConnected(true)
	f.FT245.SetUSBConfigured(true)
	f.VIA.PortA = portAAdapter{f}
	f.VIA.PortB = portBAdapter{f}
	return f
}

type portAAdapter struct{ f *FIFO }

// ReadPort reads the FT245 data bus: an actual read cycle if RD# is
// currently asserted, otherwise the bus's held value.
func (a portAAdapter) ReadPort() byte {
	if a.f.portBOutputs&PortBRDn == 0 {
		return a.f.FT245.Read()
	}
	return a.f.FT245.DataBus
}

// WritePort stages a byte on the FT245 data bus; WR (via Port B) performs
// the actual FIFO push.
func (a portAAdapter) WritePort(value byte) { a.f.FT245.Write(value) }

type portBAdapter struct{ f *FIFO }

// ReadPort reports the FT245 status lines mixed with the VIA's own
// currently-driven RD#/WR output bits.
func (a portBAdapter) ReadPort() byte {
	var value byte
	if a.f.FT245.RXF() {
		value |= PortBRXFn
	}
	if a.f.FT245.TXE() {
		value |= PortBTXEn
	}
	if a.f.FT245.PWREN() {
		value |= PortBPWRENn
	}
	value |= a.f.portBOutputs & (PortBRDn | PortBWR)
	return value
}

// WritePort drives FT245 RD#/WR from the newly-written Port B value,
// forwarding only the edges that actually changed.
func (a portBAdapter) WritePort(value byte) {
	old := a.f.portBOutputs
	a.f.portBOutputs = value

	rdN := value&PortBRDn != 0
	oldRDN := old&PortBRDn != 0
	if rdN != oldRDN {
		a.f.FT245.SetRD(!rdN)
	}

	wr := value&PortBWR != 0
	oldWR := old&PortBWR != 0
	if wr != oldWR {
		a.f.FT245.SetWR(wr)
	}
}

// ClockCycles advances both the FT245 and the VIA by n cycles.
func (f *FIFO) ClockCycles(n int) {
	f.FT245.ClockCycles(n)
	f.VIA.ClockCycles(n)
}

// USBSendToCPU enqueues a byte from the USB/PC side into the FT245's RX
// FIFO, for the CPU to read via the VIA.
func (f *FIFO) USBSendToCPU(data byte) bool { return f.FT245.USBReceive(data) }

// USBReceiveFromCPU dequeues the next byte the CPU sent (via the VIA) to
// the FT245's TX FIFO.
func (f *FIFO) USBReceiveFromCPU() (byte, bool) { return f.FT245.USBTransmit() }

// RXCount, TXCount report bytes waiting in each direction.
func (f *FIFO) RXCount() int { return f.FT245.RXFIFOCount() }
func (f *FIFO) TXCount() int { return f.FT245.TXFIFOCount() }

// RegisterRead/RegisterWrite implement mem.Device by forwarding straight
// to the glued VIA, the only chip the CPU addresses directly.
func (f *FIFO) RegisterRead(reg uint16) byte        { return f.VIA.RegisterRead(reg) }
func (f *FIFO) RegisterWrite(reg uint16, value byte) { f.VIA.RegisterWrite(reg, value) }
