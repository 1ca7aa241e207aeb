// Package via implements the 65C22 Versatile Interface Adapter: two 8-bit
// ports with data-direction registers, two timers, a peripheral control
// register driving CA1/CA2/CB1/CB2 handshake lines, and the interrupt
// flag/enable pair that feeds a host IRQ line.
package via

// Register offsets, bank-relative (VIA occupies a 16-byte window).
const (
	RegORB  = 0x00
	RegORA  = 0x01
	RegDDRB = 0x02
	RegDDRA = 0x03
	RegT1CL = 0x04
	RegT1CH = 0x05
	RegT1LL = 0x06
	RegT1LH = 0x07
	RegT2CL = 0x08
	RegT2CH = 0x09
	RegSR   = 0x0a
	RegACR  = 0x0b
	RegPCR  = 0x0c
	RegIFR  = 0x0d
	RegIER  = 0x0e
	RegORANH = 0x0f
)

// Interrupt flag bits.
const (
	IntCA2 byte = 0x01
	IntCA1 byte = 0x02
	IntSR  byte = 0x04
	IntCB2 byte = 0x08
	IntCB1 byte = 0x10
	IntT2  byte = 0x20
	IntT1  byte = 0x40
	IntAny byte = 0x80
)

// Auxiliary Control Register bits.
const (
	ACRPALatch byte = 0x01
	ACRPBLatch byte = 0x02
	ACRSRMask  byte = 0x1c
	ACRT2Ctrl  byte = 0x20
	ACRT1Ctrl  byte = 0xc0

	ACRT1TimedInt      byte = 0x00
	ACRT1Continuous    byte = 0x40
	ACRT1TimedPB7      byte = 0x80
	ACRT1ContinuousPB7 byte = 0xc0
)

// PortIO is the optional external read/write hookup for a port, mirroring
// the original's function-pointer-plus-context pattern as a Go interface.
type PortIO interface {
	ReadPort() byte
	WritePort(value byte)
}

// VIA is one 65C22 chip.
type VIA struct {
	ORA, ORB byte
	IRA, IRB byte
	DDRA, DDRB byte

	T1Counter uint16
	T1Latch   uint16
	T2Counter uint16
	T2LatchLow byte
	T1Running bool
	T2Running bool
	T1PB7State bool

	// TODO: SR is readable/writable and clears IntSR on access, matching
	// hardware register semantics, but clockOne never advances it — none
	// of the 8 ACR shift modes actually shift a bit in or out over time.
	SR      byte
	SRCount byte

	ACR byte
	PCR byte
	IFR byte
	IER byte

	IRALatch byte
	IRBLatch byte

	CA1, CA2, CB1, CB2 bool

	PortA PortIO
	PortB PortIO

	IRQCallback func(state bool)
}

// New returns a VIA in its post-reset state.
func New() *VIA {
	v := &VIA{}
	v.Reset()
	return v
}

// Reset returns the VIA to power-on defaults: both timer counters at
// 0xFFFF and stopped, all control/flag registers cleared.
func (v *VIA) Reset() {
	v.ORA, v.ORB, v.IRA, v.IRB = 0, 0, 0, 0
	v.DDRA, v.DDRB = 0, 0
	v.T1Counter, v.T1Latch = 0xffff, 0xffff
	v.T2Counter, v.T2LatchLow = 0xffff, 0xff
	v.T1Running, v.T2Running, v.T1PB7State = false, false, false
	v.SR, v.SRCount = 0, 0
	v.ACR, v.PCR, v.IFR, v.IER = 0, 0, 0, 0
	v.IRALatch, v.IRBLatch = 0, 0
	v.CA1, v.CA2, v.CB1, v.CB2 = false, false, false, false
}

func (v *VIA) readPortA() byte {
	if v.PortA != nil {
		return v.PortA.ReadPort()
	}
	return v.IRA
}

func (v *VIA) readPortB() byte {
	if v.PortB != nil {
		return v.PortB.ReadPort()
	}
	return v.IRB
}

// RegisterRead implements mem.Device.
func (v *VIA) RegisterRead(reg uint16) byte {
	switch reg & 0x0f {
	case RegORB:
		input := v.readPortB()
		value := (v.ORB & v.DDRB) | (input &^ v.DDRB)
		v.IFR &^= IntCB1 | IntCB2
		v.updateIRQ()
		return value

	case RegORA, RegORANH:
		input := v.readPortA()
		if v.ACR&ACRPALatch != 0 && reg == RegORA {
			input = v.IRALatch
		}
		value := (v.ORA & v.DDRA) | (input &^ v.DDRA)
		if reg == RegORA {
			v.IFR &^= IntCA1 | IntCA2
			v.updateIRQ()
		}
		return value

	case RegDDRB:
		return v.DDRB
	case RegDDRA:
		return v.DDRA

	case RegT1CL:
		value := byte(v.T1Counter)
		v.IFR &^= IntT1
		v.updateIRQ()
		return value
	case RegT1CH:
		return byte(v.T1Counter >> 8)
	case RegT1LL:
		return byte(v.T1Latch)
	case RegT1LH:
		return byte(v.T1Latch >> 8)

	case RegT2CL:
		value := byte(v.T2Counter)
		v.IFR &^= IntT2
		v.updateIRQ()
		return value
	case RegT2CH:
		return byte(v.T2Counter >> 8)

	case RegSR:
		v.IFR &^= IntSR
		v.updateIRQ()
		return v.SR

	case RegACR:
		return v.ACR
	case RegPCR:
		return v.PCR

	case RegIFR:
		value := v.IFR
		if v.IFR&v.IER&0x7f != 0 {
			value |= IntAny
		}
		return value

	case RegIER:
		return v.IER | 0x80
	}
	return 0
}

// RegisterWrite implements mem.Device.
func (v *VIA) RegisterWrite(reg uint16, value byte) {
	switch reg & 0x0f {
	case RegORB:
		v.ORB = value
		if v.PortB != nil {
			v.PortB.WritePort(value & v.DDRB)
		}
		v.IFR &^= IntCB1 | IntCB2
		v.updateCB2Output()
		v.updateIRQ()

	case RegORA, RegORANH:
		v.ORA = value
		if v.PortA != nil {
			v.PortA.WritePort(value & v.DDRA)
		}
		if reg == RegORA {
			v.IFR &^= IntCA1 | IntCA2
			v.updateCA2Output()
			v.updateIRQ()
		}

	case RegDDRB:
		v.DDRB = value
		if v.PortB != nil {
			v.PortB.WritePort(v.ORB & v.DDRB)
		}

	case RegDDRA:
		v.DDRA = value
		if v.PortA != nil {
			v.PortA.WritePort(v.ORA & v.DDRA)
		}

	case RegT1CL, RegT1LL:
		v.T1Latch = (v.T1Latch &^ 0x00ff) | uint16(value)

	case RegT1CH:
		v.T1Latch = (v.T1Latch &^ 0xff00) | uint16(value)<<8
		v.T1Counter = v.T1Latch
		v.T1Running = true
		v.IFR &^= IntT1
		if v.ACR&0x80 != 0 {
			v.T1PB7State = true
		}
		v.updateIRQ()

	case RegT1LH:
		v.T1Latch = (v.T1Latch &^ 0xff00) | uint16(value)<<8
		v.IFR &^= IntT1
		v.updateIRQ()

	case RegT2CL:
		v.T2LatchLow = value

	case RegT2CH:
		v.T2Counter = uint16(value)<<8 | uint16(v.T2LatchLow)
		v.T2Running = true
		v.IFR &^= IntT2
		v.updateIRQ()

	case RegSR:
		v.SR = value
		v.IFR &^= IntSR
		v.updateIRQ()

	case RegACR:
		v.ACR = value

	case RegPCR:
		v.PCR = value
		v.updateCA2Output()
		v.updateCB2Output()

	case RegIFR:
		v.IFR &^= value & 0x7f
		v.updateIRQ()

	case RegIER:
		if value&0x80 != 0 {
			v.IER |= value & 0x7f
		} else {
			v.IER &^= value & 0x7f
		}
		v.updateIRQ()
	}
}

// ClockCycles advances both timers by n cycles, matching spec.md's
// per-cycle countdown semantics (via6522_clock run n times).
func (v *VIA) ClockCycles(n int) {
	for i := 0; i < n; i++ {
		v.clockOne()
	}
}

func (v *VIA) clockOne() {
	if v.T1Running {
		if v.T1Counter == 0 {
			v.IFR |= IntT1
			mode := v.ACR & ACRT1Ctrl
			if mode == ACRT1Continuous || mode == ACRT1ContinuousPB7 {
				v.T1Counter = v.T1Latch
			} else {
				v.T1Counter = 0xffff
			}
			if v.ACR&0x80 != 0 {
				v.T1PB7State = !v.T1PB7State
			}
			v.updateIRQ()
		} else {
			v.T1Counter--
		}
	}

	if v.T2Running {
		if v.T2Counter == 0 {
			v.IFR |= IntT2
			v.T2Running = false
			v.T2Counter = 0xffff
			v.updateIRQ()
		} else {
			v.T2Counter--
		}
	}
}

// SetCA1 drives the CA1 input line, triggering on the edge selected by PCR
// bit 0.
func (v *VIA) SetCA1(state bool) {
	old := v.CA1
	v.CA1 = state
	posEdge, negEdge := !old && state, old && !state
	triggered := negEdge
	if v.PCR&0x01 != 0 {
		triggered = posEdge
	}
	if !triggered {
		return
	}
	v.IFR |= IntCA1
	if v.ACR&ACRPALatch != 0 {
		v.IRALatch = v.readPortA()
	}
	v.updateIRQ()
}

// SetCA2Input drives CA2 as an input line; ignored when PCR selects an
// output mode for CA2.
func (v *VIA) SetCA2Input(state bool) {
	if (v.PCR>>1)&0x07 >= 4 {
		return
	}
	old := v.CA2
	v.CA2 = state
	posEdge, negEdge := !old && state, old && !state
	triggered := negEdge
	if v.PCR&0x04 != 0 {
		triggered = posEdge
	}
	if triggered {
		v.IFR |= IntCA2
		v.updateIRQ()
	}
}

// SetCB1 drives the CB1 input line, triggering on the edge selected by PCR
// bit 4.
func (v *VIA) SetCB1(state bool) {
	old := v.CB1
	v.CB1 = state
	posEdge, negEdge := !old && state, old && !state
	triggered := negEdge
	if v.PCR&0x10 != 0 {
		triggered = posEdge
	}
	if !triggered {
		return
	}
	v.IFR |= IntCB1
	if v.ACR&ACRPBLatch != 0 {
		v.IRBLatch = v.readPortB()
	}
	v.updateIRQ()
}

// SetCB2Input drives CB2 as an input line; ignored when PCR selects an
// output mode for CB2.
func (v *VIA) SetCB2Input(state bool) {
	if (v.PCR>>5)&0x07 >= 4 {
		return
	}
	old := v.CB2
	v.CB2 = state
	posEdge, negEdge := !old && state, old && !state
	triggered := negEdge
	if v.PCR&0x40 != 0 {
		triggered = posEdge
	}
	if triggered {
		v.IFR |= IntCB2
		v.updateIRQ()
	}
}

// IRQ reports whether any enabled interrupt is currently pending.
func (v *VIA) IRQ() bool {
	return v.IFR&v.IER&0x7f != 0
}

func (v *VIA) updateIRQ() {
	if v.IRQCallback != nil {
		v.IRQCallback(v.IRQ())
	}
}

func (v *VIA) updateCA2Output() {
	switch (v.PCR >> 1) & 0x07 {
	case 5, 6:
		v.CA2 = false
	case 7:
		v.CA2 = true
	}
}

func (v *VIA) updateCB2Output() {
	switch (v.PCR >> 5) & 0x07 {
	case 5, 6:
		v.CB2 = false
	case 7:
		v.CB2 = true
	}
}
