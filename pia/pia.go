// Package pia implements the 65C21 Peripheral Interface Adapter: two 8-bit
// ports each multiplexing a data register and a data-direction register
// behind the same bank-relative address (selected by a control-register
// bit), plus CA1/CA2 and CB1/CB2 handshake lines with independent
// interrupt flags surfaced through the control registers themselves.
package pia

// Register offsets, bank-relative (PIA occupies a 4-byte window).
const (
	RegPortAData = 0x00
	RegPortACtrl = 0x01
	RegPortBData = 0x02
	RegPortBCtrl = 0x03
)

// Control register (CRA/CRB) bits.
const (
	CRCA1LowToHigh byte = 0x01
	CRDDRAccess    byte = 0x04
	CRCA2ModeMask  byte = 0x38
	CRIRQA1Flag    byte = 0x40
	CRIRQA2Flag    byte = 0x80
)

// CA2/CB2 control modes (bits 3-5 of the control register).
const (
	CA2InputNeg    byte = 0x00
	CA2InputNegIRQ byte = 0x08
	CA2InputPos    byte = 0x10
	CA2InputPosIRQ byte = 0x18
	CA2OutputHS    byte = 0x20
	CA2OutputPulse byte = 0x28
	CA2OutputLow   byte = 0x30
	CA2OutputHigh  byte = 0x38
)

// PortIO is the optional external read/write hookup for a port.
type PortIO interface {
	ReadPort() byte
	WritePort(value byte)
}

// PIA is one 65C21 chip.
type PIA struct {
	PortAData, PortADDR, PortACtrl byte
	PortBData, PortBDDR, PortBCtrl byte

	CA1, CA2, CB1, CB2 bool

	IRQA1Flag, IRQA2Flag bool
	IRQB1Flag, IRQB2Flag bool

	PortA PortIO
	PortB PortIO

	IRQACallback func(state bool)
	IRQBCallback func(state bool)
}

// New returns a PIA in its post-reset state.
func New() *PIA {
	p := &PIA{}
	p.Reset()
	return p
}

// Reset returns the PIA to power-on defaults: every register and flag
// cleared.
func (p *PIA) Reset() {
	p.PortAData, p.PortADDR, p.PortACtrl = 0, 0, 0
	p.PortBData, p.PortBDDR, p.PortBCtrl = 0, 0, 0
	p.CA1, p.CA2, p.CB1, p.CB2 = false, false, false, false
	p.IRQA1Flag, p.IRQA2Flag = false, false
	p.IRQB1Flag, p.IRQB2Flag = false, false
}

func (p *PIA) readPortA() byte {
	if p.PortA != nil {
		return p.PortA.ReadPort()
	}
	return 0
}

func (p *PIA) readPortB() byte {
	if p.PortB != nil {
		return p.PortB.ReadPort()
	}
	return 0
}

// RegisterRead implements mem.Device.
func (p *PIA) RegisterRead(reg uint16) byte {
	switch reg & 0x03 {
	case RegPortAData:
		if p.PortACtrl&CRDDRAccess == 0 {
			return p.PortADDR
		}
		input := p.readPortA()
		value := (p.PortAData & p.PortADDR) | (input &^ p.PortADDR)
		p.IRQA1Flag, p.IRQA2Flag = false, false
		p.updateIRQA()
		if p.PortACtrl&CRCA2ModeMask == CA2OutputHS {
			p.CA2 = false
		}
		return value

	case RegPortACtrl:
		value := p.PortACtrl & 0x3f
		if p.IRQA1Flag {
			value |= CRIRQA1Flag
		}
		if p.IRQA2Flag {
			value |= CRIRQA2Flag
		}
		return value

	case RegPortBData:
		if p.PortBCtrl&CRDDRAccess == 0 {
			return p.PortBDDR
		}
		input := p.readPortB()
		value := (p.PortBData & p.PortBDDR) | (input &^ p.PortBDDR)
		p.IRQB1Flag, p.IRQB2Flag = false, false
		p.updateIRQB()
		if p.PortBCtrl&CRCA2ModeMask == CA2OutputHS {
			p.CB2 = false
		}
		return value

	case RegPortBCtrl:
		value := p.PortBCtrl & 0x3f
		if p.IRQB1Flag {
			value |= CRIRQA1Flag
		}
		if p.IRQB2Flag {
			value |= CRIRQA2Flag
		}
		return value
	}
	return 0
}

// RegisterWrite implements mem.Device.
func (p *PIA) RegisterWrite(reg uint16, value byte) {
	switch reg & 0x03 {
	case RegPortAData:
		if p.PortACtrl&CRDDRAccess != 0 {
			p.PortAData = value
			if p.PortA != nil {
				p.PortA.WritePort(value & p.PortADDR)
			}
			p.IRQA1Flag, p.IRQA2Flag = false, false
			p.updateIRQA()
			p.updateCA2Output()
		} else {
			p.PortADDR = value
			if p.PortA != nil {
				p.PortA.WritePort(p.PortAData & p.PortADDR)
			}
		}

	case RegPortACtrl:
		p.PortACtrl = value & 0x3f
		p.updateCA2Output()
		p.updateIRQA()

	case RegPortBData:
		if p.PortBCtrl&CRDDRAccess != 0 {
			p.PortBData = value
			if p.PortB != nil {
				p.PortB.WritePort(value & p.PortBDDR)
			}
			p.IRQB1Flag, p.IRQB2Flag = false, false
			p.updateIRQB()
			p.updateCB2Output()
		} else {
			p.PortBDDR = value
			if p.PortB != nil {
				p.PortB.WritePort(p.PortBData & p.PortBDDR)
			}
		}

	case RegPortBCtrl:
		p.PortBCtrl = value & 0x3f
		p.updateCB2Output()
		p.updateIRQB()
	}
}

// SetCA1 drives the CA1 input line.
func (p *PIA) SetCA1(state bool) {
	old := p.CA1
	p.CA1 = state
	posEdge, negEdge := !old && state, old && !state
	triggered := negEdge
	if p.PortACtrl&CRCA1LowToHigh != 0 {
		triggered = posEdge
	}
	if !triggered {
		return
	}
	p.IRQA1Flag = true
	p.updateIRQA()
	if p.PortACtrl&CRCA2ModeMask == CA2OutputHS {
		p.CA2 = true
	}
}

// SetCA2Input drives CA2 as an input line; a no-op when CA2 is configured
// as an output. When interrupts are not enabled for CA2 input, the line
// state is recorded but no flag is raised.
func (p *PIA) SetCA2Input(state bool) {
	mode := p.PortACtrl & CRCA2ModeMask
	if mode >= CA2OutputHS {
		return
	}
	old := p.CA2
	p.CA2 = state
	if mode&0x08 == 0 {
		return
	}
	posEdge, negEdge := !old && state, old && !state
	triggered := negEdge
	if mode&0x10 != 0 {
		triggered = posEdge
	}
	if triggered {
		p.IRQA2Flag = true
		p.updateIRQA()
	}
}

// SetCB1 drives the CB1 input line.
func (p *PIA) SetCB1(state bool) {
	old := p.CB1
	p.CB1 = state
	posEdge, negEdge := !old && state, old && !state
	triggered := negEdge
	if p.PortBCtrl&CRCA1LowToHigh != 0 {
		triggered = posEdge
	}
	if !triggered {
		return
	}
	p.IRQB1Flag = true
	p.updateIRQB()
	if p.PortBCtrl&CRCA2ModeMask == CA2OutputHS {
		p.CB2 = true
	}
}

// SetCB2Input drives CB2 as an input line; same gating as SetCA2Input.
func (p *PIA) SetCB2Input(state bool) {
	mode := p.PortBCtrl & CRCA2ModeMask
	if mode >= CA2OutputHS {
		return
	}
	old := p.CB2
	p.CB2 = state
	if mode&0x08 == 0 {
		return
	}
	posEdge, negEdge := !old && state, old && !state
	triggered := negEdge
	if mode&0x10 != 0 {
		triggered = posEdge
	}
	if triggered {
		p.IRQB2Flag = true
		p.updateIRQB()
	}
}

// IRQA reports whether either of CA1/CA2's interrupt flags is pending.
func (p *PIA) IRQA() bool { return p.IRQA1Flag || p.IRQA2Flag }

// IRQB reports whether either of CB1/CB2's interrupt flags is pending.
func (p *PIA) IRQB() bool { return p.IRQB1Flag || p.IRQB2Flag }

func (p *PIA) updateIRQA() {
	if p.IRQACallback != nil {
		p.IRQACallback(p.IRQA())
	}
}

func (p *PIA) updateIRQB() {
	if p.IRQBCallback != nil {
		p.IRQBCallback(p.IRQB())
	}
}

func (p *PIA) updateCA2Output() {
	switch p.PortACtrl & CRCA2ModeMask {
	case CA2OutputPulse, CA2OutputLow:
		p.CA2 = false
	case CA2OutputHigh:
		p.CA2 = true
	}
}

func (p *PIA) updateCB2Output() {
	switch p.PortBCtrl & CRCA2ModeMask {
	case CA2OutputPulse, CA2OutputLow:
		p.CB2 = false
	case CA2OutputHigh:
		p.CB2 = true
	}
}
