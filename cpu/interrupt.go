package cpu

import "w65816/mem"

// serviceInterrupt runs the common hardware-interrupt entry sequence:
// native mode pushes PBR, both modes push PC then P, disable further IRQs,
// clear decimal, and load PC from the bank-0 vector for the current E mode.
// Unlike BRK/COP, a hardware interrupt pushes the B-position bit as 0 in
// emulation mode; native mode has no B bit to force either way.
func (p *Processor) serviceInterrupt(nativeVec, emulationVec uint16) {
	if !p.EmulationMode {
		p.pushByte(p.PBR)
	}
	p.pushWord(p.PC)
	pushed := p.P
	if p.EmulationMode {
		pushed &^= FlagB
	}
	p.pushByte(pushed)
	p.SetFlag(FlagI, true)
	p.SetFlag(FlagD, false)
	p.PBR = 0
	vec := nativeVec
	if p.EmulationMode {
		vec = emulationVec
	}
	p.PC = p.Bus.ReadWord(mem.Join(0, vec))
}

// IRQ requests a maskable interrupt. A pending IRQ always wakes the
// processor from WAI, but is only actually serviced (vector fetched) if
// interrupts are currently enabled.
func (p *Processor) IRQ() {
	if p.Halted {
		return
	}
	if p.Waiting {
		p.Waiting = false
	}
	if p.InterruptsDisabled {
		return
	}
	p.serviceInterrupt(VectorNativeIRQ, VectorEmulationIRQ)
}

// NMI requests a non-maskable interrupt: always serviced (and always wakes
// WAI), regardless of the I flag.
func (p *Processor) NMI() {
	if p.Halted {
		return
	}
	if p.Waiting {
		p.Waiting = false
	}
	p.serviceInterrupt(VectorNativeNMI, VectorEmulationNMI)
}
