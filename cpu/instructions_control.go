package cpu

import "w65816/mem"

func (p *Processor) opJMP() byte {
	p.PC = mem.Offset(p.effAddr)
	return 0
}

// opJMPLong handles JML (absolute long, 0x5C): both PC and PBR change.
func (p *Processor) opJMPLong() byte {
	p.PC = mem.Offset(p.effAddr)
	p.PBR = mem.Bank(p.effAddr)
	return 0
}

// opJMPLongIndirect handles JML [a] (0xDC): the pointer in bank 0 carries
// its own bank byte, which becomes the new PBR.
func (p *Processor) opJMPLongIndirect() byte {
	p.PC = mem.Offset(p.effAddr)
	p.PBR = mem.Bank(p.effAddr)
	return 0
}

func (p *Processor) opJSR() byte {
	p.pushWord(p.PC - 1)
	p.PC = mem.Offset(p.effAddr)
	return 0
}

// opJSRIndirectX handles JSR (a,X), 0xFC: always within the current PBR.
func (p *Processor) opJSRIndirectX() byte {
	p.pushWord(p.PC - 1)
	p.PC = mem.Offset(p.effAddr)
	return 0
}

func (p *Processor) opJSL() byte {
	p.pushByte(p.PBR)
	p.pushWord(p.PC - 1)
	p.PC = mem.Offset(p.effAddr)
	p.PBR = mem.Bank(p.effAddr)
	return 0
}

func (p *Processor) opRTS() byte {
	p.PC = p.popWord() + 1
	return 0
}

func (p *Processor) opRTL() byte {
	p.PC = p.popWord() + 1
	p.PBR = p.popByte()
	return 0
}

// opRTI reverses interrupt/BRK entry: pull P, then PC, and in native mode
// also pull PBR (emulation-mode entry never pushed one).
func (p *Processor) opRTI() byte {
	newP := p.popByte()
	if p.EmulationMode {
		newP |= FlagM | FlagX
	}
	p.P = newP
	p.InterruptsDisabled = p.GetFlag(FlagI)
	if p.GetFlag(FlagX) {
		p.forceNarrowIndexRegisters()
	}
	p.PC = p.popWord()
	if !p.EmulationMode {
		p.PBR = p.popByte()
	}
	return 0
}

func (p *Processor) opBRA() byte {
	p.PC = mem.Offset(p.effAddr)
	return 0
}

func (p *Processor) opBRL() byte {
	p.PC = mem.Offset(p.effAddr)
	return 0
}

func (p *Processor) branch(taken bool) byte {
	if !taken {
		return 0
	}
	p.PC = mem.Offset(p.effAddr)
	return 1
}

func (p *Processor) opBPL() byte { return p.branch(!p.GetFlag(FlagN)) }
func (p *Processor) opBMI() byte { return p.branch(p.GetFlag(FlagN)) }
func (p *Processor) opBVC() byte { return p.branch(!p.GetFlag(FlagV)) }
func (p *Processor) opBVS() byte { return p.branch(p.GetFlag(FlagV)) }
func (p *Processor) opBCC() byte { return p.branch(!p.GetFlag(FlagC)) }
func (p *Processor) opBCS() byte { return p.branch(p.GetFlag(FlagC)) }
func (p *Processor) opBNE() byte { return p.branch(!p.GetFlag(FlagZ)) }
func (p *Processor) opBEQ() byte { return p.branch(p.GetFlag(FlagZ)) }

// opBRK enters the software-break sequence: native mode pushes PBR, PC, P
// unchanged (native mode has no B bit); emulation mode skips PBR and
// forces P's pushed B bit to 1.
func (p *Processor) opBRK() byte {
	if !p.EmulationMode {
		p.pushByte(p.PBR)
	}
	p.pushWord(p.PC)
	pushed := p.P
	if p.EmulationMode {
		pushed |= FlagB
	}
	p.pushByte(pushed)
	p.SetFlag(FlagD, false)
	p.SetFlag(FlagI, true)
	p.PBR = 0
	vec := VectorNativeBRK
	if p.EmulationMode {
		vec = VectorEmulationBRK
	}
	p.PC = p.Bus.ReadWord(mem.Join(0, vec))
	return 0
}

// opCOP enters the coprocessor-break sequence, identical in shape to BRK
// but through the COP vector and without forcing the pushed B bit.
func (p *Processor) opCOP() byte {
	if !p.EmulationMode {
		p.pushByte(p.PBR)
	}
	p.pushWord(p.PC)
	p.pushByte(p.P)
	p.SetFlag(FlagD, false)
	p.SetFlag(FlagI, true)
	p.PBR = 0
	var vec uint16
	if p.EmulationMode {
		vec = VectorEmulationCOP
	} else {
		vec = VectorNativeCOP
	}
	p.PC = p.Bus.ReadWord(mem.Join(0, vec))
	return 0
}

func (p *Processor) opWAI() byte {
	p.Waiting = true
	return 0
}

func (p *Processor) opSTP() byte {
	p.Halted = true
	return 0
}

func (p *Processor) opNOP() byte { return 0 }

// opWDM consumes its signature byte (already read as the operand) and does
// nothing else; reserved for future expansion per the 816 datasheet.
func (p *Processor) opWDM() byte { return 0 }
