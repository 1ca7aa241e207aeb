package cpu

import "w65816/mem"

func (p *Processor) opPHA() byte {
	if p.mWidth8() {
		p.pushByte(byte(p.GetA()))
	} else {
		p.pushWord(p.GetA())
	}
	return 0
}

func (p *Processor) opPLA() byte {
	width8 := p.mWidth8()
	var v uint16
	if width8 {
		v = uint16(p.popByte())
	} else {
		v = p.popWord()
	}
	p.SetA(v)
	p.setNZWidth(v, width8)
	return 0
}

func (p *Processor) opPHX() byte {
	if p.xWidth8() {
		p.pushByte(byte(p.GetX()))
	} else {
		p.pushWord(p.GetX())
	}
	return 0
}

func (p *Processor) opPLX() byte {
	width8 := p.xWidth8()
	var v uint16
	if width8 {
		v = uint16(p.popByte())
	} else {
		v = p.popWord()
	}
	p.SetX(v)
	p.setNZWidth(v, width8)
	return 0
}

func (p *Processor) opPHY() byte {
	if p.xWidth8() {
		p.pushByte(byte(p.GetY()))
	} else {
		p.pushWord(p.GetY())
	}
	return 0
}

func (p *Processor) opPLY() byte {
	width8 := p.xWidth8()
	var v uint16
	if width8 {
		v = uint16(p.popByte())
	} else {
		v = p.popWord()
	}
	p.SetY(v)
	p.setNZWidth(v, width8)
	return 0
}

// opPHP pushes P as-is; in emulation mode the B bit (sharing FlagX's
// position) is always set in P, so the pushed byte carries B=1.
func (p *Processor) opPHP() byte {
	p.pushByte(p.P)
	return 0
}

func (p *Processor) opPLP() byte {
	newP := p.popByte()
	if p.EmulationMode {
		newP |= FlagM | FlagX
	}
	p.P = newP
	p.InterruptsDisabled = p.GetFlag(FlagI)
	if p.GetFlag(FlagX) {
		p.forceNarrowIndexRegisters()
	}
	return 0
}

func (p *Processor) opPHB() byte {
	p.pushByte(p.DBR)
	return 0
}

func (p *Processor) opPLB() byte {
	p.DBR = p.popByte()
	p.setNZ8(p.DBR)
	return 0
}

func (p *Processor) opPHD() byte {
	p.pushWord(p.DP)
	return 0
}

func (p *Processor) opPLD() byte {
	p.DP = p.popWord()
	p.setNZ16(p.DP)
	return 0
}

func (p *Processor) opPHK() byte {
	p.pushByte(p.PBR)
	return 0
}

// opPEA pushes the 16-bit immediate operand directly.
func (p *Processor) opPEA() byte {
	p.pushWord(p.argOne)
	return 0
}

// opPEI pushes the 16-bit word stored at the direct-page pointer named by
// the operand (the pointer itself, not the data it points to).
func (p *Processor) opPEI() byte {
	ptr := p.Bus.ReadWord(mem.Join(0, p.dpWrap(p.argOne)))
	p.pushWord(ptr)
	return 0
}

// opPER pushes PC-relative effective address (bank-0 offset only).
func (p *Processor) opPER() byte {
	p.pushWord(mem.Offset(p.effAddr))
	return 0
}
