package cpu

func (p *Processor) opSEP() byte {
	p.SEP(byte(p.argOne))
	return 0
}

func (p *Processor) opREP() byte {
	p.REP(byte(p.argOne))
	return 0
}

func (p *Processor) opCLC() byte { p.SetFlag(FlagC, false); return 0 }
func (p *Processor) opSEC() byte { p.SetFlag(FlagC, true); return 0 }
func (p *Processor) opCLI() byte { p.SetFlag(FlagI, false); return 0 }
func (p *Processor) opSEI() byte { p.SetFlag(FlagI, true); return 0 }
func (p *Processor) opCLD() byte { p.SetFlag(FlagD, false); return 0 }
func (p *Processor) opSED() byte { p.SetFlag(FlagD, true); return 0 }
func (p *Processor) opCLV() byte { p.SetFlag(FlagV, false); return 0 }

func (p *Processor) opXCE() byte {
	p.XCE()
	return 0
}

// opXBA swaps A's high and low bytes, full 16 bits regardless of M width,
// and sets N/Z from the new low byte.
func (p *Processor) opXBA() byte {
	lo := byte(p.A)
	hi := byte(p.A >> 8)
	p.A = uint16(lo)<<8 | uint16(hi)
	p.setNZ8(byte(p.A))
	return 0
}

// opTCD transfers the full 16-bit A into D, regardless of M width.
func (p *Processor) opTCD() byte {
	p.DP = p.A
	p.setNZ16(p.DP)
	return 0
}

// opTDC transfers D into the full 16-bit A, regardless of M width.
func (p *Processor) opTDC() byte {
	p.A = p.DP
	p.setNZ16(p.DP)
	return 0
}

// opTCS transfers the full 16-bit A into SP; in emulation mode SP's high
// byte is forced to 0x01.
func (p *Processor) opTCS() byte {
	p.SP = p.A
	if p.EmulationMode {
		p.SP = 0x0100 | (p.SP & 0x00ff)
	}
	return 0
}

// opTSC transfers SP into the full 16-bit A, regardless of M width.
func (p *Processor) opTSC() byte {
	p.A = p.SP
	p.setNZ16(p.SP)
	return 0
}

func (p *Processor) opTAX() byte {
	width8 := p.xWidth8()
	p.SetX(p.GetA())
	p.setNZWidth(p.GetX(), width8)
	return 0
}

func (p *Processor) opTXA() byte {
	width8 := p.mWidth8()
	p.SetA(p.GetX())
	p.setNZWidth(p.GetA(), width8)
	return 0
}

func (p *Processor) opTAY() byte {
	width8 := p.xWidth8()
	p.SetY(p.GetA())
	p.setNZWidth(p.GetY(), width8)
	return 0
}

func (p *Processor) opTYA() byte {
	width8 := p.mWidth8()
	p.SetA(p.GetY())
	p.setNZWidth(p.GetA(), width8)
	return 0
}

func (p *Processor) opTSX() byte {
	width8 := p.xWidth8()
	p.SetX(p.SP)
	p.setNZWidth(p.GetX(), width8)
	return 0
}

// opTXS transfers X into SP verbatim; in emulation mode SP's high byte is
// forced to 0x01.
func (p *Processor) opTXS() byte {
	p.SP = p.GetX()
	if p.EmulationMode {
		p.SP = 0x0100 | (p.SP & 0x00ff)
	}
	return 0
}

func (p *Processor) opTXY() byte {
	width8 := p.xWidth8()
	p.SetY(p.GetX())
	p.setNZWidth(p.GetY(), width8)
	return 0
}

func (p *Processor) opTYX() byte {
	width8 := p.xWidth8()
	p.SetX(p.GetY())
	p.setNZWidth(p.GetX(), width8)
	return 0
}
