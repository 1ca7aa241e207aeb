package cpu

func (p *Processor) opLDA() byte {
	v := p.loadOperand(p.mWidth8())
	p.SetA(v)
	p.setNZWidth(v, p.mWidth8())
	return 0
}

func (p *Processor) opLDX() byte {
	v := p.loadOperand(p.xWidth8())
	p.SetX(v)
	p.setNZWidth(v, p.xWidth8())
	return 0
}

func (p *Processor) opLDY() byte {
	v := p.loadOperand(p.xWidth8())
	p.SetY(v)
	p.setNZWidth(v, p.xWidth8())
	return 0
}

func (p *Processor) opSTA() byte {
	p.storeOperand(p.GetA(), p.mWidth8())
	return 0
}

func (p *Processor) opSTX() byte {
	p.storeOperand(p.GetX(), p.xWidth8())
	return 0
}

func (p *Processor) opSTY() byte {
	p.storeOperand(p.GetY(), p.xWidth8())
	return 0
}

func (p *Processor) opSTZ() byte {
	p.storeOperand(0, p.mWidth8())
	return 0
}
