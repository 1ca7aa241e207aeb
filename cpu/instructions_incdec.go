package cpu

func (p *Processor) opINCAcc() byte {
	width8 := p.mWidth8()
	v := p.GetA() + 1
	p.SetA(v)
	p.setNZWidth(p.GetA(), width8)
	return 0
}

func (p *Processor) opDECAcc() byte {
	width8 := p.mWidth8()
	v := p.GetA() - 1
	p.SetA(v)
	p.setNZWidth(p.GetA(), width8)
	return 0
}

func (p *Processor) opINCMem() byte {
	width8 := p.mWidth8()
	v := p.loadOperand(width8) + 1
	p.storeOperand(v, width8)
	p.setNZWidth(v, width8)
	return 0
}

func (p *Processor) opDECMem() byte {
	width8 := p.mWidth8()
	v := p.loadOperand(width8) - 1
	p.storeOperand(v, width8)
	p.setNZWidth(v, width8)
	return 0
}

func (p *Processor) opINX() byte {
	width8 := p.xWidth8()
	p.SetX(p.GetX() + 1)
	p.setNZWidth(p.GetX(), width8)
	return 0
}

func (p *Processor) opDEX() byte {
	width8 := p.xWidth8()
	p.SetX(p.GetX() - 1)
	p.setNZWidth(p.GetX(), width8)
	return 0
}

func (p *Processor) opINY() byte {
	width8 := p.xWidth8()
	p.SetY(p.GetY() + 1)
	p.setNZWidth(p.GetY(), width8)
	return 0
}

func (p *Processor) opDEY() byte {
	width8 := p.xWidth8()
	p.SetY(p.GetY() - 1)
	p.setNZWidth(p.GetY(), width8)
	return 0
}
