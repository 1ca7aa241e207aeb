package cpu

import "w65816/mem"

// blockMove runs an entire MVN/MVP to completion in one call rather than
// re-executing the opcode byte-by-byte the way real hardware does; no
// cycle-exact timing is modeled for it (only the Opcode.Cycles base cost is
// charged). dir is +1 for MVN (increment), -1 for MVP (decrement) — the
// direction this package resolves opposite to some published descriptions
// of the instruction, matching the corrected semantics this emulator
// targets: MVN increments, MVP decrements.
func (p *Processor) blockMove(dir int) byte {
	destBank := byte(p.argOne)
	srcBank := p.argTwo
	p.DBR = destBank

	for {
		v := p.Bus.ReadByte(mem.Join(srcBank, p.GetX()))
		p.Bus.WriteByte(mem.Join(destBank, p.GetY()), v)
		if dir > 0 {
			p.SetX(p.GetX() + 1)
			p.SetY(p.GetY() + 1)
		} else {
			p.SetX(p.GetX() - 1)
			p.SetY(p.GetY() - 1)
		}
		p.A--
		if p.A == 0xffff {
			break
		}
	}
	return 0
}

func (p *Processor) opMVN() byte { return p.blockMove(+1) }
func (p *Processor) opMVP() byte { return p.blockMove(-1) }
