package cpu

import "w65816/mem"

// StepResult describes one completed Step call, sufficient for a host to
// drive a disassembler or trace log without re-decoding the instruction.
type StepResult struct {
	Address      uint32
	Opcode       byte
	Mnemonic     string
	OperandSize  int
	Cycles       int
	Halted       bool
	Waiting      bool
}

// modeHasOperand reports whether mode resolves to a memory effective
// address via resolve(); Implied/Accumulator/Immediate/BlockMove are
// handled directly by their instruction handlers instead.
func modeHasOperand(mode AddrMode) bool {
	switch mode {
	case ModeImplied, ModeAccumulator, ModeImmediate, ModeBlockMove:
		return false
	default:
		return true
	}
}

// Step fetches, decodes, and executes exactly one instruction, advancing PC
// (and PBR, for long jumps/calls) as a side effect. It does not itself
// clock peripherals; a host composing a Processor with peripherals (see
// package machine) is responsible for that after each Step.
func (p *Processor) Step() StepResult {
	if p.Halted {
		return StepResult{Halted: true}
	}
	if p.Waiting {
		return StepResult{Waiting: true}
	}

	startAddr := mem.Join(p.PBR, p.PC)
	opByte := p.Bus.ReadByte(startAddr)
	p.PC++

	op := &Opcodes[opByte]
	p.mode = op.Mode
	p.extraCyc = 0

	size := op.operandSize(p)
	switch op.Reader {
	case ReadNone:
	case Read8:
		p.argOne = uint16(p.Bus.ReadByte(mem.Join(p.PBR, p.PC)))
		p.PC++
	case Read16:
		p.argOne = p.Bus.ReadWord(mem.Join(p.PBR, p.PC))
		p.PC += 2
	case Read24:
		lo := p.Bus.ReadByte(mem.Join(p.PBR, p.PC))
		hi := p.Bus.ReadByte(mem.Join(p.PBR, p.PC+1))
		bank := p.Bus.ReadByte(mem.Join(p.PBR, p.PC+2))
		p.argOne = uint16(hi)<<8 | uint16(lo)
		p.argTwo = bank
		p.PC += 3
	case Read8Or16:
		if size == 1 {
			p.argOne = uint16(p.Bus.ReadByte(mem.Join(p.PBR, p.PC)))
			p.PC++
		} else {
			p.argOne = p.Bus.ReadWord(mem.Join(p.PBR, p.PC))
			p.PC += 2
		}
	case ReadBlockMove:
		// operand byte order: destination bank, then source bank.
		destBank := p.Bus.ReadByte(mem.Join(p.PBR, p.PC))
		srcBank := p.Bus.ReadByte(mem.Join(p.PBR, p.PC+1))
		p.argOne = uint16(destBank)
		p.argTwo = srcBank
		p.PC += 2
	}

	p.eaValid = modeHasOperand(op.Mode)
	if p.eaValid {
		p.effAddr = p.resolve()
	}

	extra := op.Handler(p)
	total := int(op.Cycles) + int(extra) + int(p.extraCyc)

	return StepResult{
		Address:     startAddr,
		Opcode:      opByte,
		Mnemonic:    op.Mnemonic,
		OperandSize: size,
		Cycles:      total,
	}
}
