package cpu

import "w65816/mem"

// AddrMode names one of the 65816's effective-address recipes: beyond the
// 6502's 13 modes, the 816 adds long (24-bit), stack-relative, block-move,
// and indirect-long modes.
type AddrMode int

const (
	ModeImplied     AddrMode = iota
	ModeAccumulator          // operate on A directly
	ModeImmediate            // operand is the value itself, width-sensitive

	ModeDirectPage
	ModeDirectPageX
	ModeDirectPageY
	ModeDirectIndirect            // (d)
	ModeDirectIndexedIndirect     // (d,X)
	ModeDirectIndirectIndexed     // (d),Y
	ModeDirectIndirectLong        // [d]
	ModeDirectIndirectLongIndexed // [d],Y

	ModeAbsolute
	ModeAbsoluteX
	ModeAbsoluteY
	ModeAbsoluteLong
	ModeAbsoluteLongX
	ModeAbsoluteIndirect    // (a), JMP only
	ModeAbsoluteIndirectLong // [a], JML only
	ModeAbsoluteIndirectX    // (a,X), JMP/JSR only

	ModeStackRelative                 // d,S
	ModeStackRelativeIndirectIndexed // (d,S),Y

	ModePCRelative     // r, conditional branches
	ModePCRelativeLong // rl, BRL

	ModeBlockMove // MVN/MVP
)

// AddressingTag is a bit in the §3.4 addressing-mode tag set, carried in
// Opcode.Tags purely as descriptive metadata (e.g. for a host-side
// disassembler); the CPU itself dispatches on AddrMode, not on tags.
type AddressingTag uint32

const (
	TagImplied AddressingTag = 1 << iota
	TagDirectPage
	TagImmediate
	TagIndirect
	TagIndexedX
	TagIndexedY
	TagAbsolute
	TagAbsoluteLong
	TagIndexedLong
	TagPCRelative
	TagStackRelative
	TagPCRelativeLong
	TagBlockMoveAddress
	TagIndirectLong
)

// modeTags maps each AddrMode to its descriptive tag combination.
var modeTags = map[AddrMode]AddressingTag{
	ModeImplied:                       TagImplied,
	ModeAccumulator:                   TagImplied,
	ModeImmediate:                     TagImmediate,
	ModeDirectPage:                    TagDirectPage,
	ModeDirectPageX:                   TagDirectPage | TagIndexedX,
	ModeDirectPageY:                   TagDirectPage | TagIndexedY,
	ModeDirectIndirect:                TagDirectPage | TagIndirect,
	ModeDirectIndexedIndirect:         TagDirectPage | TagIndirect | TagIndexedX,
	ModeDirectIndirectIndexed:         TagDirectPage | TagIndirect | TagIndexedY,
	ModeDirectIndirectLong:            TagDirectPage | TagIndirectLong,
	ModeDirectIndirectLongIndexed:     TagDirectPage | TagIndirectLong | TagIndexedY,
	ModeAbsolute:                      TagAbsolute,
	ModeAbsoluteX:                     TagAbsolute | TagIndexedX,
	ModeAbsoluteY:                     TagAbsolute | TagIndexedY,
	ModeAbsoluteLong:                  TagAbsoluteLong,
	ModeAbsoluteLongX:                 TagAbsoluteLong | TagIndexedLong,
	ModeAbsoluteIndirect:              TagAbsolute | TagIndirect,
	ModeAbsoluteIndirectLong:          TagAbsolute | TagIndirectLong,
	ModeAbsoluteIndirectX:             TagAbsolute | TagIndirect | TagIndexedX,
	ModeStackRelative:                 TagStackRelative,
	ModeStackRelativeIndirectIndexed: TagStackRelative | TagIndirect | TagIndexedY,
	ModePCRelative:                    TagPCRelative,
	ModePCRelativeLong:                TagPCRelativeLong,
	ModeBlockMove:                     TagBlockMoveAddress,
}

// dpWrap adds a bank-0 offset to DP and wraps to 16 bits, per the Direct
// Page recipes of spec.md §4.1.2.
func (p *Processor) dpWrap(offset uint16) uint16 {
	return p.DP + offset
}

// stackRelOffset wraps an SP+d stack-relative offset. In emulation mode
// the page-1 constraint is carried through; in native mode it is a plain
// 16-bit wrap.
func (p *Processor) stackRelOffset(d byte) uint16 {
	if p.EmulationMode {
		return 0x0100 | uint16(byte(p.SP)+d)
	}
	return p.SP + uint16(d)
}

// resolve computes the effective address for the processor's current
// decode state (argOne/argTwo/mode), as set by the fetch/decode step.
// Modes with no memory operand (Implied, Accumulator, Immediate) do not
// call this; their handlers read argOne/Accumulator directly.
func (p *Processor) resolve() uint32 {
	switch p.mode {
	case ModeDirectPage:
		return mem.Join(0, p.dpWrap(p.argOne))
	case ModeDirectPageX:
		return mem.Join(0, p.dpWrap(p.argOne)+p.GetX())
	case ModeDirectPageY:
		return mem.Join(0, p.dpWrap(p.argOne)+p.GetY())

	case ModeDirectIndirect:
		ptr := p.Bus.ReadWord(mem.Join(0, p.dpWrap(p.argOne)))
		return mem.Join(p.DBR, ptr)
	case ModeDirectIndexedIndirect:
		ptr := p.Bus.ReadWord(mem.Join(0, p.dpWrap(p.argOne)+p.GetX()))
		return mem.Join(p.DBR, ptr)
	case ModeDirectIndirectIndexed:
		ptr := p.Bus.ReadWord(mem.Join(0, p.dpWrap(p.argOne)))
		return mem.Join(p.DBR, ptr+p.GetY())
	case ModeDirectIndirectLong:
		return mem.Join(p.directIndirectLongBank(), p.directIndirectLongOffset())
	case ModeDirectIndirectLongIndexed:
		return mem.Join(p.directIndirectLongBank(), p.directIndirectLongOffset()+p.GetY())

	case ModeAbsolute:
		return mem.Join(p.DBR, p.argOne)
	case ModeAbsoluteX:
		return mem.Join(p.DBR, p.argOne+p.GetX())
	case ModeAbsoluteY:
		return mem.Join(p.DBR, p.argOne+p.GetY())
	case ModeAbsoluteLong:
		return mem.Join(p.argTwo, p.argOne)
	case ModeAbsoluteLongX:
		return mem.Join(p.argTwo, p.argOne+p.GetX())
	case ModeAbsoluteIndirect:
		ptr := p.Bus.ReadWord(mem.Join(0, p.argOne))
		return mem.Join(p.PBR, ptr)
	case ModeAbsoluteIndirectLong:
		lo := p.Bus.ReadByte(mem.Join(0, p.argOne))
		hi := p.Bus.ReadByte(mem.Join(0, p.argOne+1))
		bank := p.Bus.ReadByte(mem.Join(0, p.argOne+2))
		return mem.Join(bank, uint16(hi)<<8|uint16(lo))
	case ModeAbsoluteIndirectX:
		ptr := p.Bus.ReadWord(mem.Join(p.PBR, p.argOne+p.GetX()))
		return mem.Join(p.PBR, ptr)

	case ModeStackRelative:
		return mem.Join(0, p.stackRelOffset(byte(p.argOne)))
	case ModeStackRelativeIndirectIndexed:
		ptr := p.Bus.ReadWord(mem.Join(0, p.stackRelOffset(byte(p.argOne))))
		return mem.Join(p.DBR, ptr+p.GetY())

	case ModePCRelative:
		rel := int8(byte(p.argOne))
		return mem.Join(p.PBR, uint16(int32(p.PC)+int32(rel)))
	case ModePCRelativeLong:
		rel := int16(p.argOne)
		return mem.Join(p.PBR, uint16(int32(p.PC)+int32(rel)))
	}
	return 0
}

// directIndirectLongOffset reads the 16-bit address half of a DP
// indirect-long pointer.
func (p *Processor) directIndirectLongOffset() uint16 {
	base := mem.Join(0, p.dpWrap(p.argOne))
	return p.Bus.ReadWord(base)
}

// directIndirectLongBank reads the bank byte of a DP indirect-long
// pointer, stored immediately after its 16-bit address.
func (p *Processor) directIndirectLongBank() byte {
	base := mem.Join(0, p.dpWrap(p.argOne))
	return p.Bus.ReadByte(base + 2)
}
