package cpu

// OperandReader selects how many operand bytes follow an opcode byte, and
// whether that count depends on the current M/X width. Mirrors the
// READ_8/READ_16/READ_24/READ_8_16/READ_BMA distinction of the reference
// opcode table this package is grounded on.
type OperandReader int

const (
	ReadNone      OperandReader = iota // implied, accumulator
	Read8                              // one operand byte
	Read16                             // two operand bytes
	Read24                             // three operand bytes (long address)
	Read8Or16                          // one byte if narrow, two if wide (immediate)
	ReadBlockMove                      // two operand bytes: destination bank, source bank
)

// SizeAdjust says whether an immediate opcode's operand width follows the
// M flag, the X flag, or is fixed regardless of width.
type SizeAdjust int

const (
	SizeBase SizeAdjust = iota // operand width is fixed by Reader alone
	SizeM                      // Read8Or16 width follows the M flag (A/memory immediates)
	SizeX                      // Read8Or16 width follows the X flag (X/Y immediates)
)

// Opcode is one entry of the 256-entry dispatch table. Every one of the
// 816's 256 byte values is a defined instruction, so the table is a plain
// array rather than a sparse map.
type Opcode struct {
	Mnemonic string
	Reader   OperandReader
	Adjust   SizeAdjust
	Mode     AddrMode
	Cycles   byte
	Handler  func(p *Processor) byte
}

// operandSize reports how many operand bytes follow this opcode, given the
// processor's current M/X widths.
func (o *Opcode) operandSize(p *Processor) int {
	switch o.Reader {
	case ReadNone:
		return 0
	case Read8:
		return 1
	case Read16:
		return 2
	case Read24:
		return 3
	case ReadBlockMove:
		return 2
	case Read8Or16:
		if o.Adjust == SizeX {
			if p.xWidth8() {
				return 1
			}
			return 2
		}
		if p.mWidth8() {
			return 1
		}
		return 2
	}
	return 0
}

// Opcodes is the exhaustive 256-entry dispatch table.
var Opcodes [256]Opcode

func init() {
	set := func(b byte, mnemonic string, reader OperandReader, adjust SizeAdjust, mode AddrMode, cycles byte, handler func(p *Processor) byte) {
		Opcodes[b] = Opcode{Mnemonic: mnemonic, Reader: reader, Adjust: adjust, Mode: mode, Cycles: cycles, Handler: handler}
	}

	set(0x00, "BRK", Read8, SizeBase, ModeImplied, 7, (*Processor).opBRK)
	set(0x01, "ORA", Read8, SizeBase, ModeDirectIndexedIndirect, 6, (*Processor).opORA)
	set(0x02, "COP", Read8, SizeBase, ModeImplied, 7, (*Processor).opCOP)
	set(0x03, "ORA", Read8, SizeBase, ModeStackRelative, 4, (*Processor).opORA)
	set(0x04, "TSB", Read8, SizeBase, ModeDirectPage, 5, (*Processor).opTSB)
	set(0x05, "ORA", Read8, SizeBase, ModeDirectPage, 3, (*Processor).opORA)
	set(0x06, "ASL", Read8, SizeBase, ModeDirectPage, 5, (*Processor).opASLMem)
	set(0x07, "ORA", Read8, SizeBase, ModeDirectIndirectLong, 6, (*Processor).opORA)
	set(0x08, "PHP", ReadNone, SizeBase, ModeImplied, 3, (*Processor).opPHP)
	set(0x09, "ORA", Read8Or16, SizeM, ModeImmediate, 2, (*Processor).opORA)
	set(0x0a, "ASL", ReadNone, SizeBase, ModeAccumulator, 2, (*Processor).opASLAcc)
	set(0x0b, "PHD", ReadNone, SizeBase, ModeImplied, 4, (*Processor).opPHD)
	set(0x0c, "TSB", Read16, SizeBase, ModeAbsolute, 6, (*Processor).opTSB)
	set(0x0d, "ORA", Read16, SizeBase, ModeAbsolute, 4, (*Processor).opORA)
	set(0x0e, "ASL", Read16, SizeBase, ModeAbsolute, 6, (*Processor).opASLMem)
	set(0x0f, "ORA", Read24, SizeBase, ModeAbsoluteLong, 5, (*Processor).opORA)
	set(0x10, "BPL", Read8, SizeBase, ModePCRelative, 2, (*Processor).opBPL)
	set(0x11, "ORA", Read8, SizeBase, ModeDirectIndirectIndexed, 5, (*Processor).opORA)
	set(0x12, "ORA", Read8, SizeBase, ModeDirectIndirect, 5, (*Processor).opORA)
	set(0x13, "ORA", Read8, SizeBase, ModeStackRelativeIndirectIndexed, 7, (*Processor).opORA)
	set(0x14, "TRB", Read8, SizeBase, ModeDirectPage, 5, (*Processor).opTRB)
	set(0x15, "ORA", Read8, SizeBase, ModeDirectPageX, 4, (*Processor).opORA)
	set(0x16, "ASL", Read8, SizeBase, ModeDirectPageX, 6, (*Processor).opASLMem)
	set(0x17, "ORA", Read8, SizeBase, ModeDirectIndirectLongIndexed, 6, (*Processor).opORA)
	set(0x18, "CLC", ReadNone, SizeBase, ModeImplied, 2, (*Processor).opCLC)
	set(0x19, "ORA", Read16, SizeBase, ModeAbsoluteY, 4, (*Processor).opORA)
	set(0x1a, "INC", ReadNone, SizeBase, ModeAccumulator, 2, (*Processor).opINCAcc)
	set(0x1b, "TCS", ReadNone, SizeBase, ModeImplied, 2, (*Processor).opTCS)
	set(0x1c, "TRB", Read16, SizeBase, ModeAbsolute, 6, (*Processor).opTRB)
	set(0x1d, "ORA", Read16, SizeBase, ModeAbsoluteX, 4, (*Processor).opORA)
	set(0x1e, "ASL", Read16, SizeBase, ModeAbsoluteX, 7, (*Processor).opASLMem)
	set(0x1f, "ORA", Read24, SizeBase, ModeAbsoluteLongX, 5, (*Processor).opORA)
	set(0x20, "JSR", Read16, SizeBase, ModeAbsolute, 6, (*Processor).opJSR)
	set(0x21, "AND", Read8, SizeBase, ModeDirectIndexedIndirect, 6, (*Processor).opAND)
	set(0x22, "JSL", Read24, SizeBase, ModeAbsoluteLong, 8, (*Processor).opJSL)
	set(0x23, "AND", Read8, SizeBase, ModeStackRelative, 4, (*Processor).opAND)
	set(0x24, "BIT", Read8, SizeBase, ModeDirectPage, 3, (*Processor).opBIT)
	set(0x25, "AND", Read8, SizeBase, ModeDirectPage, 3, (*Processor).opAND)
	set(0x26, "ROL", Read8, SizeBase, ModeDirectPage, 5, (*Processor).opROLMem)
	set(0x27, "AND", Read8, SizeBase, ModeDirectIndirectLong, 6, (*Processor).opAND)
	set(0x28, "PLP", ReadNone, SizeBase, ModeImplied, 4, (*Processor).opPLP)
	set(0x29, "AND", Read8Or16, SizeM, ModeImmediate, 2, (*Processor).opAND)
	set(0x2a, "ROL", ReadNone, SizeBase, ModeAccumulator, 2, (*Processor).opROLAcc)
	set(0x2b, "PLD", ReadNone, SizeBase, ModeImplied, 5, (*Processor).opPLD)
	set(0x2c, "BIT", Read16, SizeBase, ModeAbsolute, 4, (*Processor).opBIT)
	set(0x2d, "AND", Read16, SizeBase, ModeAbsolute, 4, (*Processor).opAND)
	set(0x2e, "ROL", Read16, SizeBase, ModeAbsolute, 6, (*Processor).opROLMem)
	set(0x2f, "AND", Read24, SizeBase, ModeAbsoluteLong, 5, (*Processor).opAND)
	set(0x30, "BMI", Read8, SizeBase, ModePCRelative, 2, (*Processor).opBMI)
	set(0x31, "AND", Read8, SizeBase, ModeDirectIndirectIndexed, 5, (*Processor).opAND)
	set(0x32, "AND", Read8, SizeBase, ModeDirectIndirect, 5, (*Processor).opAND)
	set(0x33, "AND", Read8, SizeBase, ModeStackRelativeIndirectIndexed, 7, (*Processor).opAND)
	set(0x34, "BIT", Read8, SizeBase, ModeDirectPageX, 4, (*Processor).opBIT)
	set(0x35, "AND", Read8, SizeBase, ModeDirectPageX, 4, (*Processor).opAND)
	set(0x36, "ROL", Read8, SizeBase, ModeDirectPageX, 6, (*Processor).opROLMem)
	set(0x37, "AND", Read8, SizeBase, ModeDirectIndirectLongIndexed, 6, (*Processor).opAND)
	set(0x38, "SEC", ReadNone, SizeBase, ModeImplied, 2, (*Processor).opSEC)
	set(0x39, "AND", Read16, SizeBase, ModeAbsoluteY, 4, (*Processor).opAND)
	set(0x3a, "DEC", ReadNone, SizeBase, ModeAccumulator, 2, (*Processor).opDECAcc)
	set(0x3b, "TSC", ReadNone, SizeBase, ModeImplied, 2, (*Processor).opTSC)
	set(0x3c, "BIT", Read16, SizeBase, ModeAbsoluteX, 4, (*Processor).opBIT)
	set(0x3d, "AND", Read16, SizeBase, ModeAbsoluteX, 4, (*Processor).opAND)
	set(0x3e, "ROL", Read16, SizeBase, ModeAbsoluteX, 7, (*Processor).opROLMem)
	set(0x3f, "AND", Read24, SizeBase, ModeAbsoluteLongX, 5, (*Processor).opAND)
	set(0x40, "RTI", ReadNone, SizeBase, ModeImplied, 6, (*Processor).opRTI)
	set(0x41, "EOR", Read8, SizeBase, ModeDirectIndexedIndirect, 6, (*Processor).opEOR)
	set(0x42, "WDM", Read8, SizeBase, ModeImplied, 2, (*Processor).opWDM)
	set(0x43, "EOR", Read8, SizeBase, ModeStackRelative, 4, (*Processor).opEOR)
	set(0x44, "MVP", ReadBlockMove, SizeBase, ModeBlockMove, 7, (*Processor).opMVP)
	set(0x45, "EOR", Read8, SizeBase, ModeDirectPage, 3, (*Processor).opEOR)
	set(0x46, "LSR", Read8, SizeBase, ModeDirectPage, 5, (*Processor).opLSRMem)
	set(0x47, "EOR", Read8, SizeBase, ModeDirectIndirectLong, 6, (*Processor).opEOR)
	set(0x48, "PHA", ReadNone, SizeBase, ModeImplied, 3, (*Processor).opPHA)
	set(0x49, "EOR", Read8Or16, SizeM, ModeImmediate, 2, (*Processor).opEOR)
	set(0x4a, "LSR", ReadNone, SizeBase, ModeAccumulator, 2, (*Processor).opLSRAcc)
	set(0x4b, "PHK", ReadNone, SizeBase, ModeImplied, 3, (*Processor).opPHK)
	set(0x4c, "JMP", Read16, SizeBase, ModeAbsolute, 3, (*Processor).opJMP)
	set(0x4d, "EOR", Read16, SizeBase, ModeAbsolute, 4, (*Processor).opEOR)
	set(0x4e, "LSR", Read16, SizeBase, ModeAbsolute, 6, (*Processor).opLSRMem)
	set(0x4f, "EOR", Read24, SizeBase, ModeAbsoluteLong, 5, (*Processor).opEOR)
	set(0x50, "BVC", Read8, SizeBase, ModePCRelative, 2, (*Processor).opBVC)
	set(0x51, "EOR", Read8, SizeBase, ModeDirectIndirectIndexed, 5, (*Processor).opEOR)
	set(0x52, "EOR", Read8, SizeBase, ModeDirectIndirect, 5, (*Processor).opEOR)
	set(0x53, "EOR", Read8, SizeBase, ModeStackRelativeIndirectIndexed, 7, (*Processor).opEOR)
	set(0x54, "MVN", ReadBlockMove, SizeBase, ModeBlockMove, 7, (*Processor).opMVN)
	set(0x55, "EOR", Read8, SizeBase, ModeDirectPageX, 4, (*Processor).opEOR)
	set(0x56, "LSR", Read8, SizeBase, ModeDirectPageX, 6, (*Processor).opLSRMem)
	set(0x57, "EOR", Read8, SizeBase, ModeDirectIndirectLongIndexed, 6, (*Processor).opEOR)
	set(0x58, "CLI", ReadNone, SizeBase, ModeImplied, 2, (*Processor).opCLI)
	set(0x59, "EOR", Read16, SizeBase, ModeAbsoluteY, 4, (*Processor).opEOR)
	set(0x5a, "PHY", ReadNone, SizeBase, ModeImplied, 3, (*Processor).opPHY)
	set(0x5b, "TCD", ReadNone, SizeBase, ModeImplied, 2, (*Processor).opTCD)
	set(0x5c, "JMP", Read24, SizeBase, ModeAbsoluteLong, 4, (*Processor).opJMPLong)
	set(0x5d, "EOR", Read16, SizeBase, ModeAbsoluteX, 4, (*Processor).opEOR)
	set(0x5e, "LSR", Read16, SizeBase, ModeAbsoluteX, 7, (*Processor).opLSRMem)
	set(0x5f, "EOR", Read24, SizeBase, ModeAbsoluteLongX, 5, (*Processor).opEOR)
	set(0x60, "RTS", ReadNone, SizeBase, ModeImplied, 6, (*Processor).opRTS)
	set(0x61, "ADC", Read8, SizeBase, ModeDirectIndexedIndirect, 6, (*Processor).opADC)
	set(0x62, "PER", Read16, SizeBase, ModePCRelativeLong, 6, (*Processor).opPER)
	set(0x63, "ADC", Read8, SizeBase, ModeStackRelative, 4, (*Processor).opADC)
	set(0x64, "STZ", Read8, SizeBase, ModeDirectPage, 3, (*Processor).opSTZ)
	set(0x65, "ADC", Read8, SizeBase, ModeDirectPage, 3, (*Processor).opADC)
	set(0x66, "ROR", Read8, SizeBase, ModeDirectPage, 5, (*Processor).opRORMem)
	set(0x67, "ADC", Read8, SizeBase, ModeDirectIndirectLong, 6, (*Processor).opADC)
	set(0x68, "PLA", ReadNone, SizeBase, ModeImplied, 4, (*Processor).opPLA)
	set(0x69, "ADC", Read8Or16, SizeM, ModeImmediate, 2, (*Processor).opADC)
	set(0x6a, "ROR", ReadNone, SizeBase, ModeAccumulator, 2, (*Processor).opRORAcc)
	set(0x6b, "RTL", ReadNone, SizeBase, ModeImplied, 6, (*Processor).opRTL)
	set(0x6c, "JMP", Read16, SizeBase, ModeAbsoluteIndirect, 5, (*Processor).opJMP)
	set(0x6d, "ADC", Read16, SizeBase, ModeAbsolute, 4, (*Processor).opADC)
	set(0x6e, "ROR", Read16, SizeBase, ModeAbsolute, 6, (*Processor).opRORMem)
	set(0x6f, "ADC", Read24, SizeBase, ModeAbsoluteLong, 5, (*Processor).opADC)
	set(0x70, "BVS", Read8, SizeBase, ModePCRelative, 2, (*Processor).opBVS)
	set(0x71, "ADC", Read8, SizeBase, ModeDirectIndirectIndexed, 5, (*Processor).opADC)
	set(0x72, "ADC", Read8, SizeBase, ModeDirectIndirect, 5, (*Processor).opADC)
	set(0x73, "ADC", Read8, SizeBase, ModeStackRelativeIndirectIndexed, 7, (*Processor).opADC)
	set(0x74, "STZ", Read8, SizeBase, ModeDirectPageX, 4, (*Processor).opSTZ)
	set(0x75, "ADC", Read8, SizeBase, ModeDirectPageX, 4, (*Processor).opADC)
	set(0x76, "ROR", Read8, SizeBase, ModeDirectPageX, 6, (*Processor).opRORMem)
	set(0x77, "ADC", Read8, SizeBase, ModeDirectIndirectLongIndexed, 6, (*Processor).opADC)
	set(0x78, "SEI", ReadNone, SizeBase, ModeImplied, 2, (*Processor).opSEI)
	set(0x79, "ADC", Read16, SizeBase, ModeAbsoluteY, 4, (*Processor).opADC)
	set(0x7a, "PLY", ReadNone, SizeBase, ModeImplied, 4, (*Processor).opPLY)
	set(0x7b, "TDC", ReadNone, SizeBase, ModeImplied, 2, (*Processor).opTDC)
	set(0x7c, "JMP", Read16, SizeBase, ModeAbsoluteIndirectX, 6, (*Processor).opJMP)
	set(0x7d, "ADC", Read16, SizeBase, ModeAbsoluteX, 4, (*Processor).opADC)
	set(0x7e, "ROR", Read16, SizeBase, ModeAbsoluteX, 7, (*Processor).opRORMem)
	set(0x7f, "ADC", Read24, SizeBase, ModeAbsoluteLongX, 5, (*Processor).opADC)
	set(0x80, "BRA", Read8, SizeBase, ModePCRelative, 3, (*Processor).opBRA)
	set(0x81, "STA", Read8, SizeBase, ModeDirectIndexedIndirect, 6, (*Processor).opSTA)
	set(0x82, "BRL", Read16, SizeBase, ModePCRelativeLong, 4, (*Processor).opBRL)
	set(0x83, "STA", Read8, SizeBase, ModeStackRelative, 4, (*Processor).opSTA)
	set(0x84, "STY", Read8, SizeBase, ModeDirectPage, 3, (*Processor).opSTY)
	set(0x85, "STA", Read8, SizeBase, ModeDirectPage, 3, (*Processor).opSTA)
	set(0x86, "STX", Read8, SizeBase, ModeDirectPage, 3, (*Processor).opSTX)
	set(0x87, "STA", Read8, SizeBase, ModeDirectIndirectLong, 6, (*Processor).opSTA)
	set(0x88, "DEY", ReadNone, SizeBase, ModeImplied, 2, (*Processor).opDEY)
	set(0x89, "BIT", Read8Or16, SizeM, ModeImmediate, 2, (*Processor).opBITImm)
	set(0x8a, "TXA", ReadNone, SizeBase, ModeImplied, 2, (*Processor).opTXA)
	set(0x8b, "PHB", ReadNone, SizeBase, ModeImplied, 3, (*Processor).opPHB)
	set(0x8c, "STY", Read16, SizeBase, ModeAbsolute, 4, (*Processor).opSTY)
	set(0x8d, "STA", Read16, SizeBase, ModeAbsolute, 4, (*Processor).opSTA)
	set(0x8e, "STX", Read16, SizeBase, ModeAbsolute, 4, (*Processor).opSTX)
	set(0x8f, "STA", Read24, SizeBase, ModeAbsoluteLong, 5, (*Processor).opSTA)
	set(0x90, "BCC", Read8, SizeBase, ModePCRelative, 2, (*Processor).opBCC)
	set(0x91, "STA", Read8, SizeBase, ModeDirectIndirectIndexed, 6, (*Processor).opSTA)
	set(0x92, "STA", Read8, SizeBase, ModeDirectIndirect, 5, (*Processor).opSTA)
	set(0x93, "STA", Read8, SizeBase, ModeStackRelativeIndirectIndexed, 7, (*Processor).opSTA)
	set(0x94, "STY", Read8, SizeBase, ModeDirectPageX, 4, (*Processor).opSTY)
	set(0x95, "STA", Read8, SizeBase, ModeDirectPageX, 4, (*Processor).opSTA)
	set(0x96, "STX", Read8, SizeBase, ModeDirectPageY, 4, (*Processor).opSTX)
	set(0x97, "STA", Read8, SizeBase, ModeDirectIndirectLongIndexed, 6, (*Processor).opSTA)
	set(0x98, "TYA", ReadNone, SizeBase, ModeImplied, 2, (*Processor).opTYA)
	set(0x99, "STA", Read16, SizeBase, ModeAbsoluteY, 5, (*Processor).opSTA)
	set(0x9a, "TXS", ReadNone, SizeBase, ModeImplied, 2, (*Processor).opTXS)
	set(0x9b, "TXY", ReadNone, SizeBase, ModeImplied, 2, (*Processor).opTXY)
	set(0x9c, "STZ", Read16, SizeBase, ModeAbsolute, 4, (*Processor).opSTZ)
	set(0x9d, "STA", Read16, SizeBase, ModeAbsoluteX, 5, (*Processor).opSTA)
	set(0x9e, "STZ", Read16, SizeBase, ModeAbsoluteX, 5, (*Processor).opSTZ)
	set(0x9f, "STA", Read24, SizeBase, ModeAbsoluteLongX, 5, (*Processor).opSTA)
	set(0xa0, "LDY", Read8Or16, SizeX, ModeImmediate, 2, (*Processor).opLDY)
	set(0xa1, "LDA", Read8, SizeBase, ModeDirectIndexedIndirect, 6, (*Processor).opLDA)
	set(0xa2, "LDX", Read8Or16, SizeX, ModeImmediate, 2, (*Processor).opLDX)
	set(0xa3, "LDA", Read8, SizeBase, ModeStackRelative, 4, (*Processor).opLDA)
	set(0xa4, "LDY", Read8, SizeBase, ModeDirectPage, 3, (*Processor).opLDY)
	set(0xa5, "LDA", Read8, SizeBase, ModeDirectPage, 3, (*Processor).opLDA)
	set(0xa6, "LDX", Read8, SizeBase, ModeDirectPage, 3, (*Processor).opLDX)
	set(0xa7, "LDA", Read8, SizeBase, ModeDirectIndirectLong, 6, (*Processor).opLDA)
	set(0xa8, "TAY", ReadNone, SizeBase, ModeImplied, 2, (*Processor).opTAY)
	set(0xa9, "LDA", Read8Or16, SizeM, ModeImmediate, 2, (*Processor).opLDA)
	set(0xaa, "TAX", ReadNone, SizeBase, ModeImplied, 2, (*Processor).opTAX)
	set(0xab, "PLB", ReadNone, SizeBase, ModeImplied, 4, (*Processor).opPLB)
	set(0xac, "LDY", Read16, SizeBase, ModeAbsolute, 4, (*Processor).opLDY)
	set(0xad, "LDA", Read16, SizeBase, ModeAbsolute, 4, (*Processor).opLDA)
	set(0xae, "LDX", Read16, SizeBase, ModeAbsolute, 4, (*Processor).opLDX)
	set(0xaf, "LDA", Read24, SizeBase, ModeAbsoluteLong, 5, (*Processor).opLDA)
	set(0xb0, "BCS", Read8, SizeBase, ModePCRelative, 2, (*Processor).opBCS)
	set(0xb1, "LDA", Read8, SizeBase, ModeDirectIndirectIndexed, 5, (*Processor).opLDA)
	set(0xb2, "LDA", Read8, SizeBase, ModeDirectIndirect, 5, (*Processor).opLDA)
	set(0xb3, "LDA", Read8, SizeBase, ModeStackRelativeIndirectIndexed, 7, (*Processor).opLDA)
	set(0xb4, "LDY", Read8, SizeBase, ModeDirectPageX, 4, (*Processor).opLDY)
	set(0xb5, "LDA", Read8, SizeBase, ModeDirectPageX, 4, (*Processor).opLDA)
	set(0xb6, "LDX", Read8, SizeBase, ModeDirectPageY, 4, (*Processor).opLDX)
	set(0xb7, "LDA", Read8, SizeBase, ModeDirectIndirectLongIndexed, 6, (*Processor).opLDA)
	set(0xb8, "CLV", ReadNone, SizeBase, ModeImplied, 2, (*Processor).opCLV)
	set(0xb9, "LDA", Read16, SizeBase, ModeAbsoluteY, 4, (*Processor).opLDA)
	set(0xba, "TSX", ReadNone, SizeBase, ModeImplied, 2, (*Processor).opTSX)
	set(0xbb, "TYX", ReadNone, SizeBase, ModeImplied, 2, (*Processor).opTYX)
	set(0xbc, "LDY", Read16, SizeBase, ModeAbsoluteX, 4, (*Processor).opLDY)
	set(0xbd, "LDA", Read16, SizeBase, ModeAbsoluteX, 4, (*Processor).opLDA)
	set(0xbe, "LDX", Read16, SizeBase, ModeAbsoluteY, 4, (*Processor).opLDX)
	set(0xbf, "LDA", Read24, SizeBase, ModeAbsoluteLongX, 5, (*Processor).opLDA)
	set(0xc0, "CPY", Read8Or16, SizeX, ModeImmediate, 2, (*Processor).opCPY)
	set(0xc1, "CMP", Read8, SizeBase, ModeDirectIndexedIndirect, 6, (*Processor).opCMP)
	set(0xc2, "REP", Read8, SizeBase, ModeImmediate, 3, (*Processor).opREP)
	set(0xc3, "CMP", Read8, SizeBase, ModeStackRelative, 4, (*Processor).opCMP)
	set(0xc4, "CPY", Read8, SizeBase, ModeDirectPage, 3, (*Processor).opCPY)
	set(0xc5, "CMP", Read8, SizeBase, ModeDirectPage, 3, (*Processor).opCMP)
	set(0xc6, "DEC", Read8, SizeBase, ModeDirectPage, 5, (*Processor).opDECMem)
	set(0xc7, "CMP", Read8, SizeBase, ModeDirectIndirectLong, 6, (*Processor).opCMP)
	set(0xc8, "INY", ReadNone, SizeBase, ModeImplied, 2, (*Processor).opINY)
	set(0xc9, "CMP", Read8Or16, SizeM, ModeImmediate, 2, (*Processor).opCMP)
	set(0xca, "DEX", ReadNone, SizeBase, ModeImplied, 2, (*Processor).opDEX)
	set(0xcb, "WAI", ReadNone, SizeBase, ModeImplied, 3, (*Processor).opWAI)
	set(0xcc, "CPY", Read16, SizeBase, ModeAbsolute, 4, (*Processor).opCPY)
	set(0xcd, "CMP", Read16, SizeBase, ModeAbsolute, 4, (*Processor).opCMP)
	set(0xce, "DEC", Read16, SizeBase, ModeAbsolute, 6, (*Processor).opDECMem)
	set(0xcf, "CMP", Read24, SizeBase, ModeAbsoluteLong, 5, (*Processor).opCMP)
	set(0xd0, "BNE", Read8, SizeBase, ModePCRelative, 2, (*Processor).opBNE)
	set(0xd1, "CMP", Read8, SizeBase, ModeDirectIndirectIndexed, 5, (*Processor).opCMP)
	set(0xd2, "CMP", Read8, SizeBase, ModeDirectIndirect, 5, (*Processor).opCMP)
	set(0xd3, "CMP", Read8, SizeBase, ModeStackRelativeIndirectIndexed, 7, (*Processor).opCMP)
	set(0xd4, "PEI", Read8, SizeBase, ModeDirectIndirect, 6, (*Processor).opPEI)
	set(0xd5, "CMP", Read8, SizeBase, ModeDirectPageX, 4, (*Processor).opCMP)
	set(0xd6, "DEC", Read8, SizeBase, ModeDirectPageX, 6, (*Processor).opDECMem)
	set(0xd7, "CMP", Read8, SizeBase, ModeDirectIndirectLongIndexed, 6, (*Processor).opCMP)
	set(0xd8, "CLD", ReadNone, SizeBase, ModeImplied, 2, (*Processor).opCLD)
	set(0xd9, "CMP", Read16, SizeBase, ModeAbsoluteY, 4, (*Processor).opCMP)
	set(0xda, "PHX", ReadNone, SizeBase, ModeImplied, 3, (*Processor).opPHX)
	set(0xdb, "STP", ReadNone, SizeBase, ModeImplied, 3, (*Processor).opSTP)
	set(0xdc, "JMP", Read16, SizeBase, ModeAbsoluteIndirectLong, 6, (*Processor).opJMPLongIndirect)
	set(0xdd, "CMP", Read16, SizeBase, ModeAbsoluteX, 4, (*Processor).opCMP)
	set(0xde, "DEC", Read16, SizeBase, ModeAbsoluteX, 7, (*Processor).opDECMem)
	set(0xdf, "CMP", Read24, SizeBase, ModeAbsoluteLongX, 5, (*Processor).opCMP)
	set(0xe0, "CPX", Read8Or16, SizeX, ModeImmediate, 2, (*Processor).opCPX)
	set(0xe1, "SBC", Read8, SizeBase, ModeDirectIndexedIndirect, 6, (*Processor).opSBC)
	set(0xe2, "SEP", Read8, SizeBase, ModeImmediate, 3, (*Processor).opSEP)
	set(0xe3, "SBC", Read8, SizeBase, ModeStackRelative, 4, (*Processor).opSBC)
	set(0xe4, "CPX", Read8, SizeBase, ModeDirectPage, 3, (*Processor).opCPX)
	set(0xe5, "SBC", Read8, SizeBase, ModeDirectPage, 3, (*Processor).opSBC)
	set(0xe6, "INC", Read8, SizeBase, ModeDirectPage, 5, (*Processor).opINCMem)
	set(0xe7, "SBC", Read8, SizeBase, ModeDirectIndirectLong, 6, (*Processor).opSBC)
	set(0xe8, "INX", ReadNone, SizeBase, ModeImplied, 2, (*Processor).opINX)
	set(0xe9, "SBC", Read8Or16, SizeM, ModeImmediate, 2, (*Processor).opSBC)
	set(0xea, "NOP", ReadNone, SizeBase, ModeImplied, 2, (*Processor).opNOP)
	set(0xeb, "XBA", ReadNone, SizeBase, ModeImplied, 3, (*Processor).opXBA)
	set(0xec, "CPX", Read16, SizeBase, ModeAbsolute, 4, (*Processor).opCPX)
	set(0xed, "SBC", Read16, SizeBase, ModeAbsolute, 4, (*Processor).opSBC)
	set(0xee, "INC", Read16, SizeBase, ModeAbsolute, 6, (*Processor).opINCMem)
	set(0xef, "SBC", Read24, SizeBase, ModeAbsoluteLong, 5, (*Processor).opSBC)
	set(0xf0, "BEQ", Read8, SizeBase, ModePCRelative, 2, (*Processor).opBEQ)
	set(0xf1, "SBC", Read8, SizeBase, ModeDirectIndirectIndexed, 5, (*Processor).opSBC)
	set(0xf2, "SBC", Read8, SizeBase, ModeDirectIndirect, 5, (*Processor).opSBC)
	set(0xf3, "SBC", Read8, SizeBase, ModeStackRelativeIndirectIndexed, 7, (*Processor).opSBC)
	set(0xf4, "PEA", Read16, SizeBase, ModeImplied, 5, (*Processor).opPEA)
	set(0xf5, "SBC", Read8, SizeBase, ModeDirectPageX, 4, (*Processor).opSBC)
	set(0xf6, "INC", Read8, SizeBase, ModeDirectPageX, 6, (*Processor).opINCMem)
	set(0xf7, "SBC", Read8, SizeBase, ModeDirectIndirectLongIndexed, 6, (*Processor).opSBC)
	set(0xf8, "SED", ReadNone, SizeBase, ModeImplied, 2, (*Processor).opSED)
	set(0xf9, "SBC", Read16, SizeBase, ModeAbsoluteY, 4, (*Processor).opSBC)
	set(0xfa, "PLX", ReadNone, SizeBase, ModeImplied, 4, (*Processor).opPLX)
	set(0xfb, "XCE", ReadNone, SizeBase, ModeImplied, 2, (*Processor).opXCE)
	set(0xfc, "JSR", Read16, SizeBase, ModeAbsoluteIndirectX, 8, (*Processor).opJSRIndirectX)
	set(0xfd, "SBC", Read16, SizeBase, ModeAbsoluteX, 4, (*Processor).opSBC)
	set(0xfe, "INC", Read16, SizeBase, ModeAbsoluteX, 7, (*Processor).opINCMem)
	set(0xff, "SBC", Read24, SizeBase, ModeAbsoluteLongX, 5, (*Processor).opSBC)
}
