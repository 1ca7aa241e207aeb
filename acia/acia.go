// Package acia implements the 65C51 Asynchronous Communications Interface
// Adapter: byte-level TX/RX FIFOs, the status/command/control register
// trio, and a simplified byte-at-a-time clock model (bit-level UART timing
// is not modeled; see ClockCycles).
package acia

// Register offsets, bank-relative (ACIA occupies a 4-byte window).
const (
	RegData    = 0x00
	RegStatus  = 0x01 // read
	RegReset   = 0x01 // write: programmed reset
	RegCommand = 0x02
	RegControl = 0x03
)

// Status register bits.
const (
	StatusParityErr  byte = 0x01
	StatusFramingErr byte = 0x02
	StatusOverrun    byte = 0x04
	StatusRDRF       byte = 0x08
	StatusTDRE       byte = 0x10
	StatusDCD        byte = 0x20
	StatusDSR        byte = 0x40
	StatusIRQ        byte = 0x80
)

// Command register bits.
const (
	CmdDTREnable  byte = 0x01
	CmdIRQMask    byte = 0x0e
	CmdIRQRxEnable byte = 0x02
	CmdIRQTxEnable byte = 0x04
	CmdIRQRxBrk    byte = 0x0e
)

// Control register bits.
const (
	CtrlBaudMask byte = 0x0f
	CtrlRecvClk  byte = 0x10
	CtrlWordMask byte = 0x60
	CtrlWord8Bit byte = 0x00
	CtrlWord7Bit byte = 0x20
	CtrlWord6Bit byte = 0x40
	CtrlWord5Bit byte = 0x60
)

const fifoSize = 256

var baudRates = [16]uint32{
	0, 50, 75, 110, 135, 150, 300, 600,
	1200, 1800, 2400, 3600, 4800, 7200, 9600, 19200,
}

var clockDividers = [16]uint32{
	16, 38400, 25600, 17455, 14245, 12800, 6400, 3200,
	1600, 1067, 800, 533, 400, 267, 200, 100,
}

// fifo is a fixed-size byte ring buffer, mirroring the original's
// head/tail/count array fields.
type fifo struct {
	buf   [fifoSize]byte
	head  int
	tail  int
	count int
}

func (f *fifo) push(b byte) bool {
	if f.count >= fifoSize {
		return false
	}
	f.buf[f.head] = b
	f.head = (f.head + 1) % fifoSize
	f.count++
	return true
}

func (f *fifo) pop() (byte, bool) {
	if f.count == 0 {
		return 0, false
	}
	b := f.buf[f.tail]
	f.tail = (f.tail + 1) % fifoSize
	f.count--
	return b, true
}

func (f *fifo) peek() byte {
	if f.count == 0 {
		return 0
	}
	return f.buf[f.tail]
}

// ACIA is one 65C51 chip.
type ACIA struct {
	DataRX, DataTX byte
	Status         byte
	Command        byte
	Control        byte

	rx, tx fifo

	ParityError  bool
	FramingError bool
	OverrunError bool

	DTR, RTS, DCD, DSR, CTS bool

	txClockDivider uint32
	rxClockDivider uint32
	txClockCounter uint32

	txBitsRemaining byte

	// TXByte is called once per byte dequeued for transmission (the
	// original's byte-level tx_byte_callback).
	TXByte func(b byte)
	// RXPoll is called once per ClockCycles tick to ask the host whether a
	// byte has arrived; it returns ok=false when nothing is pending.
	RXPoll func() (b byte, ok bool)

	IRQCallback func(state bool)
	DTRCallback func(state bool)
}

// New returns an ACIA in its post-reset state.
func New() *ACIA {
	a := &ACIA{}
	a.Reset()
	return a
}

// Reset returns the ACIA to power-on defaults: TDRE set, both FIFOs
// empty, DCD/DSR reporting "not ready" (6551 inverted-logic convention).
func (a *ACIA) Reset() {
	a.DataRX, a.DataTX = 0, 0
	a.Status = StatusTDRE
	a.Command, a.Control = 0, 0
	a.rx, a.tx = fifo{}, fifo{}
	a.ParityError, a.FramingError, a.OverrunError = false, false, false
	a.DTR, a.RTS = false, false
	a.DCD, a.DSR, a.CTS = true, true, true
	a.txClockDivider, a.rxClockDivider = 1, 1
	a.txClockCounter = 0
	a.txBitsRemaining = 0
}

// RegisterRead implements mem.Device.
func (a *ACIA) RegisterRead(reg uint16) byte {
	switch reg & 0x03 {
	case RegData:
		var value byte
		if b, ok := a.rx.pop(); ok {
			value = b
			if a.rx.count > 0 {
				a.DataRX = a.rx.peek()
			} else {
				a.DataRX = 0
			}
		} else {
			value = a.DataRX
		}
		a.Status &^= StatusRDRF
		a.ParityError, a.FramingError, a.OverrunError = false, false, false
		a.updateStatus()
		a.updateIRQ()
		return value

	case RegStatus:
		a.updateStatus()
		return a.Status

	case RegCommand:
		return a.Command

	case RegControl:
		return a.Control
	}
	return 0
}

// RegisterWrite implements mem.Device.
func (a *ACIA) RegisterWrite(reg uint16, value byte) {
	switch reg & 0x03 {
	case RegData:
		a.DataTX = value
		a.tx.push(value)
		a.Status &^= StatusTDRE
		if a.txBitsRemaining == 0 {
			a.startTransmit()
		}
		a.updateIRQ()

	case RegReset:
		a.Reset()

	case RegCommand:
		a.Command = value
		newDTR := value&CmdDTREnable != 0
		if newDTR != a.DTR {
			a.DTR = newDTR
			if a.DTRCallback != nil {
				a.DTRCallback(a.DTR)
			}
		}
		a.updateIRQ()

	case RegControl:
		a.Control = value
		baudSel := value & CtrlBaudMask
		a.txClockDivider = clockDividers[baudSel]
		if value&CtrlRecvClk != 0 {
			a.rxClockDivider = a.txClockDivider
		} else {
			a.rxClockDivider = 16
		}
	}
}

// ClockCycles advances the byte-level transmit state machine by n cycles
// and polls RXPoll once per cycle, matching the original's simplified
// (non-bit-accurate) acia6551_clock.
func (a *ACIA) ClockCycles(n int) {
	for i := 0; i < n; i++ {
		if a.txBitsRemaining > 0 {
			a.txClockCounter++
			if a.txClockCounter >= a.txClockDivider {
				a.txClockCounter = 0
				a.txBitsRemaining--
				if a.txBitsRemaining == 0 {
					if a.tx.count > 0 {
						a.startTransmit()
					} else {
						a.Status |= StatusTDRE
						a.updateIRQ()
					}
				}
			}
		}

		if a.RXPoll != nil {
			if b, ok := a.RXPoll(); ok {
				a.ReceiveByte(b)
			}
		}
	}
}

// SetDCD drives the (active-low) Data Carrier Detect input line.
func (a *ACIA) SetDCD(state bool) { a.DCD = !state; a.updateStatus() }

// SetDSR drives the (active-low) Data Set Ready input line.
func (a *ACIA) SetDSR(state bool) { a.DSR = !state; a.updateStatus() }

// SetCTS drives the (active-low) Clear To Send input line.
func (a *ACIA) SetCTS(state bool) { a.CTS = !state }

// IRQ reports whether the status register's IRQ bit is currently set.
func (a *ACIA) IRQ() bool { return a.Status&StatusIRQ != 0 }

// ReceiveByte enqueues a byte arriving from the host's serial line,
// setting RDRF (or OverrunError if the RX FIFO is full).
func (a *ACIA) ReceiveByte(b byte) {
	if a.rx.push(b) {
		a.DataRX = a.rx.peek()
		a.Status |= StatusRDRF
		a.updateIRQ()
		return
	}
	a.OverrunError = true
	a.updateStatus()
}

// TransmitByteAvailable dequeues the next transmitted byte, if any,
// matching the original's polling-style transmit drain.
func (a *ACIA) TransmitByteAvailable() (byte, bool) {
	b, ok := a.tx.pop()
	if !ok {
		return 0, false
	}
	if a.tx.count == 0 {
		a.Status |= StatusTDRE
		a.updateIRQ()
	}
	return b, true
}

// BaudRate returns the selected baud rate, or 0 for external clock.
func (a *ACIA) BaudRate() uint32 { return baudRates[a.Control&CtrlBaudMask] }

// WordLength returns the selected data word length in bits.
func (a *ACIA) WordLength() byte {
	switch a.Control & CtrlWordMask {
	case CtrlWord8Bit:
		return 8
	case CtrlWord7Bit:
		return 7
	case CtrlWord6Bit:
		return 6
	case CtrlWord5Bit:
		return 5
	default:
		return 8
	}
}

func (a *ACIA) updateIRQ() {
	irqActive := false
	mode := a.Command & CmdIRQMask
	if (mode == CmdIRQRxEnable || mode == CmdIRQRxBrk) && a.Status&StatusRDRF != 0 {
		irqActive = true
	}
	if mode == CmdIRQTxEnable && a.Status&StatusTDRE != 0 {
		irqActive = true
	}
	if irqActive {
		a.Status |= StatusIRQ
	} else {
		a.Status &^= StatusIRQ
	}
	if a.IRQCallback != nil {
		a.IRQCallback(irqActive)
	}
}

func (a *ACIA) updateStatus() {
	setBit := func(bit byte, v bool) {
		if v {
			a.Status |= bit
		} else {
			a.Status &^= bit
		}
	}
	setBit(StatusParityErr, a.ParityError)
	setBit(StatusFramingErr, a.FramingError)
	setBit(StatusOverrun, a.OverrunError)
	setBit(StatusDCD, a.DCD)
	setBit(StatusDSR, a.DSR)
}

func (a *ACIA) startTransmit() {
	b, ok := a.tx.pop()
	if !ok {
		return
	}
	if a.TXByte != nil {
		a.TXByte(b)
	}
	a.txBitsRemaining = a.WordLength() + 2 // data + start + stop
	a.txClockCounter = 0
	if a.tx.count == 0 {
		a.Status |= StatusTDRE
	}
}
