// Package ft245 implements the FT245 USB FIFO bridge: 512-byte RX/TX
// FIFOs, the RD#/WR strobe-driven transfer edges, and the RXF#/TXE#/
// PWREN# status lines a host driver polls to know when the bus has room.
package ft245

const (
	rxFIFOSize = 512
	txFIFOSize = 512
)

// Status flags, as surfaced to a caller building a composite status byte;
// the hardware lines themselves are active-low (see RXF/TXE/PWREN below).
const (
	StatusRXF   byte = 0x01
	StatusTXE   byte = 0x02
	StatusPWREN byte = 0x04
)

type fifo struct {
	buf   []byte
	head  int
	tail  int
	count int
}

func newFIFO(size int) fifo { return fifo{buf: make([]byte, size)} }

func (f *fifo) push(b byte) bool {
	if f.count >= len(f.buf) {
		return false
	}
	f.buf[f.head] = b
	f.head = (f.head + 1) % len(f.buf)
	f.count++
	return true
}

func (f *fifo) pop() (byte, bool) {
	if f.count == 0 {
		return 0, false
	}
	b := f.buf[f.tail]
	f.tail = (f.tail + 1) % len(f.buf)
	f.count--
	return b, true
}

func (f *fifo) peek() byte {
	if f.count == 0 {
		return 0
	}
	return f.buf[f.tail]
}

// FT245 is one FT245R-style USB FIFO bridge chip.
type FT245 struct {
	DataBus byte

	RDn    bool // Read strobe, active low
	WR     bool // Write strobe, active high (async mode)
	rxfN   bool
	txeN   bool
	pwrenN bool

	rx, tx fifo

	USBConnected  bool
	USBConfigured bool

	ReadLatency, WriteLatency byte
	readTimer, writeTimer     byte

	// USBTx is called once per byte the CPU writes (CPU -> USB/PC).
	USBTx func(b byte)
	// USBRx is polled once per Clock tick to ask whether the USB/PC side
	// has a byte ready (USB/PC -> CPU).
	USBRx func() (b byte, ok bool)

	StatusCallback func(rxf, txe bool)
}

// New returns an FT245 in its post-reset state.
func New() *FT245 {
	f := &FT245{}
	f.Reset()
	return f
}

// Reset returns the FT245 to power-on defaults: bus idle, FIFOs empty,
// USB not yet connected/configured.
func (f *FT245) Reset() {
	f.DataBus = 0xff
	f.rxfN = true
	f.txeN = false
	f.RDn = true
	f.WR = false
	f.pwrenN = true
	f.rx, f.tx = newFIFO(rxFIFOSize), newFIFO(txFIFOSize)
	f.USBConnected, f.USBConfigured = false, false
	f.ReadLatency, f.WriteLatency = 2, 2
	f.readTimer, f.writeTimer = 0, 0
	f.updateStatusSignals()
}

// Read returns the byte currently on the data bus: a fresh FIFO byte once
// RD# has been asserted for ReadLatency ticks, otherwise the bus's current
// (stale) contents.
func (f *FT245) Read() byte {
	if !f.RDn && f.rx.count > 0 {
		if f.readTimer >= f.ReadLatency {
			data, _ := f.rx.pop()
			f.DataBus = data
			f.readTimer = 0
			f.updateStatusSignals()
			return data
		}
		return f.DataBus
	}
	return f.DataBus
}

// Write stages data on the bus; the actual FIFO push happens on the WR
// strobe's rising edge (SetWR).
func (f *FT245) Write(data byte) { f.DataBus = data }

// SetRD drives the RD# pin (state true = asserted/low).
func (f *FT245) SetRD(state bool) {
	old := f.RDn
	f.RDn = !state
	if old && !f.RDn {
		f.readTimer = 0
	}
}

// SetWR drives the WR pin (active high); on its rising edge the current
// data bus value is pushed into the TX FIFO if there is room.
func (f *FT245) SetWR(state bool) {
	old := f.WR
	f.WR = state
	if !old && f.WR {
		if f.tx.push(f.DataBus) && f.USBTx != nil {
			f.USBTx(f.DataBus)
		}
		f.updateStatusSignals()
		f.writeTimer = 0
	}
}

// RXF reports RXF# (active low: false means data is available to read).
func (f *FT245) RXF() bool { return f.rxfN }

// TXE reports TXE# (active low: false means TX FIFO has room).
func (f *FT245) TXE() bool { return f.txeN }

// PWREN reports PWREN# (active low: false means USB is configured).
func (f *FT245) PWREN() bool { return f.pwrenN }

// USBReceive enqueues a byte arriving from the USB/PC side into the RX
// FIFO. Reports false if the FIFO is full.
func (f *FT245) USBReceive(data byte) bool {
	if !f.rx.push(data) {
		return false
	}
	f.updateStatusSignals()
	return true
}

// USBTransmit dequeues the next byte the CPU wrote, for the USB/PC side to
// consume.
func (f *FT245) USBTransmit() (byte, bool) {
	data, ok := f.tx.pop()
	if ok {
		f.updateStatusSignals()
	}
	return data, ok
}

// USBReceiveBuffer enqueues as many of buffer's bytes as fit, stopping at
// the first full FIFO.
func (f *FT245) USBReceiveBuffer(buffer []byte) int {
	n := 0
	for _, b := range buffer {
		if !f.USBReceive(b) {
			break
		}
		n++
	}
	return n
}

// SetUSBConnected reports a USB cable connect/disconnect; disconnecting
// clears both FIFOs and de-configures the device.
func (f *FT245) SetUSBConnected(connected bool) {
	f.USBConnected = connected
	if !connected {
		f.USBConfigured = false
		f.rx, f.tx = newFIFO(rxFIFOSize), newFIFO(txFIFOSize)
	}
	f.updateStatusSignals()
}

// SetUSBConfigured reports USB enumeration completing; a no-op while not
// connected.
func (f *FT245) SetUSBConfigured(configured bool) {
	if f.USBConnected {
		f.USBConfigured = configured
		f.updateStatusSignals()
	}
}

// RXFIFOCount, TXFIFOCount report current FIFO occupancy.
func (f *FT245) RXFIFOCount() int { return f.rx.count }
func (f *FT245) TXFIFOCount() int { return f.tx.count }

// ClockCycles advances the read-latency timer and polls USBRx, n times.
func (f *FT245) ClockCycles(n int) {
	for i := 0; i < n; i++ {
		f.clockOne()
	}
}

func (f *FT245) clockOne() {
	if !f.RDn && f.readTimer < f.ReadLatency {
		f.readTimer++
		if f.readTimer >= f.ReadLatency && f.rx.count > 0 {
			f.DataBus = f.rx.peek()
		}
	}
	if f.USBRx != nil {
		if b, ok := f.USBRx(); ok {
			f.USBReceive(b)
		}
	}
}

func (f *FT245) updateStatusSignals() {
	oldRXF, oldTXE := f.rxfN, f.txeN
	f.rxfN = f.rx.count == 0
	f.txeN = f.tx.count >= txFIFOSize
	f.pwrenN = !(f.USBConnected && f.USBConfigured)
	if (oldRXF != f.rxfN || oldTXE != f.txeN) && f.StatusCallback != nil {
		f.StatusCallback(f.rxfN, f.txeN)
	}
}
