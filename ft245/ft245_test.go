package ft245

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitialStateReportsNoDataSpaceAvailableNotConfigured(t *testing.T) {
	f := New()

	assert.True(t, f.RXF(), "RXF# high: no data")
	assert.False(t, f.TXE(), "TXE# low: room available")
	assert.True(t, f.PWREN(), "PWREN# high: not configured")
	assert.Equal(t, 0, f.RXFIFOCount())
	assert.Equal(t, 0, f.TXFIFOCount())
}

func TestUSBConnectThenConfigureDropsPWREN(t *testing.T) {
	f := New()

	f.SetUSBConnected(true)
	assert.True(t, f.PWREN(), "still not configured")

	f.SetUSBConfigured(true)
	assert.False(t, f.PWREN(), "connected and configured")

	f.SetUSBConnected(false)
	assert.True(t, f.PWREN())
}

func TestUSBReceiveThenCPUReadAfterLatency(t *testing.T) {
	f := New()
	f.ReadLatency = 2
	f.USBReceive(0x42)

	assert.False(t, f.RXF(), "data now available")

	f.SetRD(true)
	assert.Equal(t, byte(0xff), f.Read(), "stale bus value before latency elapses")

	f.ClockCycles(2)
	assert.Equal(t, byte(0x42), f.Read())
}

func TestCPUWriteRisingEdgePushesTXFIFO(t *testing.T) {
	f := New()
	var transmitted []byte
	f.USBTx = func(b byte) { transmitted = append(transmitted, b) }

	f.Write(0x55)
	f.SetWR(true) // rising edge
	assert.Equal(t, []byte{0x55}, transmitted)
	assert.Equal(t, 1, f.TXFIFOCount())

	f.SetWR(false)
	f.Write(0x66)
	f.SetWR(true)
	assert.Equal(t, []byte{0x55, 0x66}, transmitted)
}

func TestDisconnectFlushesBothFIFOs(t *testing.T) {
	f := New()
	f.USBReceive(0x01)
	f.Write(0x02)
	f.SetWR(true)

	f.SetUSBConnected(false)

	assert.Equal(t, 0, f.RXFIFOCount())
	assert.Equal(t, 0, f.TXFIFOCount())
}

func TestStatusCallbackFiresOnlyOnChange(t *testing.T) {
	f := New()
	var calls int
	f.StatusCallback = func(rxf, txe bool) { calls++ }

	f.USBReceive(0x01) // RXF# changes false
	assert.Equal(t, 1, calls)

	f.USBReceive(0x02) // RXF# already false, no change
	assert.Equal(t, 1, calls)
}

func TestUSBReceiveBufferStopsWhenFull(t *testing.T) {
	f := New()
	buf := make([]byte, rxFIFOSize+10)
	n := f.USBReceiveBuffer(buf)
	assert.Equal(t, rxFIFOSize, n)
}
