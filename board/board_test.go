package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"w65816/via"
)

func TestPortBReflectsFT245Status(t *testing.T) {
	f := New()
	f.RegisterWrite(via.RegDDRB, 0x03) // RD#/WR outputs, RXF#/TXE#/PWREN# inputs
	f.RegisterWrite(via.RegORB, PortBRDn)

	status := f.RegisterRead(via.RegORB)
	assert.NotEqual(t, byte(0), status&PortBRDn, "RD# inactive (high), as just driven")
	assert.NotEqual(t, byte(0), status&PortBRXFn, "no data yet")
	assert.Equal(t, byte(0), status&PortBTXEn, "TX FIFO has room")
	assert.Equal(t, byte(0), status&PortBPWRENn, "enumerated at New(), so PWREN# low")
}

func TestCPUWriteToUSBViaORAAndWRPulse(t *testing.T) {
	f := New()
	f.RegisterWrite(via.RegDDRA, 0xff) // Port A output
	f.RegisterWrite(via.RegDDRB, 0x03) // Port B bits 0-1 output

	message := []byte("HELLO")
	for _, b := range message {
		f.RegisterWrite(via.RegORA, b)
		f.RegisterWrite(via.RegORB, PortBRDn|PortBWR) // assert WR
		f.ClockCycles(10)
		f.RegisterWrite(via.RegORB, PortBRDn) // deassert WR
	}

	var received []byte
	for {
		b, ok := f.USBReceiveFromCPU()
		if !ok {
			break
		}
		received = append(received, b)
	}
	assert.Equal(t, message, received)
}

func TestUSBSendToCPUVisibleOnPortA(t *testing.T) {
	f := New()
	f.RegisterWrite(via.RegDDRA, 0x00) // Port A input
	f.RegisterWrite(via.RegDDRB, 0x03)

	f.USBSendToCPU(0x42)

	f.RegisterWrite(via.RegORB, 0x00)    // RD# low (bit0=0), WR low
	f.ClockCycles(3)                     // satisfy FT245's read latency

	assert.Equal(t, byte(0x42), f.RegisterRead(via.RegORA))
}
