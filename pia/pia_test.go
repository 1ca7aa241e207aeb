package pia

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakePort struct{ value byte }

func (p *fakePort) ReadPort() byte       { return p.value }
func (p *fakePort) WritePort(value byte) {}

func TestDDRDataMultiplexing(t *testing.T) {
	p := New()
	port := &fakePort{}
	p.PortA = port

	p.RegisterWrite(RegPortACtrl, 0x00) // DDR access
	p.RegisterWrite(RegPortAData, 0x5a)
	assert.Equal(t, byte(0x5a), p.RegisterRead(RegPortAData), "still addressing DDR, not data")

	p.RegisterWrite(RegPortACtrl, CRDDRAccess) // switch to data access
	p.RegisterWrite(RegPortAData, 0xff)
	port.value = 0xff

	assert.Equal(t, byte(0xff)&0x5a|(0xff&^byte(0x5a)), p.RegisterRead(RegPortAData))
}

func TestPortBMixesOutputAndInput(t *testing.T) {
	p := New()
	port := &fakePort{value: 0xf0}
	p.PortB = port

	p.RegisterWrite(RegPortBCtrl, 0x00)
	p.RegisterWrite(RegPortBData, 0x0f)
	p.RegisterWrite(RegPortBCtrl, CRDDRAccess)
	p.RegisterWrite(RegPortBData, 0x55)

	assert.Equal(t, byte(0xf5), p.RegisterRead(RegPortBData))
}

func TestCA1EdgeRaisesFlagAndReadClears(t *testing.T) {
	p := New()
	p.RegisterWrite(RegPortACtrl, CRDDRAccess|CRCA1LowToHigh)

	p.SetCA1(false)
	p.SetCA1(true)

	assert.True(t, p.IRQA1Flag)
	ctrl := p.RegisterRead(RegPortACtrl)
	assert.NotEqual(t, byte(0), ctrl&CRIRQA1Flag)

	p.RegisterRead(RegPortAData)
	assert.False(t, p.IRQA1Flag, "reading port A data clears CA1/CA2 flags")
}

func TestCA2HandshakeOutputGoesLowOnDataAccessHighOnCA1(t *testing.T) {
	p := New()
	p.RegisterWrite(RegPortACtrl, CRDDRAccess|CA2OutputHS)

	p.RegisterRead(RegPortAData)
	assert.False(t, p.CA2, "CA2 handshake drops low on data access")

	p.SetCA1(true)  // no trigger: default active edge is high-to-low
	p.SetCA1(false) // high-to-low edge fires
	assert.True(t, p.CA2, "CA1 active edge returns CA2 high")
}

func TestIRQACallbackFiresOnFlagChange(t *testing.T) {
	p := New()
	p.RegisterWrite(RegPortACtrl, CRDDRAccess|CRCA1LowToHigh)

	var lastState bool
	var calls int
	p.IRQACallback = func(state bool) { lastState = state; calls++ }

	p.SetCA1(false)
	p.SetCA1(true)

	assert.True(t, lastState)
	assert.Greater(t, calls, 0)
}
