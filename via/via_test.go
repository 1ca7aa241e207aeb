package via

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakePort struct {
	value  byte
	writes []byte
}

func (p *fakePort) ReadPort() byte        { return p.value }
func (p *fakePort) WritePort(value byte)  { p.writes = append(p.writes, value) }

func TestPortBMixesOutputAndInput(t *testing.T) {
	v := New()
	portB := &fakePort{value: 0xf0}
	v.PortB = portB

	v.RegisterWrite(RegDDRB, 0x0f)
	v.RegisterWrite(RegORB, 0x55)

	assert.Equal(t, byte(0xf5), v.RegisterRead(RegORB))
}

func TestTimer1OneShotFiresAfterLatchedDelay(t *testing.T) {
	v := New()
	v.RegisterWrite(RegIER, 0x80|IntT1)
	v.RegisterWrite(RegACR, 0x00)
	v.RegisterWrite(RegT1CL, 0x0a)
	v.RegisterWrite(RegT1CH, 0x00)

	v.ClockCycles(10)
	assert.Equal(t, byte(0), v.IFR&IntT1, "timer must not fire early")

	v.ClockCycles(1)
	assert.Equal(t, IntT1, v.IFR&IntT1)
	assert.True(t, v.IRQ())

	v.RegisterRead(RegT1CL)
	assert.Equal(t, byte(0), v.IFR&IntT1, "reading T1CL clears the flag")
}

func TestTimer1ContinuousReloadsFromLatch(t *testing.T) {
	v := New()
	v.RegisterWrite(RegACR, ACRT1Continuous)
	v.RegisterWrite(RegT1CL, 0x05)
	v.RegisterWrite(RegT1CH, 0x00)

	fired := 0
	for i := 0; i < 20; i++ {
		before := v.IFR & IntT1
		v.ClockCycles(1)
		after := v.IFR & IntT1
		if before == 0 && after != 0 {
			fired++
			v.RegisterWrite(RegIFR, IntT1) // ack, matching the original's clear-to-see-next-firing loop
		}
	}
	assert.GreaterOrEqual(t, fired, 3)
}

func TestTimer2OneShotStopsAfterUnderflow(t *testing.T) {
	v := New()
	v.RegisterWrite(RegIER, 0x80|IntT2)
	v.RegisterWrite(RegT2CL, 0x07)
	v.RegisterWrite(RegT2CH, 0x00)

	v.ClockCycles(8)
	assert.True(t, v.T2Running == false)
	assert.Equal(t, IntT2, v.IFR&IntT2)
}

func TestCA1PositiveEdgeSetsFlag(t *testing.T) {
	v := New()
	v.RegisterWrite(RegIER, 0x80|IntCA1)
	v.RegisterWrite(RegPCR, 0x01) // CA1 positive edge

	v.SetCA1(false)
	v.SetCA1(true)

	assert.Equal(t, IntCA1, v.IFR&IntCA1)

	v.RegisterRead(RegORA)
	assert.Equal(t, byte(0), v.IFR&IntCA1, "reading ORA clears CA1/CA2")
}

func TestPortALatchesOnCA1Edge(t *testing.T) {
	v := New()
	port := &fakePort{value: 0x42}
	v.PortA = port

	v.RegisterWrite(RegDDRA, 0x00)
	v.RegisterWrite(RegACR, ACRPALatch)
	v.RegisterWrite(RegPCR, 0x01)

	v.SetCA1(false)
	v.SetCA1(true) // latches 0x42

	port.value = 0x99

	assert.Equal(t, byte(0x42), v.RegisterRead(RegORA))
}

func TestIERBit7AlwaysReadsSet(t *testing.T) {
	v := New()
	v.RegisterWrite(RegIER, 0xff)
	assert.Equal(t, byte(0xff), v.RegisterRead(RegIER))
}

func TestIFRBit7MirrorsEnabledPending(t *testing.T) {
	v := New()
	v.RegisterWrite(RegIER, 0x80|IntT1)
	v.RegisterWrite(RegT1CL, 0x01)
	v.RegisterWrite(RegT1CH, 0x00)

	v.ClockCycles(2)
	assert.Equal(t, IntAny|IntT1, v.RegisterRead(RegIFR))
}
