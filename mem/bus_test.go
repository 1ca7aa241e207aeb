package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadWriteRAM(t *testing.T) {
	b := NewBus()
	b.AddRAM(0, 0x0000, 0x7fff)

	b.WriteByte(Join(0, 0x1000), 0x42)
	assert.Equal(t, byte(0x42), b.ReadByte(Join(0, 0x1000)))
}

func TestWriteDroppedOnReadOnly(t *testing.T) {
	b := NewBus()
	b.AddROM(0, 0x8000, 0xffff)

	assert.NoError(t, b.LoadROM(0, 0x8000, []byte{0xaa}))
	b.WriteByte(Join(0, 0x8000), 0xbb) // normal bus write must be dropped
	assert.Equal(t, byte(0xaa), b.ReadByte(Join(0, 0x8000)))
}

func TestOpenBusUnmappedAddress(t *testing.T) {
	b := NewBus()
	b.AddRAM(0, 0x0000, 0x00ff)

	assert.Equal(t, byte(0xff), b.ReadByte(Join(0, 0x1234)))
	b.WriteByte(Join(0, 0x1234), 0x55) // dropped, no panic
}

func TestAbsentBankIsOpenBus(t *testing.T) {
	b := NewBus()
	assert.Equal(t, byte(0xff), b.ReadByte(Join(0x01, 0x0000)))
}

func TestWordWrapsWithinBank(t *testing.T) {
	b := NewBus()
	b.AddRAM(0, 0x0000, 0xffff)

	b.WriteWord(Join(0, 0xffff), 0x1234)
	// low byte at 0xffff, high byte wraps to 0x0000 (same bank)
	assert.Equal(t, byte(0x34), b.ReadByte(Join(0, 0xffff)))
	assert.Equal(t, byte(0x12), b.ReadByte(Join(0, 0x0000)))
	assert.Equal(t, uint16(0x1234), b.ReadWord(Join(0, 0xffff)))
}

type stubDevice struct {
	regs [4]byte
}

func (d *stubDevice) RegisterRead(reg uint16) byte { return d.regs[reg] }
func (d *stubDevice) RegisterWrite(reg uint16, v byte) {
	d.regs[reg] = v
}

func TestDeviceRegionForwardsOffset(t *testing.T) {
	b := NewBus()
	dev := &stubDevice{}
	b.AddDevice(0, 0x7f80, 0x7f83, dev)

	b.WriteByte(Join(0, 0x7f82), 0x99)
	assert.Equal(t, byte(0x99), dev.regs[2])
	assert.Equal(t, byte(0x99), b.ReadByte(Join(0, 0x7f82)))
}

func TestLoadROMOverrunIsError(t *testing.T) {
	b := NewBus()
	b.AddROM(0, 0x8000, 0x8003)
	err := b.LoadROM(0, 0x8000, []byte{1, 2, 3, 4, 5})
	assert.Error(t, err)
}
