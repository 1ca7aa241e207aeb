package loader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeWriter struct {
	written map[uint32]byte
}

func newFakeWriter() *fakeWriter { return &fakeWriter{written: map[uint32]byte{}} }

func (w *fakeWriter) WriteByteRaw(bank byte, addr uint16, v byte) {
	w.written[uint32(bank)<<16|uint32(addr)] = v
}

func TestLoadRawWritesSequentially(t *testing.T) {
	w := newFakeWriter()
	report, err := LoadRaw(w, 0, 0x8000, []byte{0xa9, 0x00, 0x60})
	assert.NoError(t, err)
	assert.Equal(t, 3, report.BytesLoaded)
	assert.Equal(t, byte(0xa9), w.written[0x8000])
	assert.Equal(t, byte(0x60), w.written[0x8002])
}

func TestLoadIntelHexDataRecord(t *testing.T) {
	w := newFakeWriter()
	src := ":03800000A9006074\n:00000001FF\n"
	report, err := LoadIntelHex(w, "test.hex", strings.NewReader(src))
	assert.NoError(t, err)
	assert.Empty(t, report.Warnings)
	assert.Equal(t, byte(0xa9), w.written[0x8000])
	assert.Equal(t, byte(0x00), w.written[0x8001])
	assert.Equal(t, byte(0x60), w.written[0x8002])
}

func TestLoadIntelHexBadChecksumWarns(t *testing.T) {
	w := newFakeWriter()
	src := ":03800000A90060FF\n:00000001FF\n"
	report, err := LoadIntelHex(w, "test.hex", strings.NewReader(src))
	assert.NoError(t, err)
	assert.Len(t, report.Warnings, 1)
}

func TestLoadIntelHexExtendedLinearAddress(t *testing.T) {
	w := newFakeWriter()
	// :02000004 0001 F9  -- upper 16 bits = 0x0001, so base becomes bank 1
	// :01000000 42 BD   -- one data byte at offset 0x0000
	src := ":020000040001F9\n:0100000042BD\n:00000001FF\n"
	report, err := LoadIntelHex(w, "test.hex", strings.NewReader(src))
	assert.NoError(t, err)
	assert.Equal(t, byte(0x42), w.written[1<<16])
	assert.Empty(t, report.Warnings)
}

func TestLoadIntelHexStartLinearAddressSetsEntryPoint(t *testing.T) {
	w := newFakeWriter()
	src := ":04000005F8180000E7\n:00000001FF\n"
	report, err := LoadIntelHex(w, "test.hex", strings.NewReader(src))
	assert.NoError(t, err)
	if assert.NotNil(t, report.EntryPoint) {
		assert.Equal(t, uint32(0xf8180000), *report.EntryPoint)
	}
}

func TestLoadSRecordS1DataRecord(t *testing.T) {
	w := newFakeWriter()
	// S1 06 8000 A9 00 60 <checksum>
	// length byte = 0x06 (addr 2 + data 3 + checksum 1)
	// sum = 0x06+0x80+0x00+0xA9+0x00+0x60 = 0x18F -> low byte 0x8F, checksum = 0xFF-0x8F = 0x70
	src := "S106 8000 A9 00 60 70\n"
	src = strings.ReplaceAll(src, " ", "")
	report, err := LoadSRecord(w, "test.s19", strings.NewReader(src))
	assert.NoError(t, err)
	assert.Empty(t, report.Warnings)
	assert.Equal(t, byte(0xa9), w.written[0x8000])
	assert.Equal(t, byte(0x60), w.written[0x8002])
}

func TestLoadSRecordS9EntryPoint(t *testing.T) {
	w := newFakeWriter()
	// S9 03 F818 <checksum>: length=3(addr2+cksum1), sum=0x03+0xF8+0x18=0x113 -> 0x13, cksum=0xFF-0x13=0xEC
	src := "S903F818EC\n"
	report, err := LoadSRecord(w, "test.s19", strings.NewReader(src))
	assert.NoError(t, err)
	if assert.NotNil(t, report.EntryPoint) {
		assert.Equal(t, uint32(0xf818), *report.EntryPoint)
	}
}

func TestLoadSRecordHeaderIgnored(t *testing.T) {
	w := newFakeWriter()
	src := "S0030000FC\nS106800000000000\n" // malformed data record tail is fine, only header matters here
	_, err := LoadSRecord(w, "test.s19", strings.NewReader(src))
	assert.NoError(t, err)
}

func TestLoadSRecordBadChecksumWarns(t *testing.T) {
	w := newFakeWriter()
	src := "S10680000000FF00\n"
	report, err := LoadSRecord(w, "test.s19", strings.NewReader(src))
	assert.NoError(t, err)
	assert.Len(t, report.Warnings, 1)
}
