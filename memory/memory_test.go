package memory_test

import (
	"testing"

	"github.com/sixfiveohtwo/engine/memory"
)

func TestFlatBusReadWrite(t *testing.T) {
	bus := memory.NewFlatBus()
	bus.Write(0x1234, 0x42)
	if got, want := bus.Read(0x1234), uint8(0x42); got != want {
		t.Errorf("Read after Write = %02X, want %02X", got, want)
	}
}

func TestFlatBusLoad(t *testing.T) {
	bus := memory.NewFlatBus()
	bus.Load(0x8000, []byte{0xA9, 0x01, 0x02})
	for i, want := range []uint8{0xA9, 0x01, 0x02} {
		if got := bus.Read(0x8000 + uint16(i)); got != want {
			t.Errorf("Read(%04X) = %02X, want %02X", 0x8000+i, got, want)
		}
	}
}

func TestFlatBusPeekHasNoSideEffects(t *testing.T) {
	bus := memory.NewFlatBus()
	bus.Write(0x10, 0x55)
	if got, want := bus.Peek(0x10), uint8(0x55); got != want {
		t.Errorf("Peek = %02X, want %02X", got, want)
	}
	if got, want := bus.Read(0x10), uint8(0x55); got != want {
		t.Errorf("Read after Peek = %02X, want %02X (Peek must not mutate)", got, want)
	}
}

func TestFlatBusResetKeepsContents(t *testing.T) {
	bus := memory.NewFlatBus()
	bus.Write(0x10, 0x99)
	bus.Reset()
	if got, want := bus.Read(0x10), uint8(0x99); got != want {
		t.Errorf("Read after Reset = %02X, want %02X (RAM survives reset)", got, want)
	}
}
