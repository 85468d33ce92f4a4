package main

import "testing"

func TestPopReturnsLowestPendingBit(t *testing.T) {
	ic := &InterruptController{IE: 0x1F, IF: 0x00}
	if _, ok := ic.Pop(); ok {
		t.Fatalf("Pop() on empty IF should report ok=false")
	}

	ic.Request(InterruptTimer)
	ic.Request(InterruptVBlank)
	kind, ok := ic.Pop()
	if !ok || kind != InterruptVBlank {
		t.Fatalf("Pop() = (%v, %v), want (V-Blank, true)", kind, ok)
	}
	if ic.IF&0x01 != 0 {
		t.Fatalf("Pop() should have cleared the V-Blank IF bit")
	}
	if ic.IF&0x04 == 0 {
		t.Fatalf("Pop() should not have touched the still-pending Timer bit")
	}
}

func TestPopRequiresEnableBit(t *testing.T) {
	ic := &InterruptController{IE: 0x00, IF: 0x01}
	if _, ok := ic.Pop(); ok {
		t.Fatalf("Pop() should not fire an interrupt whose IE bit is clear")
	}
}

func TestEIDelayAppliesAfterSettle(t *testing.T) {
	ic := &InterruptController{}
	ic.RequestEI()
	if ic.IME {
		t.Fatalf("IME should not be set until SettleDelayed runs")
	}
	ic.SettleDelayed()
	if !ic.IME {
		t.Fatalf("IME should be set after SettleDelayed following EI")
	}
}

func TestDIDelayAppliesAfterSettle(t *testing.T) {
	ic := &InterruptController{IME: true}
	ic.RequestDI()
	if !ic.IME {
		t.Fatalf("IME should still be set until SettleDelayed runs")
	}
	ic.SettleDelayed()
	if ic.IME {
		t.Fatalf("IME should be cleared after SettleDelayed following DI")
	}
}

func TestHandlerAddresses(t *testing.T) {
	cases := []struct {
		kind InterruptKind
		want uint16
	}{
		{InterruptVBlank, 0x0040},
		{InterruptLCDStatus, 0x0048},
		{InterruptTimer, 0x0050},
		{InterruptSerial, 0x0058},
		{InterruptButton, 0x0060},
	}
	for _, c := range cases {
		if got := c.kind.handlerAddress(); got != c.want {
			t.Fatalf("%s.handlerAddress() = 0x%04X, want 0x%04X", c.kind, got, c.want)
		}
	}
}
