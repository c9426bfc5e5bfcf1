package dmx

import "testing"

func TestNewChannelRange(t *testing.T) {
	if _, err := NewChannel(0); err == nil {
		t.Fatal("expected error for channel 0")
	}
	if _, err := NewChannel(513); err == nil {
		t.Fatal("expected error for channel 513")
	}
	c, err := NewChannel(1)
	if err != nil || c != 1 {
		t.Fatalf("NewChannel(1) = %v, %v", c, err)
	}
	c, err = NewChannel(512)
	if err != nil || c != 512 {
		t.Fatalf("NewChannel(512) = %v, %v", c, err)
	}
}

func TestNewUniverseIdRejectsZero(t *testing.T) {
	if _, err := NewUniverseId(0); err == nil {
		t.Fatal("expected error for universe 0")
	}
}

func TestAddressAbsoluteRoundTrip(t *testing.T) {
	for _, absolute := range []uint64{1, 2, 512, 513, 1024, 512 * 65535} {
		addr, err := FromAbsolute(absolute)
		if err != nil {
			t.Fatalf("FromAbsolute(%d): %v", absolute, err)
		}
		if got := addr.ToAbsolute(); got != absolute {
			t.Errorf("round trip %d -> %v -> %d", absolute, addr, got)
		}
	}
}

func TestParseAddress(t *testing.T) {
	addr, err := ParseAddress("1.1")
	if err != nil {
		t.Fatalf("ParseAddress: %v", err)
	}
	if addr.Universe != 1 || addr.Channel != 1 {
		t.Fatalf("got %+v", addr)
	}
	if addr.String() != "1.1" {
		t.Fatalf("String() = %q", addr.String())
	}

	if _, err := ParseAddress("bad"); err == nil {
		t.Fatal("expected parse error")
	}
	if _, err := ParseAddress("0.1"); err == nil {
		t.Fatal("expected error for universe 0")
	}
	if _, err := ParseAddress("1.513"); err == nil {
		t.Fatal("expected error for channel 513")
	}
}

func TestAddressOrdering(t *testing.T) {
	a := Address{Universe: 1, Channel: 2}
	b := Address{Universe: 1, Channel: 3}
	c := Address{Universe: 2, Channel: 1}
	if !a.Less(b) {
		t.Error("expected a < b")
	}
	if !b.Less(c) {
		t.Error("expected b < c")
	}
}

func TestMultiverseAutoCreatesUniverse(t *testing.T) {
	m := NewMultiverse()
	addr := Address{Universe: 3, Channel: 10}
	m.Set(addr, 200)

	if got := m.Get(addr); got != 200 {
		t.Fatalf("Get = %d, want 200", got)
	}
	if _, ok := m.Universe(3); !ok {
		t.Fatal("expected universe 3 to have been auto-created")
	}
}

func TestMultiverseGetMissingUniverseIsZero(t *testing.T) {
	m := NewMultiverse()
	if got := m.Get(Address{Universe: 9, Channel: 1}); got != 0 {
		t.Fatalf("Get on missing universe = %d, want 0", got)
	}
}

func TestUniverseClear(t *testing.T) {
	u := NewUniverse(1)
	u.SetValue(5, 42)
	u.Clear()
	if u.GetValue(5) != 0 {
		t.Fatal("expected Clear to zero all channels")
	}
}
