package attribute

import "testing"

func TestStringRoundTripZeroParam(t *testing.T) {
	for kind, d := range registry {
		if d.params != 0 {
			continue
		}
		a := MustNew(kind)
		got := Parse(a.String())
		if got.IsCustom() || got.Kind() != kind {
			t.Errorf("round trip failed for %q: got kind %q custom=%v", kind, got.Kind(), got.IsCustom())
		}
	}
}

func TestStringRoundTripOneParam(t *testing.T) {
	for kind, d := range registry {
		if d.params != 1 {
			continue
		}
		a := MustNew(kind, 3)
		got := Parse(a.String())
		if got.IsCustom() || got.Kind() != kind {
			t.Errorf("round trip failed for %q (%s): got kind %q custom=%v", kind, a.String(), got.Kind(), got.IsCustom())
			continue
		}
		if n, _ := got.Indices(); n != 3 {
			t.Errorf("round trip index failed for %q: got n=%d", kind, n)
		}
	}
}

func TestStringRoundTripTwoParam(t *testing.T) {
	for kind, d := range registry {
		if d.params != 2 {
			continue
		}
		a := MustNew(kind, 2, 5)
		got := Parse(a.String())
		if got.IsCustom() || got.Kind() != kind {
			t.Errorf("round trip failed for %q (%s)", kind, a.String())
			continue
		}
		n, m := got.Indices()
		if n != 2 || m != 5 {
			t.Errorf("round trip indices failed for %q: got n=%d m=%d", kind, n, m)
		}
	}
}

func TestParseUnknownFallsBackToCustom(t *testing.T) {
	a := Parse("ManufacturerSpecificThing")
	if !a.IsCustom() {
		t.Fatal("expected unknown attribute name to parse as Custom")
	}
	if a.String() != "ManufacturerSpecificThing" {
		t.Fatalf("Custom String() = %q", a.String())
	}
	if _, ok := a.FeatureGroup(); ok {
		t.Fatal("expected Custom attribute to have no feature group")
	}
}

func TestParseStandardRejectsCustom(t *testing.T) {
	if _, err := ParseStandard("NotARealAttribute"); err == nil {
		t.Fatal("expected error for unrecognized standard attribute")
	}
	if _, err := ParseStandard("Dimmer"); err != nil {
		t.Fatalf("ParseStandard(Dimmer): %v", err)
	}
}

func TestDimmerFeatureGroup(t *testing.T) {
	a := MustNew("Dimmer")
	fg, ok := a.FeatureGroup()
	if !ok || fg != FeatureGroupDimmer {
		t.Fatalf("Dimmer feature group = %v, %v", fg, ok)
	}
}

func TestColorAddRIsDroppedFromDimmerGroup(t *testing.T) {
	a := MustNew("ColorAdd_R")
	fg, ok := a.FeatureGroup()
	if !ok || fg != FeatureGroupColor {
		t.Fatalf("ColorAdd_R feature group = %v, %v", fg, ok)
	}
	if fg == FeatureGroupDimmer {
		t.Fatal("ColorAdd_R must not be classified as Dimmer")
	}
}

func TestValueClamp(t *testing.T) {
	cases := []float64{-5, -0.0001, 0, 0.5, 1, 1.0001, 100}
	for _, f := range cases {
		v := NewValue(f)
		if v.Float64() < 0 || v.Float64() > 1 {
			t.Errorf("NewValue(%v) = %v, out of [0,1]", f, v)
		}
	}
}

func TestValueByteEncoding(t *testing.T) {
	if b := NewValue(0.5).Byte(); b != 128 {
		t.Fatalf("0.5 -> byte = %d, want 128", b)
	}
	if b := NewValue(1).Byte(); b != 255 {
		t.Fatalf("1.0 -> byte = %d, want 255", b)
	}
	if b := NewValue(0).Byte(); b != 0 {
		t.Fatalf("0.0 -> byte = %d, want 0", b)
	}
}

func TestValueEncodeBigEndianTwoByte(t *testing.T) {
	bytes := NewValue(1).EncodeBigEndian(2)
	if len(bytes) != 2 || bytes[0] != 255 || bytes[1] != 255 {
		t.Fatalf("EncodeBigEndian(2) at full = %v", bytes)
	}
	bytes = NewValue(0).EncodeBigEndian(2)
	if bytes[0] != 0 || bytes[1] != 0 {
		t.Fatalf("EncodeBigEndian(2) at zero = %v", bytes)
	}
}
