package layout

import (
	"errors"
	"testing"

	"github.com/tsawler/slidekit/measure"
)

func TestNewDefaultsToScreen4x3(t *testing.T) {
	l := New()
	if l.Name() != Screen4x3 {
		t.Errorf("Name() = %q, want %q", l.Name(), Screen4x3)
	}
	if l.CXForUnit(measure.EMU) != 9144000 || l.CYForUnit(measure.EMU) != 6858000 {
		t.Errorf("dimensions = %v x %v", l.CX(), l.CY())
	}
	if !l.IsLandscape() {
		t.Error("default layout should be landscape")
	}
}

func TestSetNamedLayouts(t *testing.T) {
	tests := []struct {
		name   Name
		cx, cy float64
	}{
		{Screen4x3, 9144000, 6858000},
		{Screen16x10, 9144000, 5715000},
		{Screen16x9, 9144000, 5143500},
		{Mm35, 10287000, 6858000},
		{A3, 15120000, 10692000},
		{A4, 10692000, 7560000},
		{B4ISO, 10826750, 8120063},
		{B5ISO, 7169150, 5376863},
		{Banner, 7315200, 914400},
		{Letter, 9144000, 6858000},
		{Overhead, 9144000, 6858000},
	}

	for _, tt := range tests {
		t.Run(string(tt.name), func(t *testing.T) {
			l := New()
			if err := l.Set(tt.name, true); err != nil {
				t.Fatalf("Set(%q) error: %v", tt.name, err)
			}
			if got := l.CXForUnit(measure.EMU); got != tt.cx {
				t.Errorf("landscape cx = %v, want %v", got, tt.cx)
			}
			if got := l.CYForUnit(measure.EMU); got != tt.cy {
				t.Errorf("landscape cy = %v, want %v", got, tt.cy)
			}

			if err := l.Set(tt.name, false); err != nil {
				t.Fatalf("Set(%q, portrait) error: %v", tt.name, err)
			}
			if got := l.CXForUnit(measure.EMU); got != tt.cy {
				t.Errorf("portrait cx = %v, want %v", got, tt.cy)
			}
			if got := l.CYForUnit(measure.EMU); got != tt.cx {
				t.Errorf("portrait cy = %v, want %v", got, tt.cx)
			}
		})
	}

	if len(Names()) != len(tests) {
		t.Errorf("Names() has %d entries, want %d", len(Names()), len(tests))
	}
}

func TestPortraitScreen4x3(t *testing.T) {
	l := New()
	if err := l.Set(Screen4x3, false); err != nil {
		t.Fatal(err)
	}
	if l.CXForUnit(measure.EMU) != 6858000 || l.CYForUnit(measure.EMU) != 9144000 {
		t.Errorf("portrait 4x3 = %v x %v, want 6858000 x 9144000", l.CX(), l.CY())
	}
	if l.IsLandscape() {
		t.Error("portrait layout reports landscape")
	}
}

func TestSetInvalidKey(t *testing.T) {
	l := New()
	for _, name := range []Name{"widescreen", Custom} {
		err := l.Set(name, true)
		if !errors.Is(err, ErrInvalidLayoutKey) {
			t.Errorf("Set(%q) error = %v, want ErrInvalidLayoutKey", name, err)
		}
	}
	if l.Name() != Screen4x3 || l.CXForUnit(measure.EMU) != 9144000 {
		t.Errorf("failed Set changed the layout to %q %v x %v", l.Name(), l.CX(), l.CY())
	}

	if _, _, err := Lookup("nope"); !errors.Is(err, ErrInvalidLayoutKey) {
		t.Errorf("Lookup error = %v, want ErrInvalidLayoutKey", err)
	}
}

func TestSetCustom(t *testing.T) {
	l := New()
	l.SetCustom(measure.EMUs(1000), measure.EMUs(2000), true)
	if l.Name() != Custom {
		t.Errorf("Name() = %q, want custom", l.Name())
	}
	if l.CX().Value() != 1000 || l.CY().Value() != 2000 {
		t.Errorf("custom = %v x %v", l.CX(), l.CY())
	}

	l.SetCustom(measure.EMUs(1000), measure.EMUs(2000), false)
	if l.CX().Value() != 2000 || l.CY().Value() != 1000 {
		t.Errorf("custom portrait = %v x %v", l.CX(), l.CY())
	}
}

func TestSetCXMarksCustom(t *testing.T) {
	l := New()
	l.SetCX(measure.Centimeters(30)).SetCY(measure.Centimeters(20))
	if l.Name() != Custom {
		t.Errorf("Name() = %q, want custom", l.Name())
	}
	if got := l.CXForUnit(measure.EMU); got != 30*360000 {
		t.Errorf("CXForUnit(EMU) = %v", got)
	}
	if got := l.CYForUnit(measure.Centimeter); got != 20 {
		t.Errorf("CYForUnit(cm) = %v", got)
	}
}

func TestOrientationIsNotRetroactive(t *testing.T) {
	l := New()
	if err := l.Set(A4, false); err != nil {
		t.Fatal(err)
	}
	l.SetCX(measure.EMUs(5))
	if l.CY().Value() != 10692000 {
		t.Errorf("SetCX disturbed cy: %v", l.CY())
	}
}
