package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if !f.Empty() || f.String() != "None" {
		t.Fatalf("zero frame = %q, expected empty", f)
	}

	f.Set(ActionJump)
	f.Set(ActionLeft)
	f.Set(ActionLeft)
	f.Set(ActionNone)

	if !f.Has(ActionLeft) || !f.Has(ActionJump) {
		t.Errorf("frame %q missing actions", f)
	}
	if f.Has(ActionRight) || f.Has(ActionNone) {
		t.Errorf("frame %q has unexpected actions", f)
	}
	if got := f.String(); got != "Left+Jump" {
		t.Errorf("String() = %q, expected Left+Jump", got)
	}

	copied := f
	f.Clear()
	if !f.Empty() {
		t.Error("Clear left actions behind")
	}
	if !copied.Has(ActionJump) {
		t.Error("frames should be values")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a    Action
		want string
	}{
		{ActionNone, "None"},
		{ActionLeft, "Left"},
		{ActionPause, "Pause"},
		{Action(200), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.a.String(); got != tc.want {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.a, got, tc.want)
		}
	}
}
