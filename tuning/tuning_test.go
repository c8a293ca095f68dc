package tuning

import (
	"testing"

	"github.com/milk9111/platformkit/control"
)

func TestDefaultTuningLoads(t *testing.T) {
	cfg, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("shipped tuning failed validation: %v", err)
	}
	if !cfg.JumpEnabled {
		t.Fatalf("shipped tuning should enable jumping")
	}
	if cfg.CameraFollowMode != control.FollowLerp {
		t.Fatalf("camera_follow_mode = %s, want lerp", cfg.CameraFollowMode)
	}
}

func TestLoadUnknownFile(t *testing.T) {
	if _, err := Load("nope.yaml"); err == nil {
		t.Fatalf("missing tuning file should error")
	}
}

func TestCleanPath(t *testing.T) {
	for _, c := range []struct {
		in   string
		want string
	}{
		{"", DefaultFile},
		{DefaultFile, DefaultFile},
		{"tuning/" + DefaultFile, DefaultFile},
		{"custom.yaml", "custom.yaml"},
	} {
		if got := cleanPath(c.in); got != c.want {
			t.Fatalf("cleanPath(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
