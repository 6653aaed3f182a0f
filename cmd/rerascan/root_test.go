package main

import "testing"

func TestNewRootCmd_Flags(t *testing.T) {
	cmd := NewRootCmd()

	for _, name := range []string{"max-projects", "headless", "listing-url", "out-dir", "verbose"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("flag %q not registered", name)
		}
	}
}

func TestNewRootCmd_DefaultMaxProjectsIsZero(t *testing.T) {
	cmd := NewRootCmd()
	v, err := cmd.Flags().GetInt("max-projects")
	if err != nil {
		t.Fatalf("GetInt: %v", err)
	}
	// Zero means "use config default", so an unset flag never clobbers config.
	if v != 0 {
		t.Errorf("max-projects default = %d, want 0", v)
	}
}
