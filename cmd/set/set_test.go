package set

import (
	"testing"
)

func TestGetCommand(t *testing.T) {
	t.Parallel()

	cmd := GetCommand()

	if cmd == nil {
		t.Fatal("GetCommand() returned nil")
	}

	if cmd.Name != "set" {
		t.Errorf("command name = %q; want %q", cmd.Name, "set")
	}

	if cmd.Action == nil {
		t.Fatal("command action should not be nil")
	}

	names := make(map[string]bool)
	for _, f := range cmd.Flags {
		for _, n := range f.Names() {
			names[n] = true
		}
	}

	for _, want := range []string{rowsFlag, colsFlag, xPixelFlag, yPixelFlag, "tty", "verbose"} {
		if !names[want] {
			t.Errorf("command is missing flag %q", want)
		}
	}
}
