package buildinfo

import "testing"

func TestString(t *testing.T) {
	old := Version
	t.Cleanup(func() { Version = old })

	Version = "v0.3.0"
	if got := String(); got != "lab v0.3.0 (commit=none, date=unknown)" {
		t.Fatalf("unexpected version string: %q", got)
	}
}
