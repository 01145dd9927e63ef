package ctrlc

import "testing"

// ///////////////////////////////////////////////
// Signal Names
// ///////////////////////////////////////////////

func TestSignalString(t *testing.T) {
	cases := []struct {
		sig  Signal
		want string
	}{
		{Interrupt, "interrupt"},
		{Terminate, "terminate"},
		{Hangup, "hangup"},
		{Break, "break"},
		{Signal(99), "unknown"},
	}
	for _, c := range cases {
		if got := c.sig.String(); got != c.want {
			t.Errorf("Signal(%d).String() = %q, want %q", int(c.sig), got, c.want)
		}
	}
}
