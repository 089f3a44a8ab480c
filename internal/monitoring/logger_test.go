package monitoring

import "testing"

func TestSetLogger(t *testing.T) {
	prev := Logf
	t.Cleanup(func() { Logf = prev })

	var got string
	SetLogger(func(format string, v ...interface{}) { got = format })
	Logf("hello %d", 1)
	if got != "hello %d" {
		t.Errorf("captured format = %q, want %q", got, "hello %d")
	}

	// nil installs a no-op, not a nil func.
	SetLogger(nil)
	Logf("must not panic")
}
