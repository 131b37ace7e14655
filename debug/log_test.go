package debug

import (
	"bytes"
	"testing"

	"github.com/signadot/nodeconf/ir"

	"github.com/google/go-cmp/cmp"
)

func TestLevels(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	prev := SetOutput(buf)
	defer SetOutput(prev)

	Logf("loaded %d", 3)
	Warnf("could not read %s\n", "a.b")
	Errorf("refused %v", ir.New("x").WithAttr("type", "int"))

	want := "debug: loaded 3\n" +
		"warn: could not read a.b\n" +
		"error: refused <x type=\"int\"/>\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("log mismatch (-want +got):\n%s", diff)
	}
}

func TestNodeString(t *testing.T) {
	n := ir.New("g").WithChildren(ir.New("a"), ir.New("b"))
	if got := nodeString(n); got != "<g> (2 children)" {
		t.Errorf("got %q", got)
	}
	if got := nodeString(nil); got != "<nil>" {
		t.Errorf("got %q", got)
	}
}

func TestBoolEnv(t *testing.T) {
	t.Setenv("NODECONF_TEST_FLAG", "true")
	if !boolEnv("NODECONF_TEST_FLAG") {
		t.Errorf("flag not set")
	}
	t.Setenv("NODECONF_TEST_FLAG", "nope")
	if boolEnv("NODECONF_TEST_FLAG") {
		t.Errorf("invalid value read as true")
	}
	if boolEnv("NODECONF_TEST_UNSET") {
		t.Errorf("unset flag read as true")
	}
}

func TestLogAny(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	prev := SetOutput(buf)
	defer SetOutput(prev)

	LogAny([]string{"a", "b.c"})
	LogAny(func() {})
	if got := buf.String(); !bytes.HasPrefix([]byte(got), []byte("[\"a\",\"b.c\"]\n0x")) {
		t.Errorf("unexpected output %q", got)
	}
}
