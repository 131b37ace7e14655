package debug

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/signadot/nodeconf/ir"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

type Level int

const (
	LevelTrace Level = iota
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "debug"
	}
}

var (
	mu      sync.Mutex
	out     io.Writer = os.Stderr
	colored           = isTerminal(os.Stderr)
)

// SetOutput redirects all log output and returns the previous writer.
// Output to anything but a terminal is not colored.
func SetOutput(w io.Writer) io.Writer {
	mu.Lock()
	defer mu.Unlock()
	prev := out
	out = w
	colored = isTerminal(w)
	return prev
}

func output() io.Writer {
	mu.Lock()
	defer mu.Unlock()
	return out
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

var levelColors = map[Level]*color.Color{
	LevelTrace: color.RGB(74, 92, 138),
	LevelWarn:  color.New(color.FgYellow),
	LevelError: color.New(color.FgRed, color.Bold),
}

// Logf writes a trace message. Callers gate it on one of the debug flags.
func Logf(msg string, args ...any) {
	logf(LevelTrace, msg, args...)
}

// Warnf reports a recoverable problem, such as a setting that could not
// be read.
func Warnf(msg string, args ...any) {
	logf(LevelWarn, msg, args...)
}

// Errorf reports an operation that was refused or failed.
func Errorf(msg string, args ...any) {
	logf(LevelError, msg, args...)
}

func logf(level Level, msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Node:
			args[i] = nodeString(x)
		}
	}
	line := fmt.Sprintf(msg, args...)
	if !strings.HasSuffix(line, "\n") {
		line += "\n"
	}
	mu.Lock()
	defer mu.Unlock()
	prefix := level.String() + ": "
	if colored {
		// color.NoColor follows stdout; the decision here follows out.
		c := levelColors[level]
		c.EnableColor()
		prefix = c.Sprint(prefix)
	}
	io.WriteString(out, prefix+line)
}

func nodeString(n *ir.Node) string {
	if n == nil {
		return "<nil>"
	}
	buf := bytes.NewBuffer(nil)
	buf.WriteByte('<')
	buf.WriteString(n.Name)
	for _, a := range n.Attrs {
		fmt.Fprintf(buf, " %s=%q", a.Name, a.Value)
	}
	if len(n.Children) != 0 {
		fmt.Fprintf(buf, "> (%d children)", len(n.Children))
		return buf.String()
	}
	buf.WriteString("/>")
	return buf.String()
}
