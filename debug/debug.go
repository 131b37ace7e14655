package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Registry bool
	Load     bool
	Save     bool
	Parse    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Registry = boolEnv("NODECONF_DEBUG_REGISTRY")
	d.Load = boolEnv("NODECONF_DEBUG_LOAD")
	d.Save = boolEnv("NODECONF_DEBUG_SAVE")
	d.Parse = boolEnv("NODECONF_DEBUG_PARSE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Registry() bool {
	return d.Registry
}
func Load() bool {
	return d.Load
}
func Save() bool {
	return d.Save
}
func Parse() bool {
	return d.Parse
}

// LogAny writes v as a line of JSON, or with %v if v has no JSON form.
func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(output(), "%v\n", v)
		return
	}
	output().Write(append(d, '\n'))
}
