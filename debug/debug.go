package debug

import (
	"fmt"
	"os"
	"strconv"

	"github.com/goccy/go-json"
)

type debug struct {
	Parse   bool
	Encode  bool
	Patch   bool
	Patches bool
	Query   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("BTREE_DEBUG_PARSE")
	d.Encode = boolEnv("BTREE_DEBUG_ENCODE")
	d.Patch = boolEnv("BTREE_DEBUG_PATCH")
	d.Patches = boolEnv("BTREE_DEBUG_PATCHES")
	d.Query = boolEnv("BTREE_DEBUG_QUERY")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Encode() bool {
	return d.Encode
}
func Patch() bool {
	return d.Patch
}
func Patches() bool {
	return d.Patches
}
func Query() bool {
	return d.Query
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(out, "%v\n", v)
		return
	}
	out.Write(append(d, '\n'))
}
