package builder

import (
	"fmt"
	"strconv"
)

// Name prefixes marking the ini and fin roles. Role detection after a
// structural edit scans node names for them.
const (
	IniPrefix = "ini_"
	FinPrefix = "fin_"
)

// IDFn names the node created at position idx. Role prefixes are added on
// top of its result, so it must not return names starting with IniPrefix or
// FinPrefix.
type IDFn func(idx int) string

// DefaultIDFn names nodes by their decimal position: 0, 1, 2, ...
func DefaultIDFn(idx int) string { return strconv.Itoa(idx) }

// HexIDFn names nodes by their hexadecimal position: 0, ..., a, ..., ff.
// Panics if idx < 0.
func HexIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("builder: HexIDFn(%d): negative index", idx))
	}
	return strconv.FormatInt(int64(idx), 16)
}

// SymbolNumberIDFn names nodes prefix0, prefix1, ...
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("builder: SymbolNumberIDFn(%q)(%d): negative index", prefix, idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// WithSymbNumb selects SymbolNumberIDFn(prefix).
func WithSymbNumb(prefix string) BuilderOption {
	return WithIDScheme(SymbolNumberIDFn(prefix))
}

// WithHexIDs selects HexIDFn.
func WithHexIDs() BuilderOption { return WithIDScheme(HexIDFn) }
