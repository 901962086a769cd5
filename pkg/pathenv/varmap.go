package pathenv

import (
	"sort"
	"strings"
)

// VariableMap maps the normalized key of a variable's expanded value to
// that variable's reference token. It is rebuilt from the environment
// snapshot on every invocation.
type VariableMap map[string]string

// BuildVariableMap scans an environment snapshot for variables usable as
// substitution targets. A variable is eligible when its value is
// non-empty and free of the field delimiter (a variable standing for a
// list cannot substitute for a single entry). When several variables
// share an expansion, the first one in name order wins; iterating sorted
// names keeps the tie-break deterministic regardless of snapshot
// enumeration order.
func (s Syntax) BuildVariableMap(env map[string]string) VariableMap {
	names := make([]string, 0, len(env))
	for name := range env {
		names = append(names, name)
	}
	sort.Strings(names)

	vm := make(VariableMap)
	for _, name := range names {
		value := env[name]
		if value == "" || strings.Contains(value, s.Delimiter) {
			continue
		}
		key := Normalize(value)
		if key == "" {
			continue
		}
		if _, taken := vm[key]; !taken {
			vm[key] = s.Token(name)
		}
	}
	return vm
}
