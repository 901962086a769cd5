package pathenv

import "strings"

// BuildPool merges the current bucket contents (in bucket-ordinal order)
// with the overflow list into the redistribution pool. Entries that are
// themselves a reference to one of the bucket variables are dropped,
// with or without a trailing sub-path: a bucket must never contain a
// reference to itself or a sibling, or expansion would cycle. Survivors
// are deduplicated by normalized key, first occurrence wins, then run
// through substitution once more. A substituted value may itself contain
// the delimiter, in which case it is split and every piece joins the
// pool individually.
func (s Syntax) BuildPool(buckets [][]string, overflow []string, vm VariableMap, bucketNames []string) []string {
	var merged []string
	for _, bucket := range buckets {
		merged = append(merged, bucket...)
	}
	merged = append(merged, overflow...)

	var pool []string
	seen := make(map[string]struct{})
	for _, e := range merged {
		if s.isBucketReference(e, bucketNames) {
			continue
		}
		key := Normalize(e)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		pool = append(pool, s.Clean(e, vm)...)
	}
	return pool
}

// isBucketReference reports whether entry is a reference token for one
// of the bucket variables, alone or followed by a sub-path.
func (s Syntax) isBucketReference(entry string, bucketNames []string) bool {
	entry = stripQuotes(strings.TrimSpace(entry))
	for _, name := range bucketNames {
		token := s.Token(name)
		if len(entry) < len(token) || !strings.EqualFold(entry[:len(token)], token) {
			continue
		}
		if len(entry) == len(token) {
			return true
		}
		if c := entry[len(token)]; c == '\\' || c == '/' {
			return true
		}
	}
	return false
}
