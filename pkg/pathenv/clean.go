package pathenv

// Clean splits a raw delimited string into entries, substitutes variable
// reference tokens for whole entries whose normalized key appears in vm,
// and removes duplicates. The first occurrence of a key wins and the
// relative order of survivors is preserved. Clean is pure and safe to
// call on partial fragments; it is reused throughout the pipeline.
func (s Syntax) Clean(raw string, vm VariableMap) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, piece := range s.Split(raw) {
		if token, ok := vm[Normalize(piece)]; ok {
			// Whole-entry textual substitution, never a partial one.
			piece = token
		}
		key := Normalize(piece)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, piece)
	}
	return out
}

// CleanString is Clean with the survivors joined back into a delimited
// string.
func (s Syntax) CleanString(raw string, vm VariableMap) string {
	return s.Join(s.Clean(raw, vm))
}
