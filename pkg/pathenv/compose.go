package pathenv

// Compose builds the candidate master entry list: the cleaned master
// entries minus anything already housed in a bucket (by normalized key)
// and minus literal occurrences of the placeholder tokens themselves,
// followed by one placeholder per bucket in bucket-ordinal order.
func (s Syntax) Compose(master []string, buckets [][]string, placeholders []string) []string {
	housed := make(map[string]struct{})
	for _, bucket := range buckets {
		for _, e := range bucket {
			housed[Normalize(e)] = struct{}{}
		}
	}
	literal := make(map[string]struct{}, len(placeholders))
	for _, p := range placeholders {
		literal[p] = struct{}{}
	}

	out := make([]string, 0, len(master)+len(placeholders))
	for _, e := range master {
		if _, ok := housed[Normalize(e)]; ok {
			continue
		}
		// Textual match, so an already-present placeholder is not
		// injected twice.
		if _, ok := literal[e]; ok {
			continue
		}
		out = append(out, e)
	}
	return append(out, placeholders...)
}

// ProtectedLen returns the serialized length of the variable-reference
// entries in candidate, delimiters included. When this alone exceeds the
// budget the run can only warn: protected entries are never evicted.
func (s Syntax) ProtectedLen(candidate []string) int {
	var protected []string
	for _, e := range candidate {
		if s.IsVariableReference(e) {
			protected = append(protected, e)
		}
	}
	return s.SerializedLen(protected)
}
