package pathenv

// HandleOverflow trims candidate down to maxLength. When the serialized
// candidate already fits it is returned untouched with no overflow.
// Otherwise entries are scanned right to left and non-protected entries
// are evicted into the overflow list until the remaining entries fit:
// tail entries go first and the front of the path, which carries the
// highest lookup priority, survives intact. An entry classified as a
// variable reference is never evicted, whatever the resulting length.
// Both returned slices are in original order.
func (s Syntax) HandleOverflow(candidate []string, maxLength int) (kept, overflow []string) {
	total := s.SerializedLen(candidate)
	if total <= maxLength {
		return candidate, nil
	}

	retained := len(candidate)
	evicted := make([]bool, len(candidate))
	for i := len(candidate) - 1; i >= 0 && total > maxLength; i-- {
		e := candidate[i]
		if s.IsVariableReference(e) {
			continue
		}
		evicted[i] = true
		total -= len(e)
		if retained > 1 {
			total -= len(s.Delimiter)
		}
		retained--
	}

	for i, e := range candidate {
		if evicted[i] {
			overflow = append(overflow, e)
		} else {
			kept = append(kept, e)
		}
	}
	return kept, overflow
}
