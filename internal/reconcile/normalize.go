package reconcile

// Normalize projects a display name onto its comparison key: ASCII letters
// and digits survive (lowercased, original order), everything else is
// dropped. The empty string maps to the empty string; callers must treat that
// as "no name supplied", not as a key to look up.
//
// The function is pure and total: no locale dependence, no failure mode for
// any input, including unicode or punctuation-only strings.
func Normalize(raw string) string {
	key := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			key = append(key, c)
		case c >= 'A' && c <= 'Z':
			key = append(key, c+('a'-'A'))
		}
	}
	return string(key)
}
