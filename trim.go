package iniq

// The grammar trims ASCII space characters only. Tabs and other whitespace
// are significant and survive into keys, values, and section names.

// trimLeft removes leading spaces.
func trimLeft(s string) string {
	i := 0
	for i < len(s) && s[i] == ' ' {
		i++
	}
	return s[i:]
}

// trimRight removes trailing spaces.
func trimRight(s string) string {
	end := len(s)
	for end > 0 && s[end-1] == ' ' {
		end--
	}
	return s[:end]
}

// trim removes leading and trailing spaces. Idempotent.
func trim(s string) string {
	return trimLeft(trimRight(s))
}
