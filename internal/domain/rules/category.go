package rules

const (
	categoryNameMinLen = 2
	categoryNameMaxLen = 100
	categoryDescMaxLen = 500
)

// ValidateCategoryName enforces the display-layer constraints on
// category names: required, 2-100 characters, charset [A-Za-z0-9 &-].
func ValidateCategoryName(name string) Violations {
	var out Violations
	if name == "" {
		return Violations{ViolationRequired}
	}
	if len(name) < categoryNameMinLen {
		out = append(out, ViolationTooShort)
	}
	if len(name) > categoryNameMaxLen {
		out = append(out, ViolationTooLong)
	}
	for _, r := range name {
		if !isCategoryNameRune(r) {
			out = append(out, ViolationInvalidChars)
			break
		}
	}
	return out
}

// ValidateCategoryDescription allows empty descriptions and caps length.
func ValidateCategoryDescription(desc string) Violations {
	if len(desc) > categoryDescMaxLen {
		return Violations{ViolationTooLong}
	}
	return nil
}

func isCategoryNameRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == ' ' || r == '&' || r == '-':
		return true
	}
	return false
}
