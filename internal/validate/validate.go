// Package validate checks credential formats before they reach the
// network layer.
package validate

// Weight table for the ИНН check digits. The 10-digit form uses the last
// nine weights, the 12-digit form uses the last ten and then all eleven.
var innWeights = []int{3, 7, 2, 4, 10, 3, 5, 9, 4, 6, 8}

// TaxID reports whether s is a valid organisation or individual tax id:
// 10 or 12 decimal digits with matching check digits.
func TaxID(s string) bool {
	digits, ok := toDigits(s)
	if !ok {
		return false
	}

	switch len(digits) {
	case 10:
		return checkDigit(digits, innWeights[2:]) == digits[9]
	case 12:
		return checkDigit(digits, innWeights[1:]) == digits[10] &&
			checkDigit(digits, innWeights) == digits[11]
	}
	return false
}

// DeviceID reports whether s is a cash register registration number:
// exactly 16 decimal digits.
func DeviceID(s string) bool {
	digits, ok := toDigits(s)
	return ok && len(digits) == 16
}

func toDigits(s string) ([]int, bool) {
	if s == "" {
		return nil, false
	}
	digits := make([]int, 0, len(s))
	for _, r := range s {
		if r < '0' || r > '9' {
			return nil, false
		}
		digits = append(digits, int(r-'0'))
	}
	return digits, true
}

func checkDigit(digits, weights []int) int {
	var sum int
	for i, w := range weights {
		sum += w * digits[i]
	}
	return sum % 11 % 10
}
