package card

import (
	"errors"
	"regexp"
	"strings"
)

var ErrInvalidNumber = errors.New("invalid card number")

// numberPattern accepts four groups of four digits separated by dashes,
// e.g. 4539-1488-0343-6467.
var numberPattern = regexp.MustCompile(`^\d{4}-\d{4}-\d{4}-\d{4}$`)

// Validate checks the dashed card format and the Luhn checksum of the digits.
func Validate(number string) error {
	if !numberPattern.MatchString(number) {
		return ErrInvalidNumber
	}
	if !luhn(strings.ReplaceAll(number, "-", "")) {
		return ErrInvalidNumber
	}
	return nil
}

// LastFour returns the final digit group of a validated card number.
func LastFour(number string) string {
	digits := strings.ReplaceAll(number, "-", "")
	if len(digits) < 4 {
		return digits
	}
	return digits[len(digits)-4:]
}

// Mask renders a stored card for display, keeping only the last four digits.
func Mask(lastFour string) string {
	return "****-****-****-" + lastFour
}

func luhn(digits string) bool {
	var sum int
	var alt bool
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if alt {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		alt = !alt
	}
	return sum%10 == 0
}
