package usecase

import "regexp"

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phonePattern = regexp.MustCompile(`^[0-9]{9,11}$`)
)

const minPasswordLength = 8

// ValidateEmail checks the basic shape of an email address.
func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidatePhone checks a local phone number: digits only, 9 to 11 of them.
func ValidatePhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// ValidatePassword enforces the minimum password length.
func ValidatePassword(password string) bool {
	return len(password) >= minPasswordLength
}
