/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: alphabet.go
Description: The 26-letter Latin alphabet used by the shift cipher. Maps letters to
their alphabet index in a case-insensitive way and reports which bytes take part
in shifting. Every other byte is passed through untouched by the cipher.
*/

package cipher

const (
	// AlphabetSize is the number of letters a key can rotate through
	AlphabetSize = 26

	// MinKey and MaxKey bound the keys accepted by Encrypt and Decrypt
	MinKey = 0
	MaxKey = AlphabetSize - 1
)

// IsUpper reports whether c is an ASCII uppercase letter
func IsUpper(c byte) bool {
	return 'A' <= c && c <= 'Z'
}

// IsLower reports whether c is an ASCII lowercase letter
func IsLower(c byte) bool {
	return 'a' <= c && c <= 'z'
}

// IsLetter reports whether c belongs to the alphabet in either case
func IsLetter(c byte) bool {
	return IsUpper(c) || IsLower(c)
}

// Index returns the alphabet position of c in [0,25]. The second return value
// is false when c is not a letter.
func Index(c byte) (int, bool) {
	switch {
	case IsUpper(c):
		return int(c - 'A'), true
	case IsLower(c):
		return int(c - 'a'), true
	default:
		return 0, false
	}
}

// base returns the first letter of the case c belongs to
func base(c byte) byte {
	if IsUpper(c) {
		return 'A'
	}
	return 'a'
}
