/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: cipher.go
Description: Shift cipher encryption and known-key decryption. Both operate on the
first line of a message: processing stops at the first newline, and the
terminator (including a preceding carriage return) is not part of the result.
*/

package cipher

import "strings"

// Line returns the part of message before its first line terminator
func Line(message string) string {
	if i := strings.IndexByte(message, '\n'); i >= 0 {
		message = message[:i]
	}
	return strings.TrimSuffix(message, "\r")
}

// Encrypt shifts every letter of the message forward by key
func Encrypt(message string, key int) (string, error) {
	if err := ValidateKey(key); err != nil {
		return "", err
	}
	return transform(Line(message), key, ShiftForward), nil
}

// Decrypt shifts every letter of the ciphertext backward by key
func Decrypt(ciphertext string, key int) (string, error) {
	if err := ValidateKey(key); err != nil {
		return "", err
	}
	return transform(Line(ciphertext), key, ShiftBackward), nil
}

// transform applies shift to each byte of a terminator-free line
func transform(line string, key int, shift func(byte, int) byte) string {
	out := make([]byte, len(line))
	for i := 0; i < len(line); i++ {
		out[i] = shift(line[i], key)
	}
	return string(out)
}
