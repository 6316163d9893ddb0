/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: bruteforce.go
Description: Exhaustive decryption under every non-zero key. No ranking is done
here; the candidates are meant for a human to read through.
*/

package cipher

import "iter"

// Candidate is the plaintext produced by one key
type Candidate struct {
	Key       int    `json:"key"`
	Plaintext string `json:"plaintext"`
}

// Candidates yields the decryption of ciphertext under keys 1..25 in ascending order
func Candidates(ciphertext string) iter.Seq2[int, string] {
	line := Line(ciphertext)
	return func(yield func(int, string) bool) {
		for key := 1; key < AlphabetSize; key++ {
			if !yield(key, transform(line, key, ShiftBackward)) {
				return
			}
		}
	}
}

// BruteForce returns all 25 candidates for ciphertext
func BruteForce(ciphertext string) []Candidate {
	candidates := make([]Candidate, 0, AlphabetSize-1)
	for key, plaintext := range Candidates(ciphertext) {
		candidates = append(candidates, Candidate{Key: key, Plaintext: plaintext})
	}
	return candidates
}
