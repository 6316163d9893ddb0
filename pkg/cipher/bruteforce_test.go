/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: bruteforce_test.go
Description: Tests for brute-force enumeration of all non-zero keys.
*/

package cipher_test

import (
	"testing"

	"github.com/kleascm/shiftcipher/pkg/cipher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBruteForceCompleteness tests that all 25 keys are covered in order
func TestBruteForceCompleteness(t *testing.T) {
	ciphertext := "wkh txlfn eurzq ira mxpsv ryhu wkh odcb grj"

	candidates := cipher.BruteForce(ciphertext)
	require.Len(t, candidates, 25)

	for i, c := range candidates {
		assert.Equal(t, i+1, c.Key)
		want, err := cipher.Decrypt(ciphertext, c.Key)
		require.NoError(t, err)
		assert.Equal(t, want, c.Plaintext)
	}

	assert.Equal(t, "vjg swkem dtqyp hqz lworu qxgt vjg ncba fqi", candidates[0].Plaintext)
	assert.Equal(t, "the quick brown fox jumps over the lazy dog", candidates[2].Plaintext)
}

// TestBruteForceEmpty tests that an empty message still yields 25 candidates
func TestBruteForceEmpty(t *testing.T) {
	candidates := cipher.BruteForce("\n")
	require.Len(t, candidates, 25)
	for _, c := range candidates {
		assert.Empty(t, c.Plaintext)
	}
}

// TestCandidatesStopEarly tests that the lazy sequence honors early exit
func TestCandidatesStopEarly(t *testing.T) {
	var keys []int
	for key, plaintext := range cipher.Candidates("IFMMP") {
		keys = append(keys, key)
		if plaintext == "HELLO" {
			break
		}
	}
	assert.Equal(t, []int{1}, keys)

	keys = keys[:0]
	for key := range cipher.Candidates("IFMMP") {
		if key > 3 {
			break
		}
		keys = append(keys, key)
	}
	assert.Equal(t, []int{1, 2, 3}, keys)
}
