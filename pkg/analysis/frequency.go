/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: frequency.go
Description: English reference letter statistics and the observed letter histogram
of a message. The histogram is built once per message; candidate keys are tested
by rotating the normalized frequencies rather than by decrypting the text again.
*/

package analysis

import (
	"fmt"
	"strings"

	"github.com/kleascm/shiftcipher/pkg/cipher"
)

// EnglishIndex is the index of coincidence of English text
const EnglishIndex = 0.0654967

// MinReliableLetters is the letter count below which key recovery is a guess
const MinReliableLetters = 20

// EnglishFrequencies holds the relative frequency of each letter a..z in English
var EnglishFrequencies = [cipher.AlphabetSize]float64{
	// a        b        c        d        e        f        g        h        i
	0.08167, 0.01492, 0.02782, 0.04253, 0.12702, 0.02228, 0.02015, 0.06094, 0.06966,
	// j        k        l        m        n        o        p        q        r
	0.00153, 0.00772, 0.04025, 0.02406, 0.06749, 0.07507, 0.01929, 0.00095, 0.05987,
	// s        t        u        v        w        x        y        z
	0.06327, 0.09056, 0.02758, 0.00978, 0.02360, 0.00150, 0.01974, 0.00074,
}

// Frequencies is a normalized letter distribution indexed by alphabet position
type Frequencies [cipher.AlphabetSize]float64

// Histogram counts the letters of a message, case-folded
type Histogram struct {
	Counts  [cipher.AlphabetSize]int `json:"counts"`
	Letters int                      `json:"letters"`
}

// Observe builds the histogram of the first line of text
func Observe(text string) Histogram {
	var h Histogram
	line := cipher.Line(text)
	for i := 0; i < len(line); i++ {
		if idx, ok := cipher.Index(line[i]); ok {
			h.Counts[idx]++
			h.Letters++
		}
	}
	return h
}

// Frequencies normalizes the counts by the number of letters.
// A histogram without letters cannot be normalized.
func (h Histogram) Frequencies() (Frequencies, error) {
	var f Frequencies
	if h.Letters == 0 {
		return f, cipher.ErrEmptyInput
	}
	n := float64(h.Letters)
	for i, c := range h.Counts {
		f[i] = float64(c) / n
	}
	return f, nil
}

// Rotate returns the distribution seen after decrypting with key:
// the result at i is the observed frequency at (i+key) mod 26.
func (f Frequencies) Rotate(key int) Frequencies {
	var r Frequencies
	for i := range f {
		r[i] = f[(i+key)%cipher.AlphabetSize]
	}
	return r
}

// String renders the non-zero counts as "a=3 e=5 ..."
func (h Histogram) String() string {
	var parts []string
	for i, c := range h.Counts {
		if c == 0 {
			continue
		}
		parts = append(parts, fmt.Sprintf("%c=%d", 'a'+i, c))
	}
	return strings.Join(parts, " ")
}
