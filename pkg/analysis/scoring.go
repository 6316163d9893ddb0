/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: scoring.go
Description: Candidate key scoring. The correlation scorer aligns the observed
distribution with the English reference under every key hypothesis without
touching the text again. The decrypting scorers rebuild the histogram of each
candidate plaintext and are kept as an independent cross-check.
*/

package analysis

import (
	"fmt"
	"sort"

	"github.com/kleascm/shiftcipher/pkg/cipher"
	"github.com/segmentio/asm/ascii"
)

// Method selects how candidate keys are scored
type Method string

const (
	// MethodCorrelation scores EnglishIndex minus the reference/observed alignment
	MethodCorrelation Method = "correlation"
	// MethodChiSquared scores the chi-squared distance of each decryption from English
	MethodChiSquared Method = "chi-squared"
)

// Methods lists the supported scoring methods
var Methods = []Method{MethodCorrelation, MethodChiSquared}

// ParseMethod resolves a method name, ignoring ASCII case
func ParseMethod(name string) (Method, error) {
	for _, m := range Methods {
		if ascii.EqualFoldString(name, string(m)) {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown analysis method %q (available: %s, %s)", name, MethodCorrelation, MethodChiSquared)
}

// KeyScore is the score of one candidate key. Lower Score is better;
// Statistic is the raw value the score is derived from.
type KeyScore struct {
	Key       int     `json:"key"`
	Statistic float64 `json:"statistic"`
	Score     float64 `json:"score"`
}

// Correlation is the alignment of the reference distribution with the observed
// one under key: sum of ref[i] * freq[(i+key) mod 26].
func Correlation(freq Frequencies, key int) float64 {
	var ic float64
	for i, ref := range EnglishFrequencies {
		ic += ref * freq[(i+key)%cipher.AlphabetSize]
	}
	return ic
}

// Scores computes the correlation score of keys 1..25 in ascending key order
func Scores(freq Frequencies) []KeyScore {
	scores := make([]KeyScore, 0, cipher.AlphabetSize-1)
	for key := 1; key < cipher.AlphabetSize; key++ {
		ic := Correlation(freq, key)
		scores = append(scores, KeyScore{Key: key, Statistic: ic, Score: EnglishIndex - ic})
	}
	return scores
}

// DecryptedScores decrypts ciphertext under keys 1..25 and scores each plaintext
// histogram by its dot product with the reference. It ranks keys exactly like Scores.
func DecryptedScores(ciphertext string) ([]KeyScore, error) {
	return scoreCandidates(ciphertext, func(f Frequencies) (float64, float64) {
		var dot float64
		for i, ref := range EnglishFrequencies {
			dot += ref * f[i]
		}
		return dot, EnglishIndex - dot
	})
}

// ChiSquaredScores decrypts ciphertext under keys 1..25 and scores each plaintext
// by its chi-squared distance from the reference distribution.
func ChiSquaredScores(ciphertext string) ([]KeyScore, error) {
	return scoreCandidates(ciphertext, func(f Frequencies) (float64, float64) {
		chi := ChiSquared(f)
		return chi, chi
	})
}

// ChiSquared is the chi-squared statistic of observed frequencies against English
func ChiSquared(observed Frequencies) float64 {
	var chi float64
	for i, expected := range EnglishFrequencies {
		d := observed[i] - expected
		chi += d * d / expected
	}
	return chi
}

func scoreCandidates(ciphertext string, score func(Frequencies) (float64, float64)) ([]KeyScore, error) {
	if Observe(ciphertext).Letters == 0 {
		return nil, cipher.ErrEmptyInput
	}
	scores := make([]KeyScore, 0, cipher.AlphabetSize-1)
	for key, plaintext := range cipher.Candidates(ciphertext) {
		freq, err := Observe(plaintext).Frequencies()
		if err != nil {
			return nil, err
		}
		stat, s := score(freq)
		scores = append(scores, KeyScore{Key: key, Statistic: stat, Score: s})
	}
	return scores, nil
}

// Best folds over scores and returns the first strict minimum.
// An empty slice yields ok == false.
func Best(scores []KeyScore) (best KeyScore, ok bool) {
	for i, s := range scores {
		if i == 0 || s.Score < best.Score {
			best = s
		}
	}
	return best, len(scores) > 0
}

// Rank returns a copy of scores ordered best first; equal scores keep key order
func Rank(scores []KeyScore) []KeyScore {
	ranked := make([]KeyScore, len(scores))
	copy(ranked, scores)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score < ranked[j].Score
		}
		return ranked[i].Key < ranked[j].Key
	})
	return ranked
}
