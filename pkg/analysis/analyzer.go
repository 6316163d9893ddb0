/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: analyzer.go
Description: Key recovery for shift ciphers by letter-frequency analysis. The
analyzer scores every non-zero key, keeps the best one and decrypts the message
once with it. Nothing is shared between calls.
*/

package analysis

import (
	"fmt"

	"github.com/kleascm/shiftcipher/pkg/cipher"
)

// Recovery is the outcome of a key recovery
type Recovery struct {
	Key        int        `json:"key"`
	Plaintext  string     `json:"plaintext"`
	Score      float64    `json:"score"`
	Letters    int        `json:"letters"`
	Method     Method     `json:"method"`
	Candidates []KeyScore `json:"candidates"`
}

// Reliable reports whether the message was long enough for the statistics to mean much
func (r Recovery) Reliable() bool {
	return r.Letters >= MinReliableLetters
}

// Analyzer recovers keys with a fixed scoring method
type Analyzer struct {
	method Method
}

// NewAnalyzer creates an analyzer; an empty method selects MethodCorrelation
func NewAnalyzer(method Method) (*Analyzer, error) {
	if method == "" {
		return &Analyzer{method: MethodCorrelation}, nil
	}
	m, err := ParseMethod(string(method))
	if err != nil {
		return nil, err
	}
	return &Analyzer{method: m}, nil
}

// Method returns the scoring method in use
func (a *Analyzer) Method() Method {
	return a.method
}

// Score returns the per-key scores of ciphertext in ascending key order
func (a *Analyzer) Score(ciphertext string) ([]KeyScore, Histogram, error) {
	hist := Observe(ciphertext)
	switch a.method {
	case MethodChiSquared:
		scores, err := ChiSquaredScores(ciphertext)
		return scores, hist, err
	default:
		freq, err := hist.Frequencies()
		if err != nil {
			return nil, hist, err
		}
		return Scores(freq), hist, nil
	}
}

// RecoverKey finds the most likely key of ciphertext and the matching plaintext.
// Ciphertext without letters fails with cipher.ErrEmptyInput.
func (a *Analyzer) RecoverKey(ciphertext string) (Recovery, error) {
	scores, hist, err := a.Score(ciphertext)
	if err != nil {
		return Recovery{}, fmt.Errorf("frequency analysis failed: %w", err)
	}

	best, _ := Best(scores)
	plaintext, err := cipher.Decrypt(ciphertext, best.Key)
	if err != nil {
		return Recovery{}, err
	}

	return Recovery{
		Key:        best.Key,
		Plaintext:  plaintext,
		Score:      best.Score,
		Letters:    hist.Letters,
		Method:     a.method,
		Candidates: scores,
	}, nil
}

// RecoverKey recovers the key of ciphertext by correlation with English frequencies
func RecoverKey(ciphertext string) (Recovery, error) {
	a := &Analyzer{method: MethodCorrelation}
	return a.RecoverKey(ciphertext)
}
