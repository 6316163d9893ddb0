/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: decrypt.go
Description: Decrypt command implementation. Uses the given key when there is one
and falls back to frequency-analysis key recovery otherwise.
*/

package commands

import (
	"fmt"

	"github.com/kleascm/shiftcipher/pkg/analysis"
	"github.com/kleascm/shiftcipher/pkg/cipher"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RunDecrypt decrypts the message with the key argument, or recovers the key
func RunDecrypt(cmd *cobra.Command, v *viper.Viper, args []string) error {
	if len(args) == 1 {
		return decryptWithKey(cmd, v, args[0])
	}
	return decryptWithAnalysis(cmd, v)
}

func decryptWithKey(cmd *cobra.Command, v *viper.Viper, arg string) error {
	key, err := parseKey(arg)
	if err != nil {
		return err
	}

	s, err := newSession(cmd, v, "decrypt")
	if err != nil {
		return err
	}

	plaintext, err := cipher.Decrypt(s.message, key)
	if err != nil {
		return s.finish(err)
	}

	s.report.SetKey(key, false)
	s.logger.LogOperation("decrypt", key, len(plaintext), nil)
	return s.finish(s.emit(plaintext))
}

func decryptWithAnalysis(cmd *cobra.Command, v *viper.Viper) error {
	analyzer, err := newAnalyzer(v)
	if err != nil {
		return err
	}

	s, err := newSession(cmd, v, "decrypt")
	if err != nil {
		return err
	}

	recovery, err := analyzer.RecoverKey(s.message)
	if err != nil {
		s.logger.Error("Key recovery failed", map[string]interface{}{
			"operation": "decrypt",
			"error":     err,
		})
		return s.finish(err)
	}

	if !recovery.Reliable() {
		s.logger.Warning("Message is short, the recovered key may be wrong", map[string]interface{}{
			"operation": "decrypt",
			"letters":   recovery.Letters,
			"minimum":   analysis.MinReliableLetters,
		})
	}
	s.logger.LogKeyRecovery(recovery.Key, recovery.Score, recovery.Letters, map[string]interface{}{
		"operation": "decrypt",
		"method":    string(recovery.Method),
	})

	s.report.SetKey(recovery.Key, true)
	s.report.Method = recovery.Method
	s.report.Candidates = analysis.Rank(recovery.Candidates)

	if v.GetBool("decrypt.show_key") {
		fmt.Fprintf(cmd.ErrOrStderr(), "key: %d\n", recovery.Key)
	}
	return s.finish(s.emit(recovery.Plaintext))
}

// newAnalyzer builds an analyzer for the configured method
func newAnalyzer(v *viper.Viper) (*analysis.Analyzer, error) {
	method, err := analysis.ParseMethod(v.GetString("analysis.method"))
	if err != nil {
		return nil, usageError(err)
	}
	return analysis.NewAnalyzer(method)
}
