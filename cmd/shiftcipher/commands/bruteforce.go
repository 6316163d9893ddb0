/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: bruteforce.go
Description: Bruteforce command implementation. Prints the decryption under every
non-zero key, in key order, for manual inspection.
*/

package commands

import (
	"fmt"

	"github.com/kleascm/shiftcipher/pkg/cipher"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RunBruteForce prints all 25 candidate plaintexts of the message
func RunBruteForce(cmd *cobra.Command, v *viper.Viper, args []string) error {
	s, err := newSession(cmd, v, "bruteforce")
	if err != nil {
		return err
	}

	numbered := v.GetBool("bruteforce.numbered")
	for _, c := range cipher.BruteForce(s.message) {
		line := c.Plaintext
		if numbered {
			line = fmt.Sprintf("%02d: %s", c.Key, c.Plaintext)
		}
		s.logger.LogCandidate(c.Key, map[string]interface{}{"operation": "bruteforce"})
		if err := s.emit(line); err != nil {
			return s.finish(err)
		}
	}

	return s.finish(nil)
}
