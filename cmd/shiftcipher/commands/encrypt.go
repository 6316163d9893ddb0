/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: encrypt.go
Description: Encrypt command implementation.
*/

package commands

import (
	"github.com/kleascm/shiftcipher/pkg/cipher"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RunEncrypt encrypts the message with the key given as the first argument
func RunEncrypt(cmd *cobra.Command, v *viper.Viper, args []string) error {
	key, err := parseKey(args[0])
	if err != nil {
		return err
	}

	s, err := newSession(cmd, v, "encrypt")
	if err != nil {
		return err
	}

	ciphertext, err := cipher.Encrypt(s.message, key)
	if err != nil {
		return s.finish(err)
	}

	s.report.SetKey(key, false)
	s.logger.LogOperation("encrypt", key, len(ciphertext), nil)
	return s.finish(s.emit(ciphertext))
}
