/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: utils.go
Description: Shared utilities for the shiftcipher commands. Provides configuration
loading, logging setup, key parsing and message input used by every command.
*/

package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/kleascm/shiftcipher/pkg/cipher"
	"github.com/kleascm/shiftcipher/pkg/logging"
	"github.com/segmentio/asm/ascii"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// LoadConfig reads the config file named by the "config" key, if any
func LoadConfig(v *viper.Viper) error {
	if configFile := v.GetString("config"); configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return nil
}

// SetupLogging builds the logger described by the configuration
func SetupLogging(v *viper.Viper, out io.Writer) (*logging.Logger, error) {
	config := logging.DefaultConfig()
	config.Level = logging.LogLevel(v.GetString("log_level"))
	config.Format = logging.LogFormat(v.GetString("log_format"))
	config.OutputDir = v.GetString("log_dir")
	config.MaxFiles = v.GetInt("log_max_files")
	config.Caller = v.GetBool("log_caller")
	config.Colors = isTerminal(out)
	config.Output = out

	logger, err := logging.NewLogger(config)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logging: %w", err)
	}
	return logger, nil
}

// parseKey converts a key argument and checks its range
func parseKey(arg string) (int, error) {
	key, err := strconv.Atoi(arg)
	if err != nil {
		return 0, usageError(fmt.Errorf("key %q is not a number", arg))
	}
	if err := cipher.ValidateKey(key); err != nil {
		return 0, err
	}
	return key, nil
}

// readMessage returns the single message line to work on. It comes from the
// "input.text" value, the "input.file" file, or the command's stdin, in that order.
func readMessage(cmd *cobra.Command, v *viper.Viper, logger *logging.Logger) (string, error) {
	if v.IsSet("input.text") {
		return checkMessage(cipher.Line(v.GetString("input.text")), logger), nil
	}

	source := "stdin"
	in := cmd.InOrStdin()
	if path := v.GetString("input.file"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrIO, err)
		}
		defer f.Close()
		in, source = f, path
	} else if isTerminal(in) {
		fmt.Fprint(cmd.ErrOrStderr(), "message: ")
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("%w: failed to read %s: %v", ErrIO, source, err)
	}
	if errors.Is(err, io.EOF) && line == "" {
		return "", fmt.Errorf("%w: no message on %s", ErrIO, source)
	}

	logger.Debug("Message read", map[string]interface{}{"source": source, "bytes": len(line)})
	return checkMessage(cipher.Line(line), logger), nil
}

// checkMessage warns about bytes outside the cipher's alphabet handling
func checkMessage(message string, logger *logging.Logger) string {
	if !ascii.ValidString(message) {
		logger.Warning("Message contains non-ASCII bytes; they are passed through unchanged", nil)
	}
	return message
}

// isTerminal reports whether w is an interactive terminal
func isTerminal(w interface{}) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
