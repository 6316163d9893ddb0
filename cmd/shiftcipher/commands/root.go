/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: root.go
Description: Command tree for shiftcipher. Builds the cobra root with persistent
flags bound into a viper instance, registers the encrypt, decrypt, bruteforce and
analyze commands, and runs the whole thing with error-to-exit-code mapping.
*/

package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/kleascm/shiftcipher/pkg/analysis"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version of the shiftcipher tool
const Version = "1.0.0"

// EnvPrefix prefixes every environment variable read by shiftcipher
const EnvPrefix = "SHIFTCIPHER"

// NewRootCommand builds the shiftcipher command tree around its own viper instance
func NewRootCommand() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:   "shiftcipher",
		Short: "Shift (Caesar) cipher encryption, decryption and cryptanalysis",
		Long: `shiftcipher encrypts and decrypts a single line of text with a shift (Caesar)
cipher. When the key is unknown it recovers the most likely key by comparing the
letter frequencies of the ciphertext with those of English, or lists all 25
possible decryptions for manual inspection.

The message is read from --text, --file, or the first line of standard input.`,
		Version:       Version,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return usageError(errors.New("an operation is required (encrypt, decrypt, bruteforce, analyze)"))
			}
			return usageError(fmt.Errorf("unknown operation %q", args[0]))
		},
	}
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError(err)
	})

	// Add persistent flags
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Configuration file path (yaml, json or toml)")
	flags.String("log-level", "warn", "Logging level (debug, info, warn, error)")
	flags.String("log-format", "custom", "Log format (text, json, custom)")
	flags.String("log-dir", "", "Directory for log files (empty disables file logging)")
	flags.Int("log-max-files", 10, "Maximum number of log files to keep")
	flags.Bool("log-caller", false, "Include the calling source line in log entries")
	flags.String("report-dir", "", "Directory for JSON run reports (empty disables reports)")
	flags.StringP("text", "t", "", "Message to process instead of standard input")
	flags.StringP("file", "f", "", "Read the message from the first line of this file")

	// Bind flags to viper
	v.BindPFlag("config", flags.Lookup("config"))
	v.BindPFlag("log_level", flags.Lookup("log-level"))
	v.BindPFlag("log_format", flags.Lookup("log-format"))
	v.BindPFlag("log_dir", flags.Lookup("log-dir"))
	v.BindPFlag("log_max_files", flags.Lookup("log-max-files"))
	v.BindPFlag("log_caller", flags.Lookup("log-caller"))
	v.BindPFlag("report_dir", flags.Lookup("report-dir"))
	v.BindPFlag("input.text", flags.Lookup("text"))
	v.BindPFlag("input.file", flags.Lookup("file"))

	// Add encrypt command
	encryptCmd := &cobra.Command{
		Use:   "encrypt KEY",
		Short: "Encrypt the message with a key in [0,25]",
		Long: `Shift every letter of the message forward by KEY positions. Case is kept and
non-letters are copied unchanged.`,
		Example: `  echo "HELLO" | shiftcipher encrypt 1`,
		Args:    usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunEncrypt(cmd, v, args)
		},
	}
	rootCmd.AddCommand(encryptCmd)

	// Add decrypt command
	decryptCmd := &cobra.Command{
		Use:   "decrypt [KEY]",
		Short: "Decrypt the message, recovering the key when it is not given",
		Long: `Shift every letter of the message backward by KEY positions. Without KEY the
most likely key is recovered by letter-frequency analysis against English. Recovery
needs a reasonable amount of text; very short messages may decrypt wrongly.`,
		Example: `  echo "IFMMP" | shiftcipher decrypt 1
  shiftcipher decrypt --show-key --file secret.txt`,
		Args: usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunDecrypt(cmd, v, args)
		},
	}
	decryptCmd.Flags().String("method", string(analysis.MethodCorrelation), "Key recovery method (correlation, chi-squared)")
	decryptCmd.Flags().Bool("show-key", false, "Print the recovered key to standard error")
	v.BindPFlag("decrypt.show_key", decryptCmd.Flags().Lookup("show-key"))
	rootCmd.AddCommand(decryptCmd)

	// Add bruteforce command
	bruteforceCmd := &cobra.Command{
		Use:   "bruteforce",
		Short: "Print the decryption under every key from 1 to 25",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunBruteForce(cmd, v, args)
		},
	}
	bruteforceCmd.Flags().Bool("numbered", false, "Prefix each line with its key")
	v.BindPFlag("bruteforce.numbered", bruteforceCmd.Flags().Lookup("numbered"))
	rootCmd.AddCommand(bruteforceCmd)

	// Add analyze command
	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "Show the letter histogram and the ranked score of every key",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunAnalyze(cmd, v, args)
		},
	}
	analyzeCmd.Flags().String("method", string(analysis.MethodCorrelation), "Scoring method (correlation, chi-squared)")
	rootCmd.AddCommand(analyzeCmd)

	// decrypt and analyze share the "analysis.method" key; bind whichever command runs
	bindMethod := func(cmd *cobra.Command, args []string) {
		v.BindPFlag("analysis.method", cmd.Flags().Lookup("method"))
	}
	decryptCmd.PreRun = bindMethod
	analyzeCmd.PreRun = bindMethod

	return rootCmd
}

// Execute runs the command line args and returns the process exit code
func Execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	rootCmd := NewRootCommand()
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	cmd, err := rootCmd.ExecuteC()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		if errors.Is(err, ErrUsage) {
			fmt.Fprint(stderr, cmd.UsageString())
		}
	}
	return ExitCode(err)
}
