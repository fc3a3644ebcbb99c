package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/athanorlabs/go-edec"
)

// Exit codes for the CLI.
const (
	ExitSuccess = 0
	// ExitError covers failed verification and any other runtime failure.
	ExitError = 1
	// ExitInvalidInput indicates bad flags, arguments or key files.
	ExitInvalidInput = 2
)

// Output format constants.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// envPrefix is the prefix for environment overrides, e.g. EDEC_OUTPUT.
const envPrefix = "EDEC"

var (
	errInvalidInput        = errors.New("invalid input")
	errInvalidOutputFormat = errors.New("invalid output format")
)

// GlobalFlags holds flags available to all commands.
type GlobalFlags struct {
	// Config is an optional YAML file with defaults for the other flags.
	Config    string
	Algorithm string
	Output    string
	Verbose   bool
	Quiet     bool
}

// AddGlobalFlags adds global flags to a command.
func AddGlobalFlags(cmd *cobra.Command, flags *GlobalFlags) {
	cmd.PersistentFlags().StringVar(&flags.Config, "config", "", "config file (yaml)")
	cmd.PersistentFlags().StringVarP(&flags.Algorithm, "algorithm", "a", edec.Ed25519.String(),
		"key algorithm (ed25519|ed448|x25519|x448)")
	cmd.PersistentFlags().StringVarP(&flags.Output, "output", "o", OutputText, "output format (text|json)")
	cmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "enable verbose output")
	cmd.PersistentFlags().BoolVarP(&flags.Quiet, "quiet", "q", false, "suppress non-essential output")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
}

// BindGlobalFlags binds the global flags to v, reads the config file if one
// was given, and enables EDEC_ environment overrides. Explicit flags win over
// the environment, which wins over the config file.
func BindGlobalFlags(v *viper.Viper, cmd *cobra.Command, flags *GlobalFlags) error {
	rootFlags := cmd.Root().PersistentFlags()
	for _, name := range []string{"algorithm", "output", "verbose", "quiet"} {
		if err := v.BindPFlag(name, rootFlags.Lookup(name)); err != nil {
			return err
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if flags.Config != "" {
		v.SetConfigFile(flags.Config)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("%w: failed to read config file: %w", errInvalidInput, err)
		}
	}

	flags.Algorithm = v.GetString("algorithm")
	flags.Output = v.GetString("output")
	flags.Verbose = v.GetBool("verbose")
	flags.Quiet = v.GetBool("quiet")

	return nil
}

// ValidOutputFormats returns the list of valid output format values.
func ValidOutputFormats() []string {
	return []string{OutputText, OutputJSON}
}

// IsValidOutputFormat checks if the given format is a valid output format.
func IsValidOutputFormat(format string) bool {
	for _, valid := range ValidOutputFormats() {
		if format == valid {
			return true
		}
	}
	return false
}

// ExitCodeForError returns the process exit code for err: ExitSuccess for
// nil, ExitInvalidInput for malformed input and ExitError otherwise.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	for _, target := range []error{
		errInvalidInput,
		errInvalidOutputFormat,
		edec.ErrInvalidEncoding,
		edec.ErrInvalidOptions,
		edec.ErrInvalidKey,
	} {
		if errors.Is(err, target) {
			return ExitInvalidInput
		}
	}

	if isInvalidInputError(err.Error()) {
		return ExitInvalidInput
	}

	return ExitError
}

// isInvalidInputError catches cobra's own flag and argument errors.
func isInvalidInputError(errMsg string) bool {
	invalidInputPatterns := []string{
		"unknown flag",
		"unknown shorthand flag",
		"flag needs an argument",
		"invalid argument",
		"if any flags in the group",
		"required flag",
		"unknown command",
		"accepts ",
	}

	for _, pattern := range invalidInputPatterns {
		if strings.Contains(errMsg, pattern) {
			return true
		}
	}
	return false
}
