// Package cli provides the edec command-line interface.
package cli

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// BuildInfo contains version information set at build time via ldflags.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

func newRootCmd(flags *GlobalFlags, info BuildInfo) *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "edec",
		Short: "Edwards and Montgomery curve keys, signatures and key agreement",
		Long: `edec generates and inspects Ed25519, Ed448, X25519 and X448 keys
(RFC 8410 PEM or DER), signs and verifies EdDSA messages, derives X25519/X448
shared secrets and checks Ed25519/Ed448 certificate signatures.

Settings can come from flags, EDEC_* environment variables or a --config
YAML file with the keys algorithm, output, verbose and quiet.`,
		Version: formatVersion(info),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := BindGlobalFlags(v, cmd, flags); err != nil {
				return fmt.Errorf("failed to bind flags: %w", err)
			}

			if !IsValidOutputFormat(flags.Output) {
				return fmt.Errorf("%w: %q must be one of %v", errInvalidOutputFormat, flags.Output, ValidOutputFormats())
			}

			cliLogger := InitLogger(flags.Verbose, flags.Quiet, cmd.ErrOrStderr())
			cmd.SetContext(cliLogger.WithContext(cmd.Context()))
			cliLogger.Debug().Str("algorithm", flags.Algorithm).Str("output", flags.Output).Msg("configuration loaded")

			return nil
		},
		SilenceUsage: true,
	}

	AddGlobalFlags(cmd, flags)

	AddKeygenCommand(cmd, flags)
	AddPubkeyCommand(cmd, flags)
	AddSignCommand(cmd, flags)
	AddVerifyCommand(cmd, flags)
	AddAgreeCommand(cmd, flags)
	AddInspectCommand(cmd, flags)
	AddVerifyCertCommand(cmd, flags)

	return cmd
}

func formatVersion(info BuildInfo) string {
	if info.Version == "" {
		info.Version = "dev"
	}
	if info.Commit == "" {
		info.Commit = "none"
	}
	if info.Date == "" {
		info.Date = "unknown"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", info.Version, info.Commit, info.Date)
}

// logger returns the command logger installed by the root command.
func logger(cmd *cobra.Command) *zerolog.Logger {
	return zerolog.Ctx(cmd.Context())
}

// Execute runs the root command with the provided context and build info.
func Execute(ctx context.Context, info BuildInfo) error {
	flags := &GlobalFlags{}
	cmd := newRootCmd(flags, info)
	return cmd.ExecuteContext(ctx)
}
