package cli

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/athanorlabs/go-edec"
)

type signFlags struct {
	key     string
	in      string
	context string
	preHash bool
}

func (f *signFlags) options() *edec.Options {
	return &edec.Options{Context: f.context, PreHash: f.preHash}
}

func addVariantFlags(cmd *cobra.Command, f *signFlags) {
	cmd.Flags().StringVarP(&f.in, "in", "i", "-", "message file, - for stdin")
	cmd.Flags().StringVar(&f.context, "context", "", "EdDSA context string, at most 255 bytes")
	cmd.Flags().BoolVar(&f.preHash, "prehash", false, "use Ed25519ph or Ed448ph")
}

// AddSignCommand adds the sign command to the root command.
func AddSignCommand(root *cobra.Command, flags *GlobalFlags) {
	f := &signFlags{}

	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a message with an Ed25519 or Ed448 key",
		Long: `Sign a message and print the hex encoded signature.

Examples:
  edec sign --key ed25519.pem --in message.txt
  echo -n hello | edec sign -k ed448.pem --context app --prehash`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			priv, err := readPrivateKey(f.key, cmd.InOrStdin())
			if err != nil {
				return err
			}
			defer priv.Destroy()

			msg, err := readInput(f.in, cmd.InOrStdin())
			if err != nil {
				return err
			}

			sig, err := edec.SignWithOptions(priv, msg, f.options())
			if err != nil {
				return err
			}

			logger(cmd).Debug().
				Str("algorithm", priv.Algorithm().String()).
				Int("message_bytes", len(msg)).
				Bool("prehash", f.preHash).
				Msg("signed message")

			return writeResult(cmd.OutOrStdout(), flags.Output,
				field{"algorithm", priv.Algorithm().String()},
				field{"signature", hex.EncodeToString(sig)},
			)
		},
	}

	cmd.Flags().StringVarP(&f.key, "key", "k", "", "private key file")
	_ = cmd.MarkFlagRequired("key")
	addVariantFlags(cmd, f)
	root.AddCommand(cmd)
}

// AddVerifyCommand adds the verify command to the root command.
func AddVerifyCommand(root *cobra.Command, flags *GlobalFlags) {
	f := &signFlags{}
	var sigHex string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify an Ed25519 or Ed448 signature",
		Long: `Verify a hex encoded signature over a message. The key may be a public
key or a private key file. Exits with status 1 if the signature is invalid.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pub, err := readPublicKey(f.key, cmd.InOrStdin())
			if err != nil {
				return err
			}

			sig, err := hex.DecodeString(sigHex)
			if err != nil {
				return fmt.Errorf("%w: signature is not hex: %w", errInvalidInput, err)
			}

			msg, err := readInput(f.in, cmd.InOrStdin())
			if err != nil {
				return err
			}

			verr := edec.VerifyWithOptions(pub, msg, sig, f.options())
			if verr != nil && !errors.Is(verr, edec.ErrInvalidSignature) {
				return verr
			}

			if err := writeResult(cmd.OutOrStdout(), flags.Output,
				field{"algorithm", pub.Algorithm().String()},
				field{"valid", verr == nil},
			); err != nil {
				return err
			}

			if verr != nil {
				logger(cmd).Debug().Err(verr).Msg("verification failed")
			}
			return verr
		},
	}

	cmd.Flags().StringVarP(&f.key, "key", "k", "", "public or private key file")
	cmd.Flags().StringVarP(&sigHex, "signature", "s", "", "hex encoded signature")
	_ = cmd.MarkFlagRequired("key")
	_ = cmd.MarkFlagRequired("signature")
	addVariantFlags(cmd, f)
	root.AddCommand(cmd)
}
