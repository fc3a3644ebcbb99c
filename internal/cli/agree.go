package cli

import (
	"encoding/hex"

	"github.com/spf13/cobra"

	"github.com/athanorlabs/go-edec"
)

// AddAgreeCommand adds the agree command to the root command.
func AddAgreeCommand(root *cobra.Command, flags *GlobalFlags) {
	var keyPath, peerPath string
	var strict bool

	cmd := &cobra.Command{
		Use:   "agree",
		Short: "Compute an X25519 or X448 shared secret",
		Long: `Compute the raw shared secret between a private key and a peer public key.
The secret is printed in hex and should be passed through a KDF before use.

With --strict an all-zero secret from a low order peer key is an error.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			priv, err := readPrivateKey(keyPath, cmd.InOrStdin())
			if err != nil {
				return err
			}
			defer priv.Destroy()

			peer, err := readPublicKey(peerPath, cmd.InOrStdin())
			if err != nil {
				return err
			}

			agree := edec.Agree
			if strict {
				agree = edec.AgreeStrict
			}
			secret, err := agree(priv, peer)
			if err != nil {
				return err
			}

			logger(cmd).Debug().Str("algorithm", priv.Algorithm().String()).Bool("strict", strict).Msg("agreed shared secret")

			return writeResult(cmd.OutOrStdout(), flags.Output,
				field{"algorithm", priv.Algorithm().String()},
				field{"shared_secret", hex.EncodeToString(secret)},
			)
		},
	}

	cmd.Flags().StringVarP(&keyPath, "key", "k", "", "private key file")
	cmd.Flags().StringVarP(&peerPath, "peer", "p", "", "peer public key file")
	cmd.Flags().BoolVar(&strict, "strict", false, "reject low order peer keys")
	_ = cmd.MarkFlagRequired("key")
	_ = cmd.MarkFlagRequired("peer")
	root.AddCommand(cmd)
}
