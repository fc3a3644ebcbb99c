package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/athanorlabs/go-edec"
)

// AddVerifyCertCommand adds the verify-cert command to the root command.
func AddVerifyCertCommand(root *cobra.Command, flags *GlobalFlags) {
	var certPath, issuerPath string

	cmd := &cobra.Command{
		Use:   "verify-cert",
		Short: "Check an Ed25519 or Ed448 certificate signature",
		Long: `Check the signature of a PEM or DER certificate against an issuer key.
Without --issuer the certificate is taken to be self-signed. Only the
signature is checked; names, validity and extensions are not.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			der, err := readDER(certPath, cmd.InOrStdin(), pemCertificate)
			if err != nil {
				return err
			}

			cert, err := edec.ParseCertificate(der)
			if err != nil {
				return err
			}

			issuer := cert.PublicKey
			if issuerPath != "" {
				if issuer, err = readPublicKey(issuerPath, cmd.InOrStdin()); err != nil {
					return err
				}
			}
			if issuer == nil {
				return fmt.Errorf("%w: certificate key is unsupported; pass --issuer", errInvalidInput)
			}

			verr := cert.CheckSignature(issuer)
			if verr != nil && !errors.Is(verr, edec.ErrInvalidSignature) {
				return verr
			}

			if err := writeResult(cmd.OutOrStdout(), flags.Output,
				field{"signature_algorithm", describeAlgorithm(cert.SignatureAlgorithm)},
				field{"issuer_algorithm", issuer.Algorithm().String()},
				field{"valid", verr == nil},
			); err != nil {
				return err
			}

			return verr
		},
	}

	cmd.Flags().StringVarP(&certPath, "cert", "c", "-", "certificate file, - for stdin")
	cmd.Flags().StringVar(&issuerPath, "issuer", "", "issuer public key file (default: self-signed)")
	root.AddCommand(cmd)
}
