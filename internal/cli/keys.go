package cli

import (
	"encoding/hex"
	"encoding/pem"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/athanorlabs/go-edec"
)

// AddKeygenCommand adds the keygen command to the root command.
func AddKeygenCommand(root *cobra.Command, flags *GlobalFlags) {
	var out, pubOut string

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a key pair",
		Long: `Generate a new key pair for --algorithm.

The private key is written as a PKCS #8 PEM block carrying its public key.

Examples:
  edec keygen --algorithm ed448 --out ed448.pem --pub-out ed448.pub.pem
  edec keygen -a x25519 > x25519.pem`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runKeygen(cmd, flags, out, pubOut)
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "private key file (default stdout)")
	cmd.Flags().StringVar(&pubOut, "pub-out", "", "public key file")
	root.AddCommand(cmd)
}

func runKeygen(cmd *cobra.Command, flags *GlobalFlags, out, pubOut string) error {
	alg, err := edec.ParseAlgorithm(flags.Algorithm)
	if err != nil {
		return fmt.Errorf("%w: %w", errInvalidInput, err)
	}

	priv, pub, err := edec.GenerateKey(alg, nil)
	if err != nil {
		return err
	}
	defer priv.Destroy()

	privDER, err := edec.MarshalPrivateKey(priv)
	if err != nil {
		return err
	}
	pubDER, err := edec.MarshalPublicKey(pub)
	if err != nil {
		return err
	}

	logger(cmd).Info().Str("algorithm", alg.String()).Msg("generated key pair")

	w := cmd.OutOrStdout()
	privPEM := encodePEM(pemPrivateKey, privDER)
	toStdout := out == "" || out == "-"

	if pubOut != "" {
		if err := writeFile(pubOut, w, encodePEM(pemPublicKey, pubDER), 0o644); err != nil {
			return err
		}
	}

	if toStdout && flags.Output == OutputJSON {
		return writeResult(w, flags.Output,
			field{"algorithm", alg.String()},
			field{"public_key", hex.EncodeToString(pub.Bytes())},
			field{"private_key_pem", string(privPEM)},
		)
	}

	if err := writeFile(out, w, privPEM, 0o600); err != nil {
		return err
	}
	if toStdout {
		return nil
	}

	return writeResult(w, flags.Output,
		field{"algorithm", alg.String()},
		field{"public_key", hex.EncodeToString(pub.Bytes())},
		field{"private_key_file", out},
	)
}

// AddPubkeyCommand adds the pubkey command to the root command.
func AddPubkeyCommand(root *cobra.Command, flags *GlobalFlags) {
	var keyPath string

	cmd := &cobra.Command{
		Use:   "pubkey",
		Short: "Print the public key of a private key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			priv, err := readPrivateKey(keyPath, cmd.InOrStdin())
			if err != nil {
				return err
			}
			defer priv.Destroy()

			pub := priv.PublicKey()
			der, err := edec.MarshalPublicKey(pub)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if flags.Output == OutputJSON {
				return writeResult(w, flags.Output,
					field{"algorithm", pub.Algorithm().String()},
					field{"public_key", hex.EncodeToString(pub.Bytes())},
					field{"public_key_pem", string(encodePEM(pemPublicKey, der))},
				)
			}
			_, err = w.Write(encodePEM(pemPublicKey, der))
			return err
		},
	}

	cmd.Flags().StringVarP(&keyPath, "key", "k", "-", "private key file, - for stdin")
	root.AddCommand(cmd)
}

// AddInspectCommand adds the inspect command to the root command.
func AddInspectCommand(root *cobra.Command, flags *GlobalFlags) {
	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Describe a key or certificate",
		Long: `Describe a PEM or DER private key, public key or certificate.
Without a file argument the input is read from stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			data, err := readInput(path, cmd.InOrStdin())
			if err != nil {
				return err
			}
			fields, err := inspect(data)
			if err != nil {
				return err
			}
			return writeResult(cmd.OutOrStdout(), flags.Output, fields...)
		},
	}

	root.AddCommand(cmd)
}

// inspect describes data, trying the PEM block type first and otherwise
// each DER structure in turn.
func inspect(data []byte) ([]field, error) {
	der := data
	kinds := []string{pemPrivateKey, pemPublicKey, pemCertificate}
	if block, _ := pem.Decode(data); block != nil {
		der = block.Bytes
		kinds = []string{block.Type}
	}

	var errs []error
	for _, kind := range kinds {
		fields, err := inspectDER(kind, der)
		if err == nil {
			return fields, nil
		}
		errs = append(errs, err)
	}

	return nil, fmt.Errorf("%w: not a supported key or certificate: %w", errInvalidInput, errors.Join(errs...))
}

func inspectDER(kind string, der []byte) ([]field, error) {
	switch kind {
	case pemPrivateKey:
		priv, err := edec.ParsePrivateKey(der)
		if err != nil {
			return nil, err
		}
		defer priv.Destroy()
		return []field{
			{"type", "private key"},
			{"algorithm", priv.Algorithm().String()},
			{"oid", priv.Algorithm().OID().String()},
			{"public_key", hex.EncodeToString(priv.PublicKey().Bytes())},
		}, nil
	case pemPublicKey:
		pub, err := edec.ParsePublicKey(der)
		if err != nil {
			return nil, err
		}
		return []field{
			{"type", "public key"},
			{"algorithm", pub.Algorithm().String()},
			{"oid", pub.Algorithm().OID().String()},
			{"public_key", hex.EncodeToString(pub.Bytes())},
		}, nil
	case pemCertificate:
		cert, err := edec.ParseCertificate(der)
		if err != nil {
			return nil, err
		}
		fields := []field{
			{"type", "certificate"},
			{"signature_algorithm", describeAlgorithm(cert.SignatureAlgorithm)},
		}
		if cert.PublicKey != nil {
			fields = append(fields,
				field{"subject_algorithm", cert.PublicKey.Algorithm().String()},
				field{"subject_public_key", hex.EncodeToString(cert.PublicKey.Bytes())},
			)
		}
		return fields, nil
	default:
		return nil, fmt.Errorf("%w: unsupported PEM block %q", errInvalidInput, kind)
	}
}

func describeAlgorithm(alg edec.Algorithm) string {
	if alg == edec.UnknownAlgorithm {
		return "unsupported"
	}
	return alg.String()
}
