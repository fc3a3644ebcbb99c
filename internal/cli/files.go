package cli

import (
	"bytes"
	"encoding/pem"
	"fmt"
	"io"
	"os"

	"github.com/athanorlabs/go-edec"
)

// PEM block types from RFC 7468.
const (
	pemPrivateKey  = "PRIVATE KEY"
	pemPublicKey   = "PUBLIC KEY"
	pemCertificate = "CERTIFICATE"
)

// readDER reads path, or stdin when path is "-", and strips a PEM armor of
// the given type if present. Other input is taken as raw DER.
func readDER(path string, stdin io.Reader, blockType string) ([]byte, error) {
	data, err := readInput(path, stdin)
	if err != nil {
		return nil, err
	}

	if block, _ := pem.Decode(data); block != nil {
		if block.Type != blockType {
			return nil, fmt.Errorf("%w: %s: PEM block is %q, expected %q", errInvalidInput, path, block.Type, blockType)
		}
		return block.Bytes, nil
	}

	return data, nil
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: no input file given", errInvalidInput)
	}

	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is supplied by the user
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errInvalidInput, err)
	}
	return data, nil
}

func readPrivateKey(path string, stdin io.Reader) (*edec.PrivateKey, error) {
	der, err := readDER(path, stdin, pemPrivateKey)
	if err != nil {
		return nil, err
	}
	return edec.ParsePrivateKey(der)
}

// readPublicKey accepts a public key or a private key file, in which case
// the derived public key is returned.
func readPublicKey(path string, stdin io.Reader) (*edec.PublicKey, error) {
	data, err := readInput(path, stdin)
	if err != nil {
		return nil, err
	}

	der := data
	if block, _ := pem.Decode(data); block != nil {
		der = block.Bytes
		if block.Type == pemPrivateKey {
			priv, err := edec.ParsePrivateKey(der)
			if err != nil {
				return nil, err
			}
			defer priv.Destroy()
			return priv.PublicKey(), nil
		}
	}

	return edec.ParsePublicKey(der)
}

func encodePEM(blockType string, der []byte) []byte {
	return pem.EncodeToMemory(&pem.Block{Type: blockType, Bytes: der})
}

// writeFile writes data to path with the given mode, or to w when path is
// empty or "-".
func writeFile(path string, w io.Writer, data []byte, mode os.FileMode) error {
	if path == "" || path == "-" {
		_, err := io.Copy(w, bytes.NewReader(data))
		return err
	}
	if err := os.WriteFile(path, data, mode); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
