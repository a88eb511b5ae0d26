// Copyright The Notary Project Authors.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"

	"github.com/notaryproject/notation-oid-go/log"
	"github.com/notaryproject/notation-oid-go/x509"
	"github.com/spf13/cobra"
)

func newCertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cert <file>",
		Short: "Show the signature algorithms of certificates",
		Long: `Show the signature algorithms of the certificates in a PEM or DER file.

For each certificate the signature algorithm, the digest the issuer signed
over and the algorithm recommended for its own key are shown.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.GetLogger(cmd.Context())
			certs, err := x509.ReadCertificateFile(args[0])
			if err != nil {
				return err
			}
			logger.Debugf("read %d certificates from %s", len(certs), args[0])

			out := cmd.OutOrStdout()
			for i, cert := range certs {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintf(out, "Subject:    %s\n", cert.Subject)
				sig, digest, err := x509.SignatureDigest(cert)
				switch {
				case err == nil:
					fmt.Fprintf(out, "Signature:  %s (%s)\n", sig, sig.Dotted())
					fmt.Fprintf(out, "Digest:     %s (%d bytes)\n", digest.Name, digest.Size)
				case sig.Valid():
					fmt.Fprintf(out, "Signature:  %s (%s)\n", sig, sig.Dotted())
					logger.Warnf("certificate %d: %v", i, err)
				default:
					return fmt.Errorf("certificate %d: %w", i, err)
				}
				if alg, err := x509.KeyAlgorithm(cert); err == nil {
					fmt.Fprintf(out, "Key:        %s\n", alg)
				} else {
					logger.Warnf("certificate %d: %v", i, err)
				}
			}
			return nil
		},
	}
}
