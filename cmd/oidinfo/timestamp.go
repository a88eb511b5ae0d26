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
	"os"
	"time"

	"github.com/notaryproject/notation-oid-go/log"
	"github.com/notaryproject/notation-oid-go/oid"
	"github.com/notaryproject/notation-oid-go/timestamp"
	"github.com/spf13/cobra"
)

func newTimestampCmd() *cobra.Command {
	var contentPath string
	cmd := &cobra.Command{
		Use:   "timestamp <file>",
		Short: "Show the algorithms of an RFC 3161 timestamp token",
		Long: `Show the algorithms of a DER or BER encoded RFC 3161 timestamp token.

The message imprint hash algorithm and the digest and signature algorithms of
each signer are resolved against the registry. Signatures are not verified.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.GetLogger(cmd.Context())
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			token, err := timestamp.Parse(data)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			logger.Debugf("read timestamp token with %d signers and %d certificates from %s", len(token.Signers), len(token.SignedToken.Certificates), args[0])

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Policy:     %s\n", token.Info.Policy)
			fmt.Fprintf(out, "Serial:     %s\n", token.Info.SerialNumber)
			fmt.Fprintf(out, "Time:       %s\n", token.Info.GenTime.UTC().Format(time.RFC3339))
			fmt.Fprintf(out, "Imprint:    %s (%s)\n", token.Digest.OID, token.Digest.OID.Dotted())
			for i, signer := range token.Signers {
				if !signer.DigestAlgorithm.Valid() || !signer.SignatureAlgorithm.Valid() {
					logger.Warnf("signer %d: algorithm missing from the registry", i)
				}
				fmt.Fprintf(out, "Signer:     %s %s\n", signerName(signer.DigestAlgorithm), signerName(signer.SignatureAlgorithm))
			}

			if contentPath == "" {
				return nil
			}
			content, err := os.ReadFile(contentPath)
			if err != nil {
				return err
			}
			if err := token.VerifyContent(content); err != nil {
				return fmt.Errorf("%s: %w", contentPath, err)
			}
			fmt.Fprintf(out, "Content:    %s digest matches\n", token.Digest.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&contentPath, "content", "", "file whose digest must match the message imprint")
	return cmd
}

func signerName(o oid.OID) string {
	if !o.Valid() {
		return "unknown"
	}
	return o.String()
}
