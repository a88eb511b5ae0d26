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

	"github.com/notaryproject/notation-oid-go/algorithm"
	"github.com/notaryproject/notation-oid-go/internal/encoding/asn1"
	"github.com/notaryproject/notation-oid-go/oid"
	"github.com/spf13/cobra"
)

func newDigestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "digest <name|dotted>",
		Short: "Show the digest algorithm of a signature algorithm",
		Long: `Show the digest algorithm of a signature algorithm.

The signature algorithm is given by its registry name, such as
sha256WithRSAEncryption, or in dotted decimal, such as 1.2.840.10045.4.3.2.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sig, err := parseSymbol(args[0])
			if err != nil {
				return err
			}
			digest, ok := oid.DigestInfo(sig)
			if !ok {
				return fmt.Errorf("%s has no registered digest algorithm", sig)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Signature:  %s (%s)\n", sig, sig.Dotted())
			fmt.Fprintf(out, "Digest:     %s (%s)\n", digest.Name, digest.OID.Dotted())
			fmt.Fprintf(out, "Size:       %d bytes\n", digest.Size)
			if alg, err := algorithm.FromOID(sig); err == nil {
				fmt.Fprintf(out, "Algorithm:  %s\n", alg)
			}
			return nil
		},
	}
}

// parseSymbol resolves a registry name or a dotted-decimal identifier.
func parseSymbol(s string) (oid.OID, error) {
	if o, ok := oid.ByName(s); ok {
		return o, nil
	}
	id, err := asn1.ParseDotted(s)
	if err != nil {
		return oid.NotFound, fmt.Errorf("%q is neither a registry name nor a dotted object identifier", s)
	}
	o := oid.FromObjectIdentifier(id)
	if o == oid.NotFound {
		return oid.NotFound, fmt.Errorf("object identifier %s is not registered", id)
	}
	return o, nil
}
