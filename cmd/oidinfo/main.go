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

// Command oidinfo inspects object identifiers against the OID registry.
package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/notaryproject/notation-oid-go/log"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "oidinfo",
		Short: "Inspect object identifiers against the OID registry",
		Long: `Inspect object identifiers against the OID registry.

Examples:
  # Resolve the content octets of an object identifier
  oidinfo lookup 2a864886f70d01010b

  # Render an encoded object identifier as dotted decimal
  oidinfo sprint 06032a8648

  # Show the digest of a signature algorithm
  oidinfo digest id_ecdsa_with_sha256

  # Show the signature algorithm of certificates
  oidinfo cert leaf.crt

  # Show the algorithms of a timestamp token and check it covers a file
  oidinfo timestamp token.der --content signature.jws`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				ctx := log.WithLogger(cmd.Context(), log.New(cmd.ErrOrStderr(), log.LevelDebug))
				cmd.SetContext(ctx)
			}
		},
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log details to stderr")
	cmd.AddCommand(
		newLookupCmd(),
		newSprintCmd(),
		newDigestCmd(),
		newListCmd(),
		newCertCmd(),
		newTimestampCmd(),
	)
	return cmd
}

// decodeHex decodes hex input, ignoring colons and whitespace between
// octets.
func decodeHex(s string) ([]byte, error) {
	s = strings.Map(func(r rune) rune {
		switch r {
		case ':', ' ', '\t', '\n':
			return -1
		}
		return r
	}, s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex input: %w", err)
	}
	return data, nil
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "oidinfo:", err)
		os.Exit(1)
	}
}
