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
	"github.com/notaryproject/notation-oid-go/oid"
	"github.com/spf13/cobra"
)

func newLookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <hex>",
		Short: "Resolve an encoded object identifier to its registry symbol",
		Long: `Resolve an encoded object identifier to its registry symbol.

The input is either the content octets of the identifier or a complete DER
OBJECT IDENTIFIER element starting with tag 06.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := decodeHex(args[0])
			if err != nil {
				return err
			}
			o := resolve(cmd, data)
			if o == oid.NotFound {
				return oid.NotFoundError{Data: data}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", o, o.Dotted())
			return nil
		},
	}
}

// resolve looks data up as a DER element first and as content octets
// otherwise.
func resolve(cmd *cobra.Command, data []byte) oid.OID {
	logger := log.GetLogger(cmd.Context())
	if o, err := oid.LookupDER(data); err == nil && o != oid.NotFound {
		logger.Debugf("resolved %x as DER element", data)
		return o
	}
	logger.Debugf("resolving %x as content octets", data)
	return oid.Lookup(data)
}
