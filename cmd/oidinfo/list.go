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
	"text/tabwriter"

	"github.com/notaryproject/notation-oid-go/oid"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	var signatures bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the registered object identifiers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tOID\tDIGEST")
			for o := oid.OID(0); o < oid.NotFound; o++ {
				digest, ok := oid.DigestInfo(o)
				if signatures && !ok {
					continue
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", o, o.Dotted(), digest.Name)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&signatures, "signatures", false, "only list signature algorithms with a registered digest")
	return cmd
}
