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
	"errors"
	"fmt"

	"github.com/notaryproject/notation-oid-go/log"
	"github.com/notaryproject/notation-oid-go/oid"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/cryptobyte"
	cryptobyte_asn1 "golang.org/x/crypto/cryptobyte/asn1"
)

type sprintOptions struct {
	der  bool
	size int
}

func newSprintCmd() *cobra.Command {
	opts := &sprintOptions{}
	cmd := &cobra.Command{
		Use:   "sprint <hex>",
		Short: "Render an encoded object identifier as dotted decimal",
		Long: `Render an encoded object identifier as dotted decimal.

The identifier does not need to be registered. With --size the text is
rendered into a buffer of that many bytes, terminator included.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := decodeHex(args[0])
			if err != nil {
				return err
			}
			if opts.der {
				if data, err = derContent(data); err != nil {
					return err
				}
			}
			text, err := sprint(cmd, data, opts.size)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
	cmd.Flags().BoolVar(&opts.der, "der", false, "input is a complete DER OBJECT IDENTIFIER element")
	cmd.Flags().IntVar(&opts.size, "size", 0, "render into a buffer of this size instead of a sufficient one")
	return cmd
}

func sprint(cmd *cobra.Command, data []byte, size int) (string, error) {
	if size <= 0 {
		return oid.Format(data)
	}
	buf := make([]byte, size)
	n, err := oid.Sprint(data, buf)
	var malformed oid.MalformedError
	if errors.As(err, &malformed) {
		log.GetLogger(cmd.Context()).Debugf("buffer holds %q", nulTerminated(buf))
	}
	if err != nil {
		return "", err
	}
	return string(buf[:n]), nil
}

func nulTerminated(buf []byte) []byte {
	for i, b := range buf {
		if b == 0 {
			return buf[:i]
		}
	}
	return buf
}

func derContent(der []byte) ([]byte, error) {
	s := cryptobyte.String(der)
	var content cryptobyte.String
	if !s.ReadASN1(&content, cryptobyte_asn1.OBJECT_IDENTIFIER) || !s.Empty() {
		return nil, oid.MalformedError{Msg: "not a DER object identifier"}
	}
	return content, nil
}
