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

package oidgen

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"strconv"
	"strings"
)

// licenseHeader is written at the top of the generated source.
const licenseHeader = `// Copyright The Notary Project Authors.
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
`

// offsetsPerLine is the number of blob offsets written on one line.
const offsetsPerLine = 8

// WriteGo writes the table as gofmt-formatted Go source for package pkg.
//
// The source declares one constant of type OID per symbol followed by
// NotFound, and the oidNames, oidIndex, oidData and searchTable variables.
// The searchEntry and OID types are expected to be declared by hand in pkg.
func (t *Table) WriteGo(w io.Writer, pkg string) error {
	var b bytes.Buffer
	b.WriteString(licenseHeader)
	b.WriteString("\n// Code generated by oidgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", pkg)

	b.WriteString("const (\n")
	for i, s := range t.Symbols {
		if s.Ref != "" {
			fmt.Fprintf(&b, "\t// %s is %s (%s), defined in %s.\n", s.Ident, s.Name, s.OID, s.Ref)
		} else {
			fmt.Fprintf(&b, "\t// %s is %s (%s).\n", s.Ident, s.Name, s.OID)
		}
		if i == 0 {
			fmt.Fprintf(&b, "\t%s OID = iota\n", s.Ident)
		} else {
			fmt.Fprintf(&b, "\t%s\n", s.Ident)
		}
	}
	b.WriteString("\n\t// NotFound is the symbol returned for data that matches no registry entry.\n")
	fmt.Fprintf(&b, "\t%s\n)\n\n", reservedIdent)
	fmt.Fprintf(&b, "const numOIDs = int(%s)\n\n", reservedIdent)

	b.WriteString("var oidNames = [numOIDs]string{\n")
	for _, s := range t.Symbols {
		fmt.Fprintf(&b, "\t%s,\n", strconv.Quote(s.Name))
	}
	b.WriteString("}\n\n")

	offsets := make([]string, 0, len(t.Symbols)+1)
	offset := 0
	offsets = append(offsets, "0,")
	for _, s := range t.Symbols {
		offset += len(s.Encoding)
		offsets = append(offsets, strconv.Itoa(offset)+",")
	}
	b.WriteString("var oidIndex = [numOIDs + 1]uint16{\n")
	for len(offsets) > 0 {
		n := min(offsetsPerLine, len(offsets))
		fmt.Fprintf(&b, "\t%s\n", strings.Join(offsets[:n], " "))
		offsets = offsets[n:]
	}
	b.WriteString("}\n\n")

	b.WriteString("var oidData = [...]byte{\n")
	for _, s := range t.Symbols {
		fmt.Fprintf(&b, "\t// %s\n\t", s.Ident)
		for i, c := range s.Encoding {
			if i > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%#02x,", c)
		}
		b.WriteByte('\n')
	}
	b.WriteString("}\n\n")

	b.WriteString("var searchTable = [numOIDs]searchEntry{\n")
	for _, i := range t.Search {
		fmt.Fprintf(&b, "\t{%#02x, %s},\n", t.Symbols[i].Hash, t.Symbols[i].Ident)
	}
	b.WriteString("}\n")

	src, err := format.Source(b.Bytes())
	if err != nil {
		return fmt.Errorf("generated source does not parse: %w", err)
	}
	_, err = w.Write(src)
	return err
}
