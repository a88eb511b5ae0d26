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

// Package oidgen builds the registry search table from its YAML source and
// writes it out as Go source.
package oidgen

import (
	"context"
	"errors"
	"fmt"
	"go/token"
	"io"
	"math"
	"sort"

	"github.com/notaryproject/notation-oid-go/internal/encoding/asn1"
	"github.com/notaryproject/notation-oid-go/log"
	"gopkg.in/yaml.v3"
)

// reservedIdent is declared by the generated source itself.
const reservedIdent = "NotFound"

// Entry is one registry entry as written in the YAML source.
type Entry struct {
	// Ident is the exported Go constant for the entry.
	Ident string `yaml:"ident"`

	// Name is the registry name of the entry.
	Name string `yaml:"name"`

	// OID is the dotted-decimal object identifier.
	OID string `yaml:"oid"`

	// Ref names the document defining the identifier. Optional.
	Ref string `yaml:"ref"`
}

// Symbol is an entry together with its encoding and search hash.
type Symbol struct {
	Entry

	// Encoding holds the DER content octets of the identifier.
	Encoding []byte

	// Hash is the search hash of Encoding.
	Hash uint8
}

// Table is a registry table ready to be written out.
type Table struct {
	// Symbols are in declaration order; a symbol's value is its index.
	Symbols []Symbol

	// Search lists symbol indices in search order.
	Search []int
}

// Load reads registry entries from YAML.
func Load(ctx context.Context, r io.Reader) ([]Entry, error) {
	logger := log.GetLogger(ctx)
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var entries []Entry
	if err := dec.Decode(&entries); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("registry source is empty")
		}
		return nil, fmt.Errorf("failed to decode registry source: %w", err)
	}
	for i, e := range entries {
		switch {
		case !token.IsIdentifier(e.Ident) || !token.IsExported(e.Ident):
			return nil, fmt.Errorf("entry %d: ident %q is not an exported Go identifier", i, e.Ident)
		case e.Ident == reservedIdent:
			return nil, fmt.Errorf("entry %d: ident %q is reserved", i, e.Ident)
		case e.Name == "":
			return nil, fmt.Errorf("entry %d (%s): name is required", i, e.Ident)
		case e.OID == "":
			return nil, fmt.Errorf("entry %d (%s): oid is required", i, e.Ident)
		}
		if e.Ref == "" {
			logger.Warnf("entry %s has no reference", e.Ident)
		}
	}
	logger.Debugf("loaded %d registry entries", len(entries))
	return entries, nil
}

// Build encodes the entries and orders the search table.
func Build(entries []Entry) (*Table, error) {
	if len(entries) == 0 {
		return nil, errors.New("registry has no entries")
	}
	// the sentinel needs a value of its own
	if len(entries) >= math.MaxUint16 {
		return nil, fmt.Errorf("registry has %d entries, at most %d are supported", len(entries), math.MaxUint16-1)
	}

	var (
		t         = &Table{Symbols: make([]Symbol, 0, len(entries))}
		idents    = make(map[string]bool, len(entries))
		names     = make(map[string]bool, len(entries))
		encodings = make(map[string]string, len(entries))
		total     int
	)
	for _, e := range entries {
		if idents[e.Ident] {
			return nil, fmt.Errorf("duplicate ident %s", e.Ident)
		}
		idents[e.Ident] = true
		if names[e.Name] {
			return nil, fmt.Errorf("%s: duplicate name %s", e.Ident, e.Name)
		}
		names[e.Name] = true

		id, err := asn1.ParseDotted(e.OID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.Ident, err)
		}
		enc, err := asn1.Encode(id)
		if err != nil {
			return nil, fmt.Errorf("%s: cannot encode %s: %w", e.Ident, e.OID, err)
		}
		if other, ok := encodings[string(enc)]; ok {
			return nil, fmt.Errorf("%s: %s is already registered as %s", e.Ident, e.OID, other)
		}
		encodings[string(enc)] = e.Ident

		total += len(enc)
		if total > math.MaxUint16 {
			return nil, errors.New("registry data does not fit 16-bit offsets")
		}
		t.Symbols = append(t.Symbols, Symbol{
			Entry:    e,
			Encoding: enc,
			Hash:     asn1.Hash(enc),
		})
	}

	t.Search = make([]int, len(t.Symbols))
	for i := range t.Search {
		t.Search[i] = i
	}
	sort.Slice(t.Search, func(i, j int) bool {
		return t.less(t.Search[i], t.Search[j])
	})
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate checks that Search is a permutation of the symbols in ascending
// order of hash, then length, then encoding compared from the last byte.
func (t *Table) Validate() error {
	if len(t.Search) != len(t.Symbols) {
		return fmt.Errorf("search table has %d entries for %d symbols", len(t.Search), len(t.Symbols))
	}
	seen := make([]bool, len(t.Symbols))
	for i, s := range t.Search {
		if s < 0 || s >= len(t.Symbols) {
			return fmt.Errorf("search table entry %d refers to unknown symbol %d", i, s)
		}
		if seen[s] {
			return fmt.Errorf("search table lists %s twice", t.Symbols[s].Ident)
		}
		seen[s] = true
		if sym := t.Symbols[s]; asn1.Hash(sym.Encoding) != sym.Hash {
			return fmt.Errorf("%s: stale hash %#02x", sym.Ident, sym.Hash)
		}
		if i > 0 && !t.less(t.Search[i-1], s) {
			return fmt.Errorf("search table entry %d (%s) is out of order after %s",
				i, t.Symbols[s].Ident, t.Symbols[t.Search[i-1]].Ident)
		}
	}
	return nil
}

func (t *Table) less(i, j int) bool {
	a, b := t.Symbols[i], t.Symbols[j]
	if a.Hash != b.Hash {
		return a.Hash < b.Hash
	}
	return asn1.Compare(a.Encoding, b.Encoding) < 0
}
