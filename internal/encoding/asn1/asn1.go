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

// Package asn1 holds the OBJECT IDENTIFIER encoding primitives shared by the
// registry lookup and the registry table generator.
//
// The hash and the ordering defined here are the contract between the
// generated search table and the binary search over it. Changing either one
// requires regenerating the table.
package asn1

import (
	"encoding/asn1"
	"strconv"
	"strings"

	"golang.org/x/crypto/cryptobyte"
	cryptobyte_asn1 "golang.org/x/crypto/cryptobyte/asn1"
)

var (
	ErrEmptyIdentifier   = asn1.StructuralError{Msg: "empty object identifier"}
	ErrInvalidIdentifier = asn1.StructuralError{Msg: "invalid object identifier"}
)

// Hash computes the one byte search hash of the content octets of an encoded
// object identifier.
//
// The accumulator is seeded with len(data)-1 and uses 32-bit wraparound
// arithmetic. It is folded by XOR-ing its four byte lanes.
func Hash(data []byte) uint8 {
	h := uint32(len(data) - 1)
	for _, b := range data {
		h += uint32(b) * 33
	}
	h = (h >> 24) ^ (h >> 16) ^ (h >> 8) ^ h
	return uint8(h)
}

// Compare orders two encodings with the same hash. Shorter encodings sort
// first; encodings of equal length are compared from the last byte backward.
//
// The result is -1 if a sorts before b, 1 if a sorts after b and 0 if they
// are equal.
func Compare(a, b []byte) int {
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	// variation is most likely at the tail of an OID
	for n := len(a) - 1; n >= 0; n-- {
		switch {
		case a[n] < b[n]:
			return -1
		case a[n] > b[n]:
			return 1
		}
	}
	return 0
}

// Encode returns the content octets of the DER encoding of id, without the
// identifier and length octets.
func Encode(id asn1.ObjectIdentifier) ([]byte, error) {
	if len(id) == 0 {
		return nil, ErrEmptyIdentifier
	}
	b := cryptobyte.NewBuilder(nil)
	b.AddASN1ObjectIdentifier(id)
	der, err := b.Bytes()
	if err != nil {
		return nil, ErrInvalidIdentifier
	}
	s := cryptobyte.String(der)
	var content cryptobyte.String
	if !s.ReadASN1(&content, cryptobyte_asn1.OBJECT_IDENTIFIER) {
		return nil, ErrInvalidIdentifier
	}
	return content, nil
}

// Decode parses content octets, as returned by Encode, back into an object
// identifier.
func Decode(content []byte) (asn1.ObjectIdentifier, error) {
	b := cryptobyte.NewBuilder(nil)
	b.AddASN1(cryptobyte_asn1.OBJECT_IDENTIFIER, func(b *cryptobyte.Builder) {
		b.AddBytes(content)
	})
	der, err := b.Bytes()
	if err != nil {
		return nil, err
	}
	s := cryptobyte.String(der)
	var id asn1.ObjectIdentifier
	if !s.ReadASN1ObjectIdentifier(&id) || !s.Empty() {
		return nil, ErrInvalidIdentifier
	}
	return id, nil
}

// ParseDotted parses the dotted-decimal form of an object identifier, such as
// "1.2.840.113549.1.1.11".
func ParseDotted(s string) (asn1.ObjectIdentifier, error) {
	if s == "" {
		return nil, ErrEmptyIdentifier
	}
	parts := strings.Split(s, ".")
	if len(parts) < 2 {
		return nil, asn1.SyntaxError{Msg: "object identifier needs at least two arcs: " + s}
	}
	id := make(asn1.ObjectIdentifier, len(parts))
	for i, part := range parts {
		if !isDecimal(part) {
			return nil, asn1.SyntaxError{Msg: "invalid arc " + strconv.Quote(part) + " in " + s}
		}
		arc, err := strconv.Atoi(part)
		if err != nil {
			return nil, asn1.SyntaxError{Msg: "invalid arc " + strconv.Quote(part) + " in " + s}
		}
		id[i] = arc
	}
	return id, nil
}

// isDecimal reports whether s is a non-empty run of ASCII digits.
func isDecimal(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
