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

// Package oid is a read-only registry of ASN.1 object identifiers.
//
// Each registered identifier is represented by an OID symbol. Lookup resolves
// the content octets of an encoded OBJECT IDENTIFIER to its symbol, DigestInfo
// reports the digest algorithm behind a signature algorithm and Sprint renders
// an encoded identifier as dotted-decimal text.
//
// The registry table is generated from registry.yaml and never changes at
// run time, so every function in this package is safe for concurrent use.
package oid

//go:generate go run ../cmd/oidgen --in registry.yaml --out zz_generated_registry.go --pkg oid

import (
	"bytes"
	"encoding/asn1"
	"strconv"

	internalasn1 "github.com/notaryproject/notation-oid-go/internal/encoding/asn1"
)

// OID is a registry symbol identifying one registered object identifier.
//
// The zero value is a valid symbol. NotFound is the only value outside the
// registry that functions in this package return.
type OID uint16

// Valid reports whether o is a registered symbol.
func (o OID) Valid() bool {
	return o < NotFound
}

// String returns the registry name of o, for example
// "sha256WithRSAEncryption".
func (o OID) String() string {
	if !o.Valid() {
		return "OID(" + strconv.Itoa(int(o)) + ")"
	}
	return oidNames[o]
}

// Bytes returns a copy of the canonical content octets of o.
//
// Bytes panics if o is not a registered symbol.
func (o OID) Bytes() []byte {
	return bytes.Clone(o.encoded())
}

// ObjectIdentifier returns o as an encoding/asn1 object identifier.
//
// ObjectIdentifier panics if o is not a registered symbol.
func (o OID) ObjectIdentifier() asn1.ObjectIdentifier {
	id, err := internalasn1.Decode(o.encoded())
	if err != nil {
		panic("oid: registry entry " + oidNames[o] + " is malformed: " + err.Error())
	}
	return id
}

// encoded returns the canonical content octets of o without copying them.
func (o OID) encoded() []byte {
	if !o.Valid() {
		panic("oid: invalid registry symbol " + strconv.Itoa(int(o)))
	}
	return oidData[oidIndex[o]:oidIndex[o+1]]
}

// ByName returns the symbol registered under name.
func ByName(name string) (OID, bool) {
	for i, n := range oidNames {
		if n == name {
			return OID(i), true
		}
	}
	return NotFound, false
}
