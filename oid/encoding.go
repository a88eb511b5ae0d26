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

package oid

import (
	"encoding/asn1"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	internalasn1 "github.com/notaryproject/notation-oid-go/internal/encoding/asn1"
	"golang.org/x/crypto/cryptobyte"
	cryptobyte_asn1 "golang.org/x/crypto/cryptobyte/asn1"
)

// cborTagOID is the CBOR tag for an absolute object identifier.
//
// Reference: https://www.rfc-editor.org/rfc/rfc9090.html#section-2.1
const cborTagOID = 111

// FromObjectIdentifier returns the symbol registered for id, or NotFound.
func FromObjectIdentifier(id asn1.ObjectIdentifier) OID {
	data, err := internalasn1.Encode(id)
	if err != nil {
		return NotFound
	}
	return Lookup(data)
}

// Encode returns the content octets of the DER encoding of id, in the form
// accepted by Lookup and Sprint.
func Encode(id asn1.ObjectIdentifier) ([]byte, error) {
	return internalasn1.Encode(id)
}

// LookupDER resolves a complete DER encoded OBJECT IDENTIFIER, identifier and
// length octets included. It returns NotFound if the identifier is well
// formed but not registered.
func LookupDER(der []byte) (OID, error) {
	s := cryptobyte.String(der)
	var content cryptobyte.String
	if !s.ReadASN1(&content, cryptobyte_asn1.OBJECT_IDENTIFIER) {
		return NotFound, MalformedError{Msg: "not a DER object identifier"}
	}
	if !s.Empty() {
		return NotFound, MalformedError{Msg: "trailing data"}
	}
	return Lookup(content), nil
}

// MarshalCBOR encodes o as a tagged CBOR byte string holding its content
// octets.
func (o OID) MarshalCBOR() ([]byte, error) {
	if !o.Valid() {
		return nil, fmt.Errorf("cannot marshal invalid registry symbol %d", o)
	}
	return cbor.Marshal(cbor.Tag{Number: cborTagOID, Content: o.encoded()})
}

// UnmarshalCBOR decodes a tagged CBOR object identifier and resolves it
// against the registry.
func (o *OID) UnmarshalCBOR(data []byte) error {
	var tag cbor.RawTag
	if err := cbor.Unmarshal(data, &tag); err != nil {
		return err
	}
	if tag.Number != cborTagOID {
		return fmt.Errorf("unexpected CBOR tag %d for object identifier, want %d", tag.Number, cborTagOID)
	}
	var content []byte
	if err := cbor.Unmarshal(tag.Content, &content); err != nil {
		return err
	}
	found := Lookup(content)
	if found == NotFound {
		return NotFoundError{Data: content}
	}
	*o = found
	return nil
}
