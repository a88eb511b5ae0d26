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
	"encoding/hex"
	"errors"
	"testing"

	"github.com/fxamacker/cbor/v2"
)

func TestLookupDER(t *testing.T) {
	tests := []struct {
		name    string
		der     string
		want    OID
		wantErr bool
	}{
		{"sha256", "0609608648016503040201", SHA256, false},
		{"commonName", "0603550403", CommonName, false},
		{"unregistered", "06032a8648", NotFound, false},
		{"content only", "550403", NotFound, true},
		{"wrong tag", "0403550403", NotFound, true},
		{"short length", "0604550403", NotFound, true},
		{"trailing data", "060355040300", NotFound, true},
		{"empty", "", NotFound, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			der, err := hex.DecodeString(tt.der)
			if err != nil {
				t.Fatal(err)
			}
			got, err := LookupDER(der)
			if (err != nil) != tt.wantErr {
				t.Fatalf("LookupDER() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var malformed MalformedError
				if !errors.As(err, &malformed) {
					t.Errorf("LookupDER() error = %v, want MalformedError", err)
				}
			}
			if got != tt.want {
				t.Errorf("LookupDER() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFromObjectIdentifier(t *testing.T) {
	tests := []struct {
		name string
		id   asn1.ObjectIdentifier
		want OID
	}{
		{"SHA256WithRSA", asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 11}, SHA256WithRSAEncryption},
		{"ECDSAWithSHA512", asn1.ObjectIdentifier{1, 2, 840, 10045, 4, 3, 4}, ECDSAWithSHA512},
		{"TimeStamping", asn1.ObjectIdentifier{1, 3, 6, 1, 5, 5, 7, 3, 8}, KPTimeStamping},
		{"Unregistered", asn1.ObjectIdentifier{1, 2, 3}, NotFound},
		{"Invalid", asn1.ObjectIdentifier{7}, NotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromObjectIdentifier(tt.id); got != tt.want {
				t.Errorf("FromObjectIdentifier() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestObjectIdentifier(t *testing.T) {
	want := asn1.ObjectIdentifier{2, 16, 840, 1, 101, 3, 4, 2, 3}
	if got := SHA512.ObjectIdentifier(); !got.Equal(want) {
		t.Errorf("ObjectIdentifier() = %v, want %v", got, want)
	}
}

func TestMarshalCBOR(t *testing.T) {
	// RFC 9090 example for id-sha256
	const want = "d86f49608648016503040201"
	got, err := cbor.Marshal(SHA256)
	if err != nil {
		t.Fatal(err)
	}
	if hex.EncodeToString(got) != want {
		t.Errorf("cbor.Marshal() = %x, want %s", got, want)
	}

	if _, err := cbor.Marshal(NotFound); err == nil {
		t.Error("cbor.Marshal(NotFound) should fail")
	}
}

func TestUnmarshalCBOR(t *testing.T) {
	type algorithmIdentifier struct {
		Algorithm OID `cbor:"1,keyasint"`
		Digest    OID `cbor:"2,keyasint"`
	}
	in := algorithmIdentifier{Algorithm: ECDSAWithSHA384, Digest: SHA384}
	data, err := cbor.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	var out algorithmIdentifier
	if err := cbor.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if out != in {
		t.Errorf("cbor.Unmarshal() = %+v, want %+v", out, in)
	}

	tests := []struct {
		name string
		data string
	}{
		{"untagged byte string", "43550403"},
		{"wrong tag", "d86e43550403"},
		{"unregistered", "d86f432a8648"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := hex.DecodeString(tt.data)
			if err != nil {
				t.Fatal(err)
			}
			var o OID
			if err := cbor.Unmarshal(data, &o); err == nil {
				t.Errorf("cbor.Unmarshal(%s) = %v, want error", tt.data, o)
			}
		})
	}

	data, _ = hex.DecodeString("d86f432a8648")
	var o OID
	var notFound NotFoundError
	if err := cbor.Unmarshal(data, &o); !errors.As(err, &notFound) {
		t.Errorf("cbor.Unmarshal() error = %v, want NotFoundError", err)
	}
}
