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

package timestamp

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"crypto/x509"
	"encoding/asn1"
	"errors"
	"testing"
	"time"

	"github.com/notaryproject/notation-oid-go/algorithm"
	"github.com/notaryproject/notation-oid-go/oid"
	"github.com/notaryproject/notation-oid-go/testhelper"
)

var content = []byte("notation")

func TestParse(t *testing.T) {
	sum1 := sha1.Sum(content)
	sum256 := sha256.Sum256(content)
	sum384 := sha512.Sum384(content)
	genTime := time.Date(2024, 3, 22, 3, 10, 47, 0, time.UTC)
	tests := []struct {
		name       string
		hashAlg    oid.OID
		hashed     []byte
		wantDigest string
	}{
		{"sha1", oid.SHA1, sum1[:], "sha1"},
		{"sha256", oid.SHA256, sum256[:], "sha256"},
		{"sha384", oid.SHA384, sum384[:], "sha384"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := testhelper.GetTimestampToken(tt.hashAlg.ObjectIdentifier(), tt.hashed, genTime)
			token, err := Parse(data)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if token.Digest.OID != tt.hashAlg || token.Digest.Name != tt.wantDigest {
				t.Errorf("Digest = %+v, want %v", token.Digest, tt.hashAlg)
			}
			if !token.Info.GenTime.Equal(genTime) {
				t.Errorf("GenTime = %v, want %v", token.Info.GenTime, genTime)
			}
			if !token.Info.Policy.Equal(testhelper.TimestampPolicy) {
				t.Errorf("Policy = %v, want %v", token.Info.Policy, testhelper.TimestampPolicy)
			}
			if oid.FromObjectIdentifier(token.SignedToken.ContentType) != oid.TSTInfo {
				t.Errorf("ContentType = %v, want id-ct-TSTInfo", token.SignedToken.ContentType)
			}
			if len(token.SignedToken.Certificates) != 1 {
				t.Errorf("len(Certificates) = %d, want 1", len(token.SignedToken.Certificates))
			}

			want := []Signer{{oid.SHA256, oid.RSAEncryption, x509.SHA256WithRSA}}
			if len(token.Signers) != len(want) || token.Signers[0] != want[0] {
				t.Errorf("Signers = %+v, want %+v", token.Signers, want)
			}

			if err := token.VerifyContent(content); err != nil {
				t.Errorf("VerifyContent() error = %v", err)
			}
			if err := token.VerifyContent([]byte("tampered")); err == nil {
				t.Error("VerifyContent() with other content expected error")
			}
		})
	}
}

func TestParseUnsupportedImprint(t *testing.T) {
	tests := []struct {
		name    string
		hashAlg asn1.ObjectIdentifier
	}{
		{"md5", oid.MD5.ObjectIdentifier()},
		{"signature algorithm", oid.SHA256WithRSAEncryption.ObjectIdentifier()},
		{"unregistered", asn1.ObjectIdentifier{1, 2, 3, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := testhelper.GetTimestampToken(tt.hashAlg, make([]byte, 16), time.Now())
			_, err := Parse(data)
			var unsupported algorithm.UnsupportedAlgorithmError
			if !errors.As(err, &unsupported) {
				t.Fatalf("Parse() error = %v, want UnsupportedAlgorithmError", err)
			}
			if unsupported.Alg != tt.hashAlg.String() {
				t.Errorf("UnsupportedAlgorithmError.Alg = %q, want %q", unsupported.Alg, tt.hashAlg.String())
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"not asn1", []byte("timestamp")},
		{"short imprint", testhelper.GetTimestampToken(oid.SHA256.ObjectIdentifier(), make([]byte, 20), time.Now())},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.data); err == nil {
				t.Error("Parse() expected error")
			}
		})
	}
}
