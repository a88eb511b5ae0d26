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

package algorithm

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"testing"

	"github.com/cloudflare/circl/sign/schemes"
	"github.com/golang-jwt/jwt/v4"
	"github.com/notaryproject/notation-oid-go/oid"
	"github.com/veraison/go-cose"
)

func TestAlgorithmMappings(t *testing.T) {
	tests := []struct {
		alg      Algorithm
		wantOID  oid.OID
		wantHash crypto.Hash
		wantJWS  string
		wantCOSE cose.Algorithm
		wantName string
	}{
		{AlgorithmPS256, oid.RSASSAPSS, crypto.SHA256, "PS256", cose.AlgorithmPS256, ""},
		{AlgorithmPS384, oid.RSASSAPSS, crypto.SHA384, "PS384", cose.AlgorithmPS384, ""},
		{AlgorithmPS512, oid.RSASSAPSS, crypto.SHA512, "PS512", cose.AlgorithmPS512, ""},
		{AlgorithmES256, oid.ECDSAWithSHA256, crypto.SHA256, "ES256", cose.AlgorithmES256, ""},
		{AlgorithmES384, oid.ECDSAWithSHA384, crypto.SHA384, "ES384", cose.AlgorithmES384, ""},
		{AlgorithmES512, oid.ECDSAWithSHA512, crypto.SHA512, "ES512", cose.AlgorithmES512, ""},
		{AlgorithmRS256, oid.SHA256WithRSAEncryption, crypto.SHA256, "RS256", -257, ""},
		{AlgorithmRS384, oid.SHA384WithRSAEncryption, crypto.SHA384, "RS384", -258, ""},
		{AlgorithmRS512, oid.SHA512WithRSAEncryption, crypto.SHA512, "RS512", -259, ""},
		{AlgorithmEdDSA, oid.Ed25519, 0, "EdDSA", cose.AlgorithmEd25519, "Ed25519"},
		{AlgorithmEd448, oid.Ed448, 0, "", 0, "Ed448"},
		{AlgorithmMLDSA44, oid.MLDSA44, 0, "", 0, "ML-DSA-44"},
		{AlgorithmMLDSA65, oid.MLDSA65, 0, "", 0, "ML-DSA-65"},
		{AlgorithmMLDSA87, oid.MLDSA87, 0, "", 0, "ML-DSA-87"},
	}
	for _, tt := range tests {
		t.Run(tt.alg.String(), func(t *testing.T) {
			if got := tt.alg.OID(); got != tt.wantOID {
				t.Errorf("OID() = %v, want %v", got, tt.wantOID)
			}
			if got := tt.alg.Hash(); got != tt.wantHash {
				t.Errorf("Hash() = %v, want %v", got, tt.wantHash)
			}

			if tt.wantOID != oid.RSASSAPSS {
				got, err := FromOID(tt.wantOID)
				if err != nil || got != tt.alg {
					t.Errorf("FromOID(%v) = %v, %v, want %v", tt.wantOID, got, err, tt.alg)
				}
			}

			method := tt.alg.JWS()
			if tt.wantJWS == "" {
				if method != nil {
					t.Errorf("JWS() = %v, want nil", method.Alg())
				}
			} else {
				if method == nil || method.Alg() != tt.wantJWS {
					t.Fatalf("JWS() = %v, want %s", method, tt.wantJWS)
				}
				if got, err := FromJWS(method); err != nil || got != tt.alg {
					t.Errorf("FromJWS(%s) = %v, %v, want %v", tt.wantJWS, got, err, tt.alg)
				}
			}

			coseAlg, ok := tt.alg.COSE()
			if ok != (tt.wantCOSE != 0) || coseAlg != tt.wantCOSE {
				t.Errorf("COSE() = %d, %v, want %d", coseAlg, ok, tt.wantCOSE)
			}
			if ok {
				if got, err := FromCOSE(coseAlg); err != nil || got != tt.alg {
					t.Errorf("FromCOSE(%d) = %v, %v, want %v", coseAlg, got, err, tt.alg)
				}
			}

			scheme := tt.alg.Scheme()
			if tt.wantName == "" {
				if scheme != nil {
					t.Errorf("Scheme() = %s, want nil", scheme.Name())
				}
				return
			}
			if scheme == nil || scheme.Name() != tt.wantName {
				t.Fatalf("Scheme() = %v, want %s", scheme, tt.wantName)
			}
			if got, err := FromScheme(scheme); err != nil || got != tt.alg {
				t.Errorf("FromScheme(%s) = %v, %v, want %v", tt.wantName, got, err, tt.alg)
			}
		})
	}
}

func TestDigest(t *testing.T) {
	d, ok := AlgorithmES384.Digest()
	if !ok || d.OID != oid.SHA384 || d.Size != 48 {
		t.Errorf("AlgorithmES384.Digest() = %+v, %v", d, ok)
	}
	if _, ok := AlgorithmPS256.Digest(); ok {
		t.Error("AlgorithmPS256.Digest() should not be registered")
	}
	if _, ok := AlgorithmEdDSA.Digest(); ok {
		t.Error("AlgorithmEdDSA.Digest() should not be registered")
	}
}

func TestUnsupported(t *testing.T) {
	var unsupported UnsupportedAlgorithmError
	if _, err := FromOID(oid.RSASSAPSS); !errors.As(err, &unsupported) {
		t.Errorf("FromOID(RSASSAPSS) error = %v", err)
	}
	if _, err := FromOID(oid.SHA256); !errors.As(err, &unsupported) {
		t.Errorf("FromOID(SHA256) error = %v", err)
	}
	if _, err := FromJWS(jwt.SigningMethodHS256); !errors.As(err, &unsupported) {
		t.Errorf("FromJWS(HS256) error = %v", err)
	}
	if _, err := FromJWS(nil); !errors.As(err, &unsupported) {
		t.Errorf("FromJWS(nil) error = %v", err)
	}
	if _, err := FromCOSE(0); !errors.As(err, &unsupported) {
		t.Errorf("FromCOSE(0) error = %v", err)
	}
	if _, err := FromScheme(schemes.ByName("Ed25519-Dilithium2")); !errors.As(err, &unsupported) {
		t.Errorf("FromScheme(Ed25519-Dilithium2) error = %v", err)
	}
	if _, err := FromScheme(nil); !errors.As(err, &unsupported) {
		t.Errorf("FromScheme(nil) error = %v", err)
	}

	alg := Algorithm(0)
	if alg.OID() != oid.NotFound || alg.JWS() != nil || alg.Scheme() != nil || alg.Hash() != 0 {
		t.Error("zero Algorithm should map to nothing")
	}
	if alg.String() != "Algorithm(0)" {
		t.Errorf("String() = %q", alg.String())
	}
}

func TestFromPublicKey(t *testing.T) {
	rsaKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatal(err)
	}
	smallRSAKey, err := rsa.GenerateKey(rand.Reader, 1024)
	if err != nil {
		t.Fatal(err)
	}
	edKey, _, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	mldsaKey, _, err := AlgorithmMLDSA65.Scheme().GenerateKey()
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		key     crypto.PublicKey
		want    Algorithm
		wantErr bool
	}{
		{"RSA 2048", &rsaKey.PublicKey, AlgorithmPS256, false},
		{"RSA 1024", &smallRSAKey.PublicKey, 0, true},
		{"Ed25519", edKey, AlgorithmEdDSA, false},
		{"ML-DSA-65", mldsaKey, AlgorithmMLDSA65, false},
		{"unsupported type", "key", 0, true},
	}
	for _, curve := range []struct {
		curve elliptic.Curve
		want  Algorithm
	}{
		{elliptic.P256(), AlgorithmES256},
		{elliptic.P384(), AlgorithmES384},
		{elliptic.P521(), AlgorithmES512},
	} {
		key, err := ecdsa.GenerateKey(curve.curve, rand.Reader)
		if err != nil {
			t.Fatal(err)
		}
		tests = append(tests, struct {
			name    string
			key     crypto.PublicKey
			want    Algorithm
			wantErr bool
		}{curve.curve.Params().Name, &key.PublicKey, curve.want, false})
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromPublicKey(tt.key)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FromPublicKey() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("FromPublicKey() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestJWSRoundTrip(t *testing.T) {
	key, err := ecdsa.GenerateKey(elliptic.P384(), rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	alg, err := FromPublicKey(&key.PublicKey)
	if err != nil {
		t.Fatal(err)
	}
	signed, err := jwt.NewWithClaims(alg.JWS(), jwt.MapClaims{"sub": "oid"}).SignedString(key)
	if err != nil {
		t.Fatal(err)
	}

	token, err := jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		return &key.PublicKey, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	got, err := FromJWS(token.Method)
	if err != nil {
		t.Fatal(err)
	}
	if got.OID() != oid.ECDSAWithSHA384 {
		t.Errorf("token signed with %v, want %v", got.OID(), oid.ECDSAWithSHA384)
	}
}

func TestSchemeSignVerify(t *testing.T) {
	for _, alg := range []Algorithm{AlgorithmEdDSA, AlgorithmEd448, AlgorithmMLDSA44} {
		t.Run(alg.String(), func(t *testing.T) {
			scheme := alg.Scheme()
			pub, priv, err := scheme.GenerateKey()
			if err != nil {
				t.Fatal(err)
			}
			msg := []byte("2.16.840.1.101.3.4.3.17")
			sig := scheme.Sign(priv, msg, nil)
			if !scheme.Verify(pub, msg, sig, nil) {
				t.Error("signature does not verify")
			}
		})
	}
}
