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

// Package algorithm maps signature algorithms between the OID registry, JWS,
// COSE and circl signature schemes.
package algorithm

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rsa"
	"fmt"
	"strings"

	"github.com/cloudflare/circl/sign"
	"github.com/cloudflare/circl/sign/schemes"
	"github.com/golang-jwt/jwt/v4"
	"github.com/notaryproject/notation-oid-go/oid"
	"github.com/veraison/go-cose"
)

// Algorithm defines the signature algorithm.
type Algorithm int

// Signature algorithms known to this package.
//
// Reference: https://www.iana.org/assignments/jose/jose.xhtml#web-signature-encryption-algorithms
const (
	AlgorithmPS256   Algorithm = 1 + iota // RSASSA-PSS with SHA-256
	AlgorithmPS384                        // RSASSA-PSS with SHA-384
	AlgorithmPS512                        // RSASSA-PSS with SHA-512
	AlgorithmES256                        // ECDSA on secp256r1 with SHA-256
	AlgorithmES384                        // ECDSA on secp384r1 with SHA-384
	AlgorithmES512                        // ECDSA on secp521r1 with SHA-512
	AlgorithmRS256                        // RSASSA-PKCS1-v1_5 with SHA-256
	AlgorithmRS384                        // RSASSA-PKCS1-v1_5 with SHA-384
	AlgorithmRS512                        // RSASSA-PKCS1-v1_5 with SHA-512
	AlgorithmEdDSA                        // Ed25519
	AlgorithmEd448                        // Ed448
	AlgorithmMLDSA44                      // ML-DSA-44
	AlgorithmMLDSA65                      // ML-DSA-65
	AlgorithmMLDSA87                      // ML-DSA-87
)

// COSE algorithm values that go-cose does not declare.
//
// Reference: https://www.iana.org/assignments/cose/cose.xhtml#algorithms
const (
	coseAlgorithmRS256 cose.Algorithm = -257
	coseAlgorithmRS384 cose.Algorithm = -258
	coseAlgorithmRS512 cose.Algorithm = -259
)

type details struct {
	name   string
	oid    oid.OID
	hash   crypto.Hash
	jws    jwt.SigningMethod
	cose   cose.Algorithm
	scheme string
}

var algorithms = map[Algorithm]details{
	AlgorithmPS256:   {"PS256", oid.RSASSAPSS, crypto.SHA256, jwt.SigningMethodPS256, cose.AlgorithmPS256, ""},
	AlgorithmPS384:   {"PS384", oid.RSASSAPSS, crypto.SHA384, jwt.SigningMethodPS384, cose.AlgorithmPS384, ""},
	AlgorithmPS512:   {"PS512", oid.RSASSAPSS, crypto.SHA512, jwt.SigningMethodPS512, cose.AlgorithmPS512, ""},
	AlgorithmES256:   {"ES256", oid.ECDSAWithSHA256, crypto.SHA256, jwt.SigningMethodES256, cose.AlgorithmES256, ""},
	AlgorithmES384:   {"ES384", oid.ECDSAWithSHA384, crypto.SHA384, jwt.SigningMethodES384, cose.AlgorithmES384, ""},
	AlgorithmES512:   {"ES512", oid.ECDSAWithSHA512, crypto.SHA512, jwt.SigningMethodES512, cose.AlgorithmES512, ""},
	AlgorithmRS256:   {"RS256", oid.SHA256WithRSAEncryption, crypto.SHA256, jwt.SigningMethodRS256, coseAlgorithmRS256, ""},
	AlgorithmRS384:   {"RS384", oid.SHA384WithRSAEncryption, crypto.SHA384, jwt.SigningMethodRS384, coseAlgorithmRS384, ""},
	AlgorithmRS512:   {"RS512", oid.SHA512WithRSAEncryption, crypto.SHA512, jwt.SigningMethodRS512, coseAlgorithmRS512, ""},
	AlgorithmEdDSA:   {"EdDSA", oid.Ed25519, 0, jwt.SigningMethodEdDSA, cose.AlgorithmEd25519, "Ed25519"},
	AlgorithmEd448:   {"Ed448", oid.Ed448, 0, nil, 0, "Ed448"},
	AlgorithmMLDSA44: {"ML-DSA-44", oid.MLDSA44, 0, nil, 0, "ML-DSA-44"},
	AlgorithmMLDSA65: {"ML-DSA-65", oid.MLDSA65, 0, nil, 0, "ML-DSA-65"},
	AlgorithmMLDSA87: {"ML-DSA-87", oid.MLDSA87, 0, nil, 0, "ML-DSA-87"},
}

// UnsupportedAlgorithmError is used when a signature algorithm has no
// counterpart in this package.
type UnsupportedAlgorithmError struct {
	Alg string
}

// Error returns the error message.
func (e UnsupportedAlgorithmError) Error() string {
	if e.Alg != "" {
		return fmt.Sprintf("signature algorithm %q is not supported", e.Alg)
	}
	return "signature algorithm is not supported"
}

// String returns the JWS style name of the algorithm.
func (alg Algorithm) String() string {
	if d, ok := algorithms[alg]; ok {
		return d.name
	}
	return fmt.Sprintf("Algorithm(%d)", int(alg))
}

// Hash returns the hash function of the algorithm. It returns 0 for
// algorithms that sign the message directly.
func (alg Algorithm) Hash() crypto.Hash {
	return algorithms[alg].hash
}

// OID returns the registry symbol of the signature algorithm, or
// oid.NotFound for unknown algorithms.
//
// All RSASSA-PSS algorithms share id-RSASSA-PSS; the hash is carried in the
// algorithm parameters.
func (alg Algorithm) OID() oid.OID {
	if d, ok := algorithms[alg]; ok {
		return d.oid
	}
	return oid.NotFound
}

// Digest returns the digest algorithm registered for the signature algorithm.
func (alg Algorithm) Digest() (oid.Digest, bool) {
	return oid.DigestInfo(alg.OID())
}

// JWS returns the JWS signing method, or nil if the algorithm has none.
func (alg Algorithm) JWS() jwt.SigningMethod {
	return algorithms[alg].jws
}

// COSE returns the COSE algorithm identifier.
func (alg Algorithm) COSE() (cose.Algorithm, bool) {
	d, ok := algorithms[alg]
	if !ok || d.cose == 0 {
		return 0, false
	}
	return d.cose, true
}

// Scheme returns the circl signature scheme, or nil if circl does not
// implement the algorithm.
func (alg Algorithm) Scheme() sign.Scheme {
	d, ok := algorithms[alg]
	if !ok || d.scheme == "" {
		return nil
	}
	return schemes.ByName(d.scheme)
}

// FromOID returns the algorithm identified by a signature algorithm symbol.
// id-RSASSA-PSS is rejected since it does not determine the hash.
func FromOID(o oid.OID) (Algorithm, error) {
	if o != oid.RSASSAPSS {
		for alg, d := range algorithms {
			if d.oid == o {
				return alg, nil
			}
		}
	}
	return 0, UnsupportedAlgorithmError{Alg: o.String()}
}

// FromJWS returns the algorithm of a JWS signing method.
func FromJWS(method jwt.SigningMethod) (Algorithm, error) {
	if method == nil {
		return 0, UnsupportedAlgorithmError{}
	}
	for alg, d := range algorithms {
		if d.jws != nil && d.jws.Alg() == method.Alg() {
			return alg, nil
		}
	}
	return 0, UnsupportedAlgorithmError{Alg: method.Alg()}
}

// FromCOSE returns the algorithm of a COSE algorithm identifier.
func FromCOSE(coseAlg cose.Algorithm) (Algorithm, error) {
	if coseAlg != 0 {
		for alg, d := range algorithms {
			if d.cose == coseAlg {
				return alg, nil
			}
		}
	}
	return 0, UnsupportedAlgorithmError{Alg: fmt.Sprintf("COSE %d", int(coseAlg))}
}

// FromScheme returns the algorithm of a circl signature scheme.
func FromScheme(scheme sign.Scheme) (Algorithm, error) {
	if scheme == nil {
		return 0, UnsupportedAlgorithmError{}
	}
	for alg, d := range algorithms {
		if d.scheme != "" && strings.EqualFold(d.scheme, scheme.Name()) {
			return alg, nil
		}
	}
	return 0, UnsupportedAlgorithmError{Alg: scheme.Name()}
}

// FromPublicKey picks up a recommended algorithm for the given public key.
func FromPublicKey(key crypto.PublicKey) (Algorithm, error) {
	switch key := key.(type) {
	case *rsa.PublicKey:
		switch bitSize := key.Size() << 3; bitSize {
		case 2048:
			return AlgorithmPS256, nil
		case 3072:
			return AlgorithmPS384, nil
		case 4096:
			return AlgorithmPS512, nil
		default:
			return 0, UnsupportedAlgorithmError{Alg: fmt.Sprintf("RSA %d", bitSize)}
		}
	case *ecdsa.PublicKey:
		switch bitSize := key.Curve.Params().BitSize; bitSize {
		case 256:
			return AlgorithmES256, nil
		case 384:
			return AlgorithmES384, nil
		case 521:
			return AlgorithmES512, nil
		default:
			return 0, UnsupportedAlgorithmError{Alg: fmt.Sprintf("ECDSA %d", bitSize)}
		}
	case ed25519.PublicKey:
		return AlgorithmEdDSA, nil
	case sign.PublicKey:
		return FromScheme(key.Scheme())
	}
	return 0, UnsupportedAlgorithmError{Alg: fmt.Sprintf("%T", key)}
}
