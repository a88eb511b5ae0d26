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

package x509

import (
	"crypto/x509"
	"errors"
	"fmt"

	"github.com/notaryproject/notation-oid-go/algorithm"
	"github.com/notaryproject/notation-oid-go/oid"
	"golang.org/x/crypto/cryptobyte"
	cryptobyte_asn1 "golang.org/x/crypto/cryptobyte/asn1"
)

var errMalformedCertificate = errors.New("x509: malformed certificate")

// SignatureAlgorithm returns the registry symbol of the signatureAlgorithm
// field of cert. An unregistered algorithm results in oid.NotFoundError.
func SignatureAlgorithm(cert *x509.Certificate) (oid.OID, error) {
	content, err := signatureAlgorithmOID(cert.Raw)
	if err != nil {
		return oid.NotFound, err
	}
	o := oid.Lookup(content)
	if o == oid.NotFound {
		return oid.NotFound, oid.NotFoundError{Data: content}
	}
	return o, nil
}

// SignatureDigest returns the signature algorithm of cert along with the
// digest the issuer signed over.
func SignatureDigest(cert *x509.Certificate) (oid.OID, oid.Digest, error) {
	o, err := SignatureAlgorithm(cert)
	if err != nil {
		return oid.NotFound, oid.Digest{OID: oid.NotFound}, err
	}
	digest, ok := oid.DigestInfo(o)
	if !ok {
		return o, oid.Digest{OID: oid.NotFound}, fmt.Errorf("certificate with subject %q: %w", cert.Subject, algorithm.UnsupportedAlgorithmError{Alg: o.String()})
	}
	return o, digest, nil
}

// ToSignatureAlgorithm converts a signature algorithm symbol, with the
// digest symbol for CMS style rsaEncryption signatures, to the golang
// signature algorithm.
func ToSignatureAlgorithm(digestAlg, sigAlg oid.OID) x509.SignatureAlgorithm {
	switch sigAlg {
	case oid.RSAEncryption:
		switch digestAlg {
		case oid.SHA1:
			return x509.SHA1WithRSA
		case oid.SHA256:
			return x509.SHA256WithRSA
		case oid.SHA384:
			return x509.SHA384WithRSA
		case oid.SHA512:
			return x509.SHA512WithRSA
		}
	case oid.MD5WithRSAEncryption:
		return x509.MD5WithRSA
	case oid.SHA1WithRSAEncryption:
		return x509.SHA1WithRSA
	case oid.SHA256WithRSAEncryption:
		return x509.SHA256WithRSA
	case oid.SHA384WithRSAEncryption:
		return x509.SHA384WithRSA
	case oid.SHA512WithRSAEncryption:
		return x509.SHA512WithRSA
	case oid.ECDSAWithSHA1:
		return x509.ECDSAWithSHA1
	case oid.ECDSAWithSHA256:
		return x509.ECDSAWithSHA256
	case oid.ECDSAWithSHA384:
		return x509.ECDSAWithSHA384
	case oid.ECDSAWithSHA512:
		return x509.ECDSAWithSHA512
	case oid.Ed25519:
		return x509.PureEd25519
	}
	return x509.UnknownSignatureAlgorithm
}

// KeyAlgorithm returns the recommended signing algorithm for the public key
// of cert.
func KeyAlgorithm(cert *x509.Certificate) (algorithm.Algorithm, error) {
	alg, err := algorithm.FromPublicKey(cert.PublicKey)
	if err != nil {
		return 0, fmt.Errorf("certificate with subject %q: %w", cert.Subject, err)
	}
	return alg, nil
}

// signatureAlgorithmOID returns the content octets of the algorithm OID in
//
//	Certificate ::= SEQUENCE {
//	    tbsCertificate       TBSCertificate,
//	    signatureAlgorithm   AlgorithmIdentifier,
//	    signatureValue       BIT STRING }
func signatureAlgorithmOID(der []byte) ([]byte, error) {
	input := cryptobyte.String(der)
	var certificate, algID, content cryptobyte.String
	if !input.ReadASN1(&certificate, cryptobyte_asn1.SEQUENCE) || !input.Empty() {
		return nil, errMalformedCertificate
	}
	if !certificate.SkipASN1(cryptobyte_asn1.SEQUENCE) {
		return nil, fmt.Errorf("%w: invalid tbsCertificate", errMalformedCertificate)
	}
	if !certificate.ReadASN1(&algID, cryptobyte_asn1.SEQUENCE) {
		return nil, fmt.Errorf("%w: invalid signatureAlgorithm", errMalformedCertificate)
	}
	if !algID.ReadASN1(&content, cryptobyte_asn1.OBJECT_IDENTIFIER) {
		return nil, fmt.Errorf("%w: invalid signature algorithm identifier", errMalformedCertificate)
	}
	return content, nil
}
