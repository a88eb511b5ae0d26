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

// Package timestamp resolves the algorithms of RFC 3161 timestamp tokens
// against the OID registry.
package timestamp

import (
	"bytes"
	"crypto/x509"
	"errors"
	"fmt"

	"github.com/notaryproject/notation-oid-go/algorithm"
	"github.com/notaryproject/notation-oid-go/oid"
	nx509 "github.com/notaryproject/notation-oid-go/x509"
	"github.com/notaryproject/tspclient-go"
)

// Token is a parsed timestamp token with its algorithms resolved.
type Token struct {
	// SignedToken is the token as parsed from CMS SignedData.
	SignedToken *tspclient.SignedToken

	// Info is the timestamping information of the token.
	Info *tspclient.TSTInfo

	// Digest is the digest algorithm of the message imprint.
	Digest oid.Digest

	// Signers describes each SignerInfo of the token, in order.
	Signers []Signer
}

// Signer holds the resolved algorithms of a SignerInfo. Symbols missing from
// the registry are NotFound.
type Signer struct {
	DigestAlgorithm    oid.OID
	SignatureAlgorithm oid.OID

	// Algorithm is the golang signature algorithm, or
	// x509.UnknownSignatureAlgorithm.
	Algorithm x509.SignatureAlgorithm
}

// Parse parses a BER encoded timestamp token without verifying its
// signatures.
// The message imprint hash algorithm must be a digest algorithm known to the
// registry.
func Parse(data []byte) (*Token, error) {
	signed, err := tspclient.ParseSignedToken(data)
	if err != nil {
		return nil, err
	}
	info, err := signed.Info()
	if err != nil {
		return nil, err
	}
	hashAlg := info.MessageImprint.HashAlgorithm.Algorithm
	digest, ok := oid.DigestAlgorithm(oid.FromObjectIdentifier(hashAlg))
	if !ok {
		return nil, fmt.Errorf("message imprint: %w", algorithm.UnsupportedAlgorithmError{Alg: hashAlg.String()})
	}
	if len(info.MessageImprint.HashedMessage) != digest.Size {
		return nil, fmt.Errorf("message imprint: %s digest of %d bytes, want %d", digest.Name, len(info.MessageImprint.HashedMessage), digest.Size)
	}

	token := &Token{
		SignedToken: signed,
		Info:        info,
		Digest:      digest,
	}
	for _, signerInfo := range signed.SignerInfos {
		digestAlg := oid.FromObjectIdentifier(signerInfo.DigestAlgorithm.Algorithm)
		sigAlg := oid.FromObjectIdentifier(signerInfo.SignatureAlgorithm.Algorithm)
		token.Signers = append(token.Signers, Signer{
			DigestAlgorithm:    digestAlg,
			SignatureAlgorithm: sigAlg,
			Algorithm:          nx509.ToSignatureAlgorithm(digestAlg, sigAlg),
		})
	}
	return token, nil
}

// VerifyContent verifies that the token's message imprint is the digest of
// content.
func (t *Token) VerifyContent(content []byte) error {
	sum, err := t.Digest.Sum(content)
	if err != nil {
		return err
	}
	if !bytes.Equal(sum, t.Info.MessageImprint.HashedMessage) {
		return errors.New("mismatch message digest")
	}
	return nil
}
