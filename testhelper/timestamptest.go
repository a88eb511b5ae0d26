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

package testhelper

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509/pkix"
	"encoding/asn1"
	"math/big"
	"time"
)

var (
	oidSignedData    = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 7, 2}
	oidTSTInfo       = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 9, 16, 1, 4}
	oidSHA256        = asn1.ObjectIdentifier{2, 16, 840, 1, 101, 3, 4, 2, 1}
	oidRSAEncryption = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 1}

	// TimestampPolicy is the TSA policy of tokens built by GetTimestampToken.
	TimestampPolicy = asn1.ObjectIdentifier{1, 3, 6, 1, 4, 1, 4146, 2, 3}
)

type contentInfo struct {
	ContentType asn1.ObjectIdentifier
	Content     asn1.RawValue
}

type signedData struct {
	Version          int
	DigestAlgorithms []pkix.AlgorithmIdentifier `asn1:"set"`
	EncapContentInfo encapContentInfo
	Certificates     asn1.RawValue
	SignerInfos      []signerInfo `asn1:"set"`
}

type encapContentInfo struct {
	ContentType asn1.ObjectIdentifier
	Content     []byte `asn1:"explicit,optional,tag:0"`
}

type signerInfo struct {
	Version            int
	SignerIdentifier   issuerAndSerialNumber
	DigestAlgorithm    pkix.AlgorithmIdentifier
	SignatureAlgorithm pkix.AlgorithmIdentifier
	Signature          []byte
}

type issuerAndSerialNumber struct {
	Issuer       asn1.RawValue
	SerialNumber *big.Int
}

type tstInfo struct {
	Version        int
	Policy         asn1.ObjectIdentifier
	MessageImprint messageImprint
	SerialNumber   *big.Int
	GenTime        time.Time `asn1:"generalized"`
}

type messageImprint struct {
	HashAlgorithm pkix.AlgorithmIdentifier
	HashedMessage []byte
}

// GetTimestampToken returns a DER encoded RFC 3161 timestamp token over
// hashedMessage, signed by the RSA leaf certificate with sha256 and a CMS
// style rsaEncryption signature algorithm. The token carries no signed
// attributes, so it parses but does not verify as a timestamp.
func GetTimestampToken(hashAlg asn1.ObjectIdentifier, hashedMessage []byte, genTime time.Time) []byte {
	leaf := GetRSALeafCertificate()
	info, err := asn1.Marshal(tstInfo{
		Version: 1,
		Policy:  TimestampPolicy,
		MessageImprint: messageImprint{
			HashAlgorithm: pkix.AlgorithmIdentifier{Algorithm: hashAlg},
			HashedMessage: hashedMessage,
		},
		SerialNumber: big.NewInt(42),
		GenTime:      genTime.UTC(),
	})
	if err != nil {
		panic(err)
	}
	digest := sha256.Sum256(info)
	signature, err := rsa.SignPKCS1v15(rand.Reader, leaf.PrivateKey, crypto.SHA256, digest[:])
	if err != nil {
		panic(err)
	}
	signed, err := asn1.Marshal(signedData{
		Version:          3,
		DigestAlgorithms: []pkix.AlgorithmIdentifier{{Algorithm: oidSHA256}},
		EncapContentInfo: encapContentInfo{
			ContentType: oidTSTInfo,
			Content:     info,
		},
		Certificates: asn1.RawValue{
			Class:      asn1.ClassContextSpecific,
			Tag:        0,
			IsCompound: true,
			Bytes:      leaf.Cert.Raw,
		},
		SignerInfos: []signerInfo{{
			Version: 1,
			SignerIdentifier: issuerAndSerialNumber{
				Issuer:       asn1.RawValue{FullBytes: leaf.Cert.RawIssuer},
				SerialNumber: leaf.Cert.SerialNumber,
			},
			DigestAlgorithm:    pkix.AlgorithmIdentifier{Algorithm: oidSHA256},
			SignatureAlgorithm: pkix.AlgorithmIdentifier{Algorithm: oidRSAEncryption},
			Signature:          signature,
		}},
	})
	if err != nil {
		panic(err)
	}
	token, err := asn1.Marshal(contentInfo{
		ContentType: oidSignedData,
		Content: asn1.RawValue{
			Class:      asn1.ClassContextSpecific,
			Tag:        0,
			IsCompound: true,
			Bytes:      signed,
		},
	})
	if err != nil {
		panic(err)
	}
	return token
}
