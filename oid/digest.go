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
	"crypto"
	_ "crypto/sha1"
	_ "crypto/sha256"
	_ "crypto/sha512"
	"fmt"

	_ "golang.org/x/crypto/md4"
)

// Digest describes the digest algorithm used by a signature algorithm.
type Digest struct {
	// Name is the lower case name of the digest algorithm, such as "sha256".
	Name string

	// Size is the length of the digest in bytes.
	Size int

	// OID is the registry symbol of the digest algorithm.
	OID OID
}

// DigestInfo returns the digest algorithm of the signature algorithm sig.
// It returns false for any other symbol, digest algorithms included, along
// with a Digest whose OID is NotFound.
func DigestInfo(sig OID) (Digest, bool) {
	switch sig {
	case MD4WithRSAEncryption:
		return DigestAlgorithm(MD4)
	case SHA1WithRSAEncryption, ECDSAWithSHA1:
		return DigestAlgorithm(SHA1)
	case SHA224WithRSAEncryption:
		return DigestAlgorithm(SHA224)
	case SHA256WithRSAEncryption, ECDSAWithSHA256:
		return DigestAlgorithm(SHA256)
	case SHA384WithRSAEncryption, ECDSAWithSHA384:
		return DigestAlgorithm(SHA384)
	case SHA512WithRSAEncryption, ECDSAWithSHA512:
		return DigestAlgorithm(SHA512)
	}
	return Digest{OID: NotFound}, false
}

// DigestAlgorithm describes the digest algorithm symbol o itself, as found in
// a messageImprint or a CMS digestAlgorithm field.
func DigestAlgorithm(o OID) (Digest, bool) {
	switch o {
	case MD4:
		return Digest{Name: "md4", Size: 16, OID: MD4}, true
	case SHA1:
		return Digest{Name: "sha1", Size: 20, OID: SHA1}, true
	case SHA224:
		return Digest{Name: "sha224", Size: 28, OID: SHA224}, true
	case SHA256:
		return Digest{Name: "sha256", Size: 32, OID: SHA256}, true
	case SHA384:
		return Digest{Name: "sha384", Size: 48, OID: SHA384}, true
	case SHA512:
		return Digest{Name: "sha512", Size: 64, OID: SHA512}, true
	}
	return Digest{OID: NotFound}, false
}

// Hash converts the digest algorithm to golang crypto hash if it is
// available.
func (d Digest) Hash() (crypto.Hash, bool) {
	var hash crypto.Hash
	switch d.OID {
	case MD4:
		hash = crypto.MD4
	case SHA1:
		hash = crypto.SHA1
	case SHA224:
		hash = crypto.SHA224
	case SHA256:
		hash = crypto.SHA256
	case SHA384:
		hash = crypto.SHA384
	case SHA512:
		hash = crypto.SHA512
	default:
		return hash, false
	}
	return hash, hash.Available()
}

// Sum computes the digest of message.
func (d Digest) Sum(message []byte) ([]byte, error) {
	hash, ok := d.Hash()
	if !ok {
		return nil, fmt.Errorf("digest algorithm %q is not available", d.Name)
	}
	h := hash.New()
	if _, err := h.Write(message); err != nil {
		return nil, err
	}
	return h.Sum(nil), nil
}
