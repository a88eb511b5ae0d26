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

import internalasn1 "github.com/notaryproject/notation-oid-go/internal/encoding/asn1"

// searchEntry is one element of the search table. The table is ordered by
// hash, then by encoded length, then by encoding compared from the last byte
// backward.
type searchEntry struct {
	hash uint8
	oid  OID
}

// probe compares a search table entry against the hashed input. It returns 1
// when the entry sorts after the input, -1 when it sorts before and 0 on a
// match.
func (e searchEntry) probe(hash uint8, data []byte) int {
	switch {
	case e.hash > hash:
		return 1
	case e.hash < hash:
		return -1
	}
	return internalasn1.Compare(e.oid.encoded(), data)
}

// Lookup returns the symbol whose canonical encoding equals data, or NotFound.
//
// data holds the content octets of an OBJECT IDENTIFIER, without the
// identifier and length octets.
func Lookup(data []byte) OID {
	hash := internalasn1.Hash(data)
	i, k := 0, len(searchTable)
	for i < k {
		j := int(uint(i+k) >> 1)
		switch searchTable[j].probe(hash, data) {
		case 1:
			k = j
		case -1:
			i = j + 1
		default:
			return searchTable[j].oid
		}
	}
	return NotFound
}
