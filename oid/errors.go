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
	"encoding/hex"
	"fmt"
)

// MalformedError is used when data is not a valid OBJECT IDENTIFIER encoding.
type MalformedError struct {
	Msg string
}

// Error returns the error message.
func (e MalformedError) Error() string {
	if e.Msg != "" {
		return "malformed object identifier: " + e.Msg
	}
	return "malformed object identifier"
}

// BufferTooSmallError is used when the rendered text of an object identifier
// does not fit into the destination buffer.
type BufferTooSmallError struct {
	// Size is the capacity of the buffer that was too small.
	Size int
}

// Error returns the error message.
func (e BufferTooSmallError) Error() string {
	return fmt.Sprintf("buffer of %d bytes is too small for the object identifier", e.Size)
}

// NotFoundError is used when a registry symbol is required but the encoded
// object identifier is not registered.
type NotFoundError struct {
	Data []byte
}

// Error returns the error message.
func (e NotFoundError) Error() string {
	return fmt.Sprintf("object identifier %s is not registered", hex.EncodeToString(e.Data))
}
