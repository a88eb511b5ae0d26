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
	"errors"
	"strconv"
)

// badText is left in the buffer when the input cannot be decoded.
const badText = "(bad)"

// Sprint renders the content octets of an encoded OBJECT IDENTIFIER into buf
// in dotted-decimal form, such as "1.2.840.113549", and returns the length of
// the text.
//
// The text is followed by a NUL byte, so buf must be at least one byte longer
// than the text. If it is not, Sprint returns BufferTooSmallError and the
// content of buf is unspecified. Sprint never writes beyond len(buf).
//
// If data is empty or ends inside an arc, Sprint returns MalformedError and
// buf holds "(bad)", truncated to fit.
func Sprint(data, buf []byte) (int, error) {
	if len(data) == 0 {
		return 0, writeBad(buf, "empty input")
	}
	w := textWriter{buf: buf}

	// the first octet carries the first two arcs
	var scratch [24]byte
	seg := strconv.AppendUint(scratch[:0], uint64(data[0]/40), 10)
	seg = append(seg, '.')
	seg = strconv.AppendUint(seg, uint64(data[0]%40), 10)
	if err := w.write(seg); err != nil {
		return 0, err
	}

	for v := data[1:]; len(v) > 0; {
		var (
			arc uint64
			ok  bool
		)
		arc, v, ok = readArc(v)
		if !ok {
			return 0, writeBad(buf, "truncated arc")
		}
		seg = append(scratch[:0], '.')
		seg = strconv.AppendUint(seg, arc, 10)
		if err := w.write(seg); err != nil {
			return 0, err
		}
	}
	buf[w.n] = 0
	return w.n, nil
}

// Sprint renders the registered object identifier o into buf in
// dotted-decimal form. See Sprint for the buffer contract.
//
// Sprint panics if o is not a registered symbol. The only error it returns is
// BufferTooSmallError.
func (o OID) Sprint(buf []byte) (int, error) {
	n, err := Sprint(o.encoded(), buf)
	var malformed MalformedError
	if errors.As(err, &malformed) {
		panic("oid: registry entry " + oidNames[o] + " is malformed")
	}
	return n, err
}

// Format returns the dotted-decimal form of the content octets of an encoded
// OBJECT IDENTIFIER.
func Format(data []byte) (string, error) {
	buf := make([]byte, maxTextLen(len(data)))
	n, err := Sprint(data, buf)
	if err != nil {
		return "", err
	}
	return string(buf[:n]), nil
}

// Dotted returns the dotted-decimal form of o, such as "2.16.840.1.101.3.4.2.1".
//
// Dotted panics if o is not a registered symbol.
func (o OID) Dotted() string {
	data := o.encoded()
	buf := make([]byte, maxTextLen(len(data)))
	n, err := o.Sprint(buf)
	if err != nil {
		panic("oid: " + err.Error())
	}
	return string(buf[:n])
}

// maxTextLen bounds the rendered size of n content octets, terminator
// included. The first octet renders as at most "6.15" and every further
// octet adds at most one arc of up to 20 digits and its separator.
func maxTextLen(n int) int {
	if n == 0 {
		return len(badText) + 1
	}
	return 4 + 21*(n-1) + 1
}

// readArc decodes one base-128 arc. ok is false if v ends while a
// continuation octet is still expected.
func readArc(v []byte) (arc uint64, rest []byte, ok bool) {
	for i, b := range v {
		arc = arc<<7 | uint64(b&0x7f)
		if b&0x80 == 0 {
			return arc, v[i+1:], true
		}
	}
	return 0, nil, false
}

// writeBad leaves the placeholder text in buf and returns the MalformedError.
func writeBad(buf []byte, msg string) error {
	if len(buf) > 0 {
		n := copy(buf[:len(buf)-1], badText)
		buf[n] = 0
	}
	return MalformedError{Msg: msg}
}

// textWriter appends rendered segments to a fixed buffer, keeping one byte
// free for the terminator.
type textWriter struct {
	buf []byte
	n   int
}

func (w *textWriter) write(seg []byte) error {
	if len(seg) >= len(w.buf)-w.n {
		return BufferTooSmallError{Size: len(w.buf)}
	}
	w.n += copy(w.buf[w.n:], seg)
	return nil
}
