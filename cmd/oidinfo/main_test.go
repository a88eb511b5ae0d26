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

package main

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/notaryproject/notation-oid-go/oid"
	"github.com/notaryproject/notation-oid-go/testhelper"
)

func execute(args ...string) (string, string, error) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd := newRootCmd()
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		arg  string
		want string
	}{
		{"content octets", "2a864886f70d01010b", "sha256WithRSAEncryption\t1.2.840.113549.1.1.11\n"},
		{"der element", "06:03:55:04:03", "commonName\t2.5.4.3\n"},
		{"prefixed", "0x2b6570", "id_Ed25519\t1.3.101.112\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, err := execute("lookup", tt.arg)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("lookup %s = %q, want %q", tt.arg, got, tt.want)
			}
		})
	}
}

func TestLookupVerbose(t *testing.T) {
	_, stderr, err := execute("lookup", "-v", "0603550403")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stderr, "resolved 0603550403 as DER element") {
		t.Errorf("stderr = %q", stderr)
	}

	_, stderr, err = execute("lookup", "550403")
	if err != nil {
		t.Fatal(err)
	}
	if stderr != "" {
		t.Errorf("stderr without --verbose = %q", stderr)
	}
}

func TestLookupErrors(t *testing.T) {
	_, _, err := execute("lookup", "2a0304")
	var notFound oid.NotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("lookup 2a0304 error = %v, want NotFoundError", err)
	}
	if _, _, err := execute("lookup", "zz"); err == nil {
		t.Error("lookup zz expected error")
	}
	if _, _, err := execute("lookup"); err == nil {
		t.Error("lookup without argument expected error")
	}
}

func TestSprint(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"content octets", []string{"2a8648"}, "1.2.840\n"},
		{"unregistered", []string{"2a0304"}, "1.2.3.4\n"},
		{"der element", []string{"--der", "06032a8648"}, "1.2.840\n"},
		{"exact buffer", []string{"--size", "8", "2a8648"}, "1.2.840\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, err := execute(append([]string{"sprint"}, tt.args...)...)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("sprint %v = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestSprintErrors(t *testing.T) {
	_, _, err := execute("sprint", "--size", "7", "2a8648")
	var tooSmall oid.BufferTooSmallError
	if !errors.As(err, &tooSmall) {
		t.Errorf("sprint --size 7 error = %v, want BufferTooSmallError", err)
	}

	_, stderr, err := execute("sprint", "-v", "--size", "4", "2a86")
	var malformed oid.MalformedError
	if !errors.As(err, &malformed) {
		t.Errorf("sprint 2a86 error = %v, want MalformedError", err)
	}
	if !strings.Contains(stderr, `buffer holds "(ba"`) {
		t.Errorf("stderr = %q", stderr)
	}

	if _, _, err := execute("sprint", "--der", "2a8648"); !errors.As(err, &malformed) {
		t.Errorf("sprint --der 2a8648 error = %v, want MalformedError", err)
	}
}

func TestDigest(t *testing.T) {
	tests := []struct {
		arg  string
		want []string
	}{
		{"id_ecdsa_with_sha256", []string{
			"Signature:  id_ecdsa_with_sha256 (1.2.840.10045.4.3.2)",
			"Digest:     sha256 (2.16.840.1.101.3.4.2.1)",
			"Size:       32 bytes",
			"Algorithm:  ES256",
		}},
		{"1.2.840.113549.1.1.11", []string{
			"Signature:  sha256WithRSAEncryption (1.2.840.113549.1.1.11)",
			"Algorithm:  RS256",
		}},
		{"md4WithRSAEncryption", []string{
			"Digest:     md4 (1.2.840.113549.2.4)",
			"Size:       16 bytes",
		}},
	}
	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			got, _, err := execute("digest", tt.arg)
			if err != nil {
				t.Fatal(err)
			}
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("digest %s output missing %q:\n%s", tt.arg, want, got)
				}
			}
		})
	}
	if got, _, _ := execute("digest", "md4WithRSAEncryption"); strings.Contains(got, "Algorithm:") {
		t.Errorf("md4WithRSAEncryption should not map to an algorithm:\n%s", got)
	}
}

func TestDigestErrors(t *testing.T) {
	for _, arg := range []string{"sha256", "1.2.3", "unknown", "1"} {
		t.Run(arg, func(t *testing.T) {
			if _, _, err := execute("digest", arg); err == nil {
				t.Errorf("digest %s expected error", arg)
			}
		})
	}
}

func TestList(t *testing.T) {
	got, _, err := execute("list")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(got), "\n")
	if len(lines) != int(oid.NotFound)+1 {
		t.Fatalf("list printed %d lines, want %d", len(lines), int(oid.NotFound)+1)
	}
	if fields := strings.Fields(lines[0]); len(fields) != 3 || fields[0] != "NAME" {
		t.Errorf("header = %q", lines[0])
	}

	got, _, err = execute("list", "--signatures")
	if err != nil {
		t.Fatal(err)
	}
	lines = strings.Split(strings.TrimSpace(got), "\n")
	if len(lines) != 11 {
		t.Fatalf("list --signatures printed %d lines, want 11:\n%s", len(lines), got)
	}
	for _, line := range lines[1:] {
		if len(strings.Fields(line)) != 3 {
			t.Errorf("signature line without digest: %q", line)
		}
	}
}

func TestCert(t *testing.T) {
	ec := testhelper.GetECLeafCertificate()
	ed := testhelper.GetEd25519RootCertificate()
	path := testhelper.WriteCertificates(t, ec.Cert, ed.Cert)

	got, stderr, err := execute("cert", "-v", path)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"Signature:  id_ecdsa_with_sha384 (1.2.840.10045.4.3.3)",
		"Digest:     sha384 (48 bytes)",
		"Key:        ES384",
		"Signature:  id_Ed25519 (1.3.101.112)",
		"Key:        EdDSA",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("cert output missing %q:\n%s", want, got)
		}
	}
	if !strings.Contains(stderr, "read 2 certificates") || !strings.Contains(stderr, "WARN") {
		t.Errorf("stderr = %q", stderr)
	}

	if _, _, err := execute("cert", path+".missing"); err == nil {
		t.Error("cert with missing file expected error")
	}
}

func TestTimestamp(t *testing.T) {
	dir := t.TempDir()
	content := []byte("signature envelope")
	sum := sha256.Sum256(content)
	genTime := time.Date(2024, 3, 22, 3, 10, 47, 0, time.UTC)
	tokenPath := filepath.Join(dir, "token.der")
	if err := os.WriteFile(tokenPath, testhelper.GetTimestampToken(oid.SHA256.ObjectIdentifier(), sum[:], genTime), 0600); err != nil {
		t.Fatal(err)
	}
	contentPath := filepath.Join(dir, "content")
	if err := os.WriteFile(contentPath, content, 0600); err != nil {
		t.Fatal(err)
	}

	got, stderr, err := execute("timestamp", "-v", tokenPath, "--content", contentPath)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"Policy:     " + testhelper.TimestampPolicy.String(),
		"Serial:     42",
		"Time:       2024-03-22T03:10:47Z",
		"Imprint:    sha256 (2.16.840.1.101.3.4.2.1)",
		"Signer:     sha256 rsaEncryption",
		"Content:    sha256 digest matches",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("timestamp output missing %q:\n%s", want, got)
		}
	}
	if !strings.Contains(stderr, "1 signers and 1 certificates") {
		t.Errorf("stderr = %q", stderr)
	}

	if err := os.WriteFile(contentPath, []byte("tampered"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := execute("timestamp", tokenPath, "--content", contentPath); err == nil {
		t.Error("timestamp with tampered content expected error")
	}
}

func TestTimestampErrors(t *testing.T) {
	dir := t.TempDir()
	md5Token := filepath.Join(dir, "md5.der")
	if err := os.WriteFile(md5Token, testhelper.GetTimestampToken(oid.MD5.ObjectIdentifier(), make([]byte, 16), time.Now()), 0600); err != nil {
		t.Fatal(err)
	}
	garbage := filepath.Join(dir, "garbage.der")
	if err := os.WriteFile(garbage, []byte("not a token"), 0600); err != nil {
		t.Fatal(err)
	}

	for _, args := range [][]string{
		{"timestamp", filepath.Join(dir, "missing.der")},
		{"timestamp", garbage},
		{"timestamp", md5Token},
		{"timestamp"},
	} {
		if _, _, err := execute(args...); err == nil {
			t.Errorf("%v expected error", args)
		}
	}
}
