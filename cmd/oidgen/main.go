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

// Command oidgen generates the registry table of package oid from its YAML
// source.
package main

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/notaryproject/notation-oid-go/internal/oidgen"
	"github.com/notaryproject/notation-oid-go/log"
	"github.com/spf13/cobra"
)

type options struct {
	in      string
	out     string
	pkg     string
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "oidgen --in registry.yaml --out zz_generated_registry.go",
		Short: "Generate the OID registry table",
		Long: `Generate the OID registry table from its YAML source.

The search table is sorted by hash, then by encoded length, then by encoding
compared from the last byte backward, as required by oid.Lookup.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if opts.verbose {
				ctx = log.WithLogger(ctx, log.New(cmd.ErrOrStderr(), log.LevelDebug))
			}
			return run(ctx, opts)
		},
	}
	cmd.Flags().StringVar(&opts.in, "in", "registry.yaml", "registry source file")
	cmd.Flags().StringVar(&opts.out, "out", "zz_generated_registry.go", "generated Go file")
	cmd.Flags().StringVar(&opts.pkg, "pkg", "oid", "package name of the generated file")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log progress to stderr")
	return cmd
}

func run(ctx context.Context, opts *options) error {
	logger := log.GetLogger(ctx)

	f, err := os.Open(opts.in)
	if err != nil {
		return err
	}
	defer f.Close()
	entries, err := oidgen.Load(ctx, f)
	if err != nil {
		return fmt.Errorf("%s: %w", opts.in, err)
	}
	table, err := oidgen.Build(entries)
	if err != nil {
		return fmt.Errorf("%s: %w", opts.in, err)
	}

	var buf bytes.Buffer
	if err := table.WriteGo(&buf, opts.pkg); err != nil {
		return err
	}
	if err := os.WriteFile(opts.out, buf.Bytes(), 0644); err != nil {
		return err
	}
	logger.Infof("wrote %d symbols to %s", len(table.Symbols), opts.out)
	return nil
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "oidgen:", err)
		os.Exit(1)
	}
}
