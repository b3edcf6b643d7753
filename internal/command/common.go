// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/aocctl/internal/aws"
	"github.com/staranto/aocctl/internal/cacheutil"
	"github.com/staranto/aocctl/internal/client"
	"github.com/staranto/aocctl/internal/meta"
	"github.com/staranto/aocctl/internal/repository"
	"github.com/staranto/aocctl/internal/store"
	"github.com/staranto/aocctl/internal/store/local"
	"github.com/staranto/aocctl/internal/store/s3"
)

var errMissingBucket = errors.New("the s3 backend requires --s3-bucket or cache.s3.bucket")

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// Writer is where command output goes: the root command's Writer, or stdout.
func Writer(cmd *cli.Command) io.Writer {
	if root := cmd.Root(); root != nil && root.Writer != nil {
		return root.Writer
	}
	return os.Stdout
}

// NewStore builds the backend selected by --backend.
func NewStore(ctx context.Context, cmd *cli.Command) (store.Store, error) {
	switch cmd.String("backend") {
	case backendS3:
		bucket := cmd.String("s3-bucket")
		if bucket == "" {
			return nil, errMissingBucket
		}
		api, err := aws.NewS3(ctx,
			aws.WithProfile(cmd.String("s3-profile")),
			aws.WithRegion(cmd.String("s3-region")),
			aws.WithEndpoint(cmd.String("s3-endpoint")),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS config: %w", err)
		}
		return s3.New(api, bucket, cmd.String("s3-prefix"))
	default:
		root, err := cacheutil.EnsureBaseDir(cmd.String("cache-dir"))
		if err != nil {
			return nil, err
		}
		return local.New(root), nil
	}
}

// NewRepository wires the store and a lazily authenticated client.
func NewRepository(ctx context.Context, cmd *cli.Command) (*repository.InputRepository, error) {
	s, err := NewStore(ctx, cmd)
	if err != nil {
		return nil, err
	}
	log.Debugf("store: %s", s.Root())

	m := GetMeta(cmd)
	baseURL := cmd.String("base-url")
	lc := &lazyClient{
		session: func() (string, error) {
			return resolveSession(cmd.String("session"), m.Prompt)
		},
		build: func(session string) (*client.AocClient, error) {
			return client.NewAocClient(baseURL, session)
		},
	}

	return repository.NewWithStore(s, lc), nil
}
