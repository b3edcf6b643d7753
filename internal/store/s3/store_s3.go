// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package s3

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"

	"github.com/apex/log"
	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/staranto/aocctl/internal/store"
)

// maxDeleteBatch is the S3 DeleteObjects limit.
const maxDeleteBatch = 1000

// API is the slice of the S3 client the store needs.
type API interface {
	GetObject(ctx context.Context, in *s3v2.GetObjectInput, optFns ...func(*s3v2.Options)) (*s3v2.GetObjectOutput, error)
	PutObject(ctx context.Context, in *s3v2.PutObjectInput, optFns ...func(*s3v2.Options)) (*s3v2.PutObjectOutput, error)
	DeleteObjects(ctx context.Context, in *s3v2.DeleteObjectsInput, optFns ...func(*s3v2.Options)) (*s3v2.DeleteObjectsOutput, error)
	s3v2.ListObjectsV2APIClient
}

// StoreS3 keeps inputs as objects at <prefix>/cached_inputs/<year>/<day>.txt,
// mirroring the local layout.
type StoreS3 struct {
	api    API
	bucket string
	prefix string
}

var _ store.Store = (*StoreS3)(nil)

// New returns a store over bucket. prefix may be empty.
func New(api API, bucket, prefix string) (*StoreS3, error) {
	if bucket == "" {
		return nil, errors.New("s3 store requires a bucket")
	}
	return &StoreS3{
		api:    api,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
	}, nil
}

func (s *StoreS3) root() string {
	return path.Join(s.prefix, store.CacheDirName)
}

func (s *StoreS3) key(year, day int) string {
	return path.Join(s.root(), store.Key(year, day))
}

func (s *StoreS3) Root() string {
	return "s3://" + s.bucket + "/" + s.root()
}

func (s *StoreS3) Location(year, day int) string {
	return "s3://" + s.bucket + "/" + s.key(year, day)
}

func (s *StoreS3) Get(ctx context.Context, year, day int) (string, bool, error) {
	key := s.key(year, day)
	out, err := s.api.GetObject(ctx, &s3v2.GetObjectInput{
		Bucket: awsv2.String(s.bucket),
		Key:    awsv2.String(key),
	})
	if err != nil {
		if isNotFound(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get s3://%s/%s: %w", s.bucket, key, err)
	}
	defer out.Body.Close()

	b, err := io.ReadAll(out.Body)
	if err != nil {
		return "", false, fmt.Errorf("failed to read s3://%s/%s: %w", s.bucket, key, err)
	}
	log.Debugf("cache hit: s3://%s/%s", s.bucket, key)
	return string(b), true, nil
}

// Put uploads text. S3 has no directories, so there is nothing to create
// before the write.
func (s *StoreS3) Put(ctx context.Context, year, day int, text string) error {
	key := s.key(year, day)
	_, err := s.api.PutObject(ctx, &s3v2.PutObjectInput{
		Bucket:      awsv2.String(s.bucket),
		Key:         awsv2.String(key),
		Body:        strings.NewReader(text),
		ContentType: awsv2.String("text/plain; charset=utf-8"),
	})
	if err != nil {
		return fmt.Errorf("failed to put s3://%s/%s: %w", s.bucket, key, err)
	}
	log.Debugf("cached %d bytes to s3://%s/%s", len(text), s.bucket, key)
	return nil
}

// Clear deletes every object under the cached_inputs prefix.
func (s *StoreS3) Clear(ctx context.Context) error {
	var keys []string
	if err := s.walk(ctx, func(obj types.Object) {
		keys = append(keys, awsv2.ToString(obj.Key))
	}); err != nil {
		return err
	}

	for start := 0; start < len(keys); start += maxDeleteBatch {
		end := min(start+maxDeleteBatch, len(keys))

		ids := make([]types.ObjectIdentifier, 0, end-start)
		for _, k := range keys[start:end] {
			ids = append(ids, types.ObjectIdentifier{Key: awsv2.String(k)})
		}

		out, err := s.api.DeleteObjects(ctx, &s3v2.DeleteObjectsInput{
			Bucket: awsv2.String(s.bucket),
			Delete: &types.Delete{Objects: ids, Quiet: awsv2.Bool(true)},
		})
		if err != nil {
			return fmt.Errorf("failed to clear s3://%s/%s: %w", s.bucket, s.root(), err)
		}
		if len(out.Errors) > 0 {
			e := out.Errors[0]
			return fmt.Errorf("failed to delete s3://%s/%s: %s",
				s.bucket, awsv2.ToString(e.Key), awsv2.ToString(e.Message))
		}
	}

	log.Debugf("cleared %d objects under s3://%s/%s", len(keys), s.bucket, s.root())
	return nil
}

func (s *StoreS3) List(ctx context.Context) ([]store.Entry, error) {
	var entries []store.Entry
	err := s.walk(ctx, func(obj types.Object) {
		key := awsv2.ToString(obj.Key)
		year, day, err := store.ParseKey(key)
		if err != nil {
			log.WithError(err).Warnf("skipping s3://%s/%s", s.bucket, key)
			return
		}
		entries = append(entries, store.Entry{
			Year:     year,
			Day:      day,
			Size:     awsv2.ToInt64(obj.Size),
			Modified: awsv2.ToTime(obj.LastModified),
			Location: "s3://" + s.bucket + "/" + key,
		})
	})
	if err != nil {
		return nil, err
	}

	store.SortEntries(entries)
	return entries, nil
}

func (s *StoreS3) walk(ctx context.Context, fn func(types.Object)) error {
	p := s3v2.NewListObjectsV2Paginator(s.api, &s3v2.ListObjectsV2Input{
		Bucket: awsv2.String(s.bucket),
		Prefix: awsv2.String(s.root() + "/"),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return fmt.Errorf("failed to list s3://%s/%s: %w", s.bucket, s.root(), err)
		}
		for _, obj := range page.Contents {
			fn(obj)
		}
	}
	return nil
}

func isNotFound(err error) bool {
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return true
	}
	var re *awshttp.ResponseError
	return errors.As(err, &re) && re.HTTPStatusCode() == http.StatusNotFound
}
