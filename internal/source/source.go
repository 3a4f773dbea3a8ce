// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"

	awsx "github.com/tfctl/repdiff/internal/aws"
	"github.com/tfctl/repdiff/internal/cacheutil"
	"github.com/tfctl/repdiff/internal/log"
	"github.com/tfctl/repdiff/internal/parser"
	"github.com/tfctl/repdiff/internal/record"
)

// Stdin is the location that reads the report from standard input.
const Stdin = "-"

const s3Scheme = "s3://"

// cacheSubdir groups cached S3 reports inside the cache dir.
var cacheSubdir = []string{"s3"}

// Options carries the settings needed to reach remote locations.
type Options struct {
	Profile  string
	Region   string
	Endpoint string
}

// S3API is the subset of the S3 client used to fetch reports.
type S3API interface {
	HeadObject(ctx context.Context, in *s3v2.HeadObjectInput, optFns ...func(*s3v2.Options)) (*s3v2.HeadObjectOutput, error)
	GetObject(ctx context.Context, in *s3v2.GetObjectInput, optFns ...func(*s3v2.Options)) (*s3v2.GetObjectOutput, error)
}

// NewS3 builds the client for s3:// locations. Tests swap it out.
var NewS3 = func(ctx context.Context, opts Options) (S3API, error) {
	client, err := awsx.NewS3Client(ctx,
		awsx.WithProfile(opts.Profile),
		awsx.WithRegion(opts.Region),
		awsx.WithEndpoint(opts.Endpoint),
	)
	if err != nil {
		return nil, err
	}
	return client, nil
}

// IsS3 reports whether location is an s3:// URI.
func IsS3(location string) bool {
	return strings.HasPrefix(location, s3Scheme)
}

// ParseS3 splits an s3://bucket/key URI.
func ParseS3(location string) (bucket, key string, err error) {
	if !IsS3(location) {
		return "", "", fmt.Errorf("not an s3 uri: %s", location)
	}
	rest := strings.TrimPrefix(location, s3Scheme)
	bucket, key, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("s3 uri must look like s3://bucket/key: %s", location)
	}
	return bucket, key, nil
}

// Open returns a reader over the raw, still encoded report bytes. The caller
// must close it. Failures are *parser.FileAccessError.
func Open(ctx context.Context, location string, opts Options) (io.ReadCloser, error) {
	switch {
	case location == Stdin:
		return io.NopCloser(os.Stdin), nil
	case IsS3(location):
		data, err := fetchS3(ctx, location, opts)
		if err != nil {
			return nil, &parser.FileAccessError{Path: location, Err: err}
		}
		return io.NopCloser(bytes.NewReader(data)), nil
	default:
		info, err := os.Stat(location)
		if err != nil {
			return nil, &parser.FileAccessError{Path: location, Err: err}
		}
		if info.IsDir() {
			return nil, &parser.FileAccessError{Path: location, Err: errors.New("is a directory")}
		}
		f, err := os.Open(location)
		if err != nil {
			return nil, &parser.FileAccessError{Path: location, Err: err}
		}
		return f, nil
	}
}

// Load opens location, parses it with popts and closes it again.
func Load(ctx context.Context, location string, popts parser.Options, opts Options) (record.Records, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rc, err := Open(ctx, location, opts)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return parser.ParseReader(rc, location, popts)
}

// LoadEntries is Load for callers that want every matched line.
func LoadEntries(ctx context.Context, location string, popts parser.Options, opts Options) ([]parser.Entry, error) {
	rc, err := Open(ctx, location, opts)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	decoded, err := parser.Decoder(rc, popts.Encoding)
	if err != nil {
		return nil, &parser.FileAccessError{Path: location, Err: err}
	}

	entries, err := parser.ParseEntries(decoded, popts)
	if err != nil {
		return nil, &parser.FileAccessError{Path: location, Err: err}
	}
	return entries, nil
}

// fetchS3 returns the object bytes, from the cache when the ETag is unchanged.
func fetchS3(ctx context.Context, location string, opts Options) ([]byte, error) {
	bucket, key, err := ParseS3(location)
	if err != nil {
		return nil, err
	}

	client, err := NewS3(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create s3 client: %w", err)
	}

	head, err := client.HeadObject(ctx, &s3v2.HeadObjectInput{
		Bucket: awsv2.String(bucket),
		Key:    awsv2.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to stat object: %w", err)
	}

	etag := awsv2.ToString(head.ETag)
	cacheKey := cacheutil.Key(location, etag)
	if etag != "" {
		if entry, ok := cacheutil.Read(cacheSubdir, cacheKey); ok {
			return entry.Data, nil
		}
	}

	obj, err := client.GetObject(ctx, &s3v2.GetObjectInput{
		Bucket: awsv2.String(bucket),
		Key:    awsv2.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get object: %w", err)
	}
	defer obj.Body.Close()

	data, err := io.ReadAll(obj.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read object: %w", err)
	}
	log.Debugf("s3 fetch: uri=%s bytes=%d etag=%s", location, len(data), etag)

	if etag != "" {
		if err := cacheutil.Write(cacheSubdir, cacheKey, data); err != nil {
			log.WithError(err).Warnf("cache write failed for %s", location)
		}
	}

	return data, nil
}
