// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/apex/log"
	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
)

// ObjectGetter is the slice of the S3 client used to read a dataset mirror.
type ObjectGetter interface {
	GetObject(ctx context.Context, in *s3v2.GetObjectInput, optFns ...func(*s3v2.Options)) (*s3v2.GetObjectOutput, error)
}

// ParseS3URL splits s3://bucket/key into its parts.
func ParseS3URL(raw string) (bucket, key string, err error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", fmt.Errorf("failed to parse %s: %w", raw, err)
	}
	if u.Scheme != "s3" || u.Host == "" {
		return "", "", fmt.Errorf("not an s3 url: %s", raw)
	}
	key = strings.TrimPrefix(u.Path, "/")
	if key == "" {
		return "", "", fmt.Errorf("s3 url has no key: %s", raw)
	}
	return u.Host, key, nil
}

// newS3 loads AWS config the usual way (AWS_PROFILE, shared config, env,
// IMDS) and builds a client from it.
func newS3(ctx context.Context) (*s3v2.Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}
	return s3v2.NewFromConfig(cfg), nil
}

func (f *Fetcher) fetchS3(ctx context.Context) ([]byte, error) {
	bucket, key, err := ParseS3URL(f.URL)
	if err != nil {
		return nil, err
	}

	if f.S3 == nil {
		client, err := newS3(ctx)
		if err != nil {
			return nil, err
		}
		f.S3 = client
	}

	log.Debugf("s3 get: bucket=%s key=%s", bucket, key)
	out, err := f.S3.GetObject(ctx, &s3v2.GetObjectInput{
		Bucket: awsv2.String(bucket),
		Key:    awsv2.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get s3://%s/%s: %w", bucket, key, err)
	}
	defer out.Body.Close()

	var doc bytes.Buffer
	if _, err := doc.ReadFrom(out.Body); err != nil {
		return nil, fmt.Errorf("failed to read s3 object: %w", err)
	}
	return doc.Bytes(), nil
}
