/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package statusliststore stores published status list documents in a public
// S3 bucket.
package statusliststore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/credentio/vce/pkg/service/statuslist"
)

const (
	contentType           = "application/jwt"
	amazonPublicDomainFmt = "https://%s.s3.%s.amazonaws.com"
)

//go:generate mockgen -destination status_list_store_mocks_test.go -self_package mocks -package statusliststore_test -source=status_list_store.go -mock_names s3Uploader=MockS3Uploader

type s3Uploader interface {
	PutObject(ctx context.Context, input *s3.PutObjectInput, opts ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, input *s3.GetObjectInput, opts ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Store keeps published status list documents in an S3 bucket. The bucket is
// public: remote verifiers dereference the list URL directly, without going
// through this service.
type Store struct {
	s3Uploader s3Uploader
	bucket     string
	region     string
	hostName   string
}

// NewStore creates a new instance of Store. When hostName is empty, objects
// resolve under the bucket's amazonaws.com domain.
func NewStore(s3Uploader s3Uploader, bucket, region, hostName string) *Store {
	return &Store{
		s3Uploader: s3Uploader,
		bucket:     bucket,
		region:     region,
		hostName:   hostName,
	}
}

// Upsert stores the document under the list URL, replacing any previous
// version.
func (s *Store) Upsert(ctx context.Context, listURL string, doc []byte) error {
	key, err := s.resolveS3Key(listURL)
	if err != nil {
		return err
	}

	_, err = s.s3Uploader.PutObject(ctx, &s3.PutObjectInput{
		Body:        bytes.NewReader(doc),
		Key:         aws.String(key),
		Bucket:      aws.String(s.bucket),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("upload status list document: %w", err)
	}

	return nil
}

// Get returns the document stored under the list URL.
func (s *Store) Get(ctx context.Context, listURL string) ([]byte, error) {
	key, err := s.resolveS3Key(listURL)
	if err != nil {
		return nil, err
	}

	res, err := s.s3Uploader.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, statuslist.ErrDataNotFound
		}

		if strings.Contains(err.Error(), "AccessDenied") {
			return nil, statuslist.ErrDataNotFound
		}

		return nil, fmt.Errorf("get status list document from s3: %w", err)
	}

	doc, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read status list document body: %w", err)
	}

	return doc, nil
}

// PublicURL returns the URL the document stored under path is served from.
func (s *Store) PublicURL(path string) string {
	host := s.hostName
	if host == "" {
		host = fmt.Sprintf(amazonPublicDomainFmt, s.bucket, s.region)
	}

	return host + "/" + strings.TrimPrefix(path, "/")
}

// resolveS3Key maps the list URL onto the object key: the URL path with the
// leading slash stripped.
func (s *Store) resolveS3Key(listURL string) (string, error) {
	parsed, err := url.Parse(listURL)
	if err != nil {
		return "", fmt.Errorf("parse list url: %w", err)
	}

	return strings.TrimPrefix(parsed.Path, "/"), nil
}
