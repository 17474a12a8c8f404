package objstore

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// Config holds connection settings for an S3-compatible object store.
type Config struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	Region          string
	CustomDomain    string
	PathStyleAccess bool
}

// Client talks to one bucket of an S3-compatible object store.
type Client struct {
	s3           *s3.Client
	bucket       string
	endpoint     string
	customDomain string
	pathStyle    bool
}

// New builds a client for the configured bucket.
func New(cfg Config) (*Client, error) {
	endpoint := strings.TrimRight(strings.TrimSpace(cfg.Endpoint), "/")
	if endpoint == "" {
		return nil, fmt.Errorf("objstore: endpoint is required")
	}
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}
	bucket := strings.TrimSpace(cfg.Bucket)
	if bucket == "" {
		return nil, fmt.Errorf("objstore: bucket is required")
	}

	region := strings.TrimSpace(cfg.Region)
	if region == "" {
		region = "auto"
	}

	client := s3.New(s3.Options{
		Region:       region,
		BaseEndpoint: aws.String(endpoint),
		Credentials:  credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		UsePathStyle: cfg.PathStyleAccess,
	})

	return &Client{
		s3:           client,
		bucket:       bucket,
		endpoint:     endpoint,
		customDomain: strings.TrimRight(strings.TrimSpace(cfg.CustomDomain), "/"),
		pathStyle:    cfg.PathStyleAccess,
	}, nil
}

// Upload stores an object with public-read ACL and returns its public URL.
func (c *Client) Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	input := &s3.PutObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
		Body:   body,
		ACL:    types.ObjectCannedACLPublicRead,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	if _, err := c.s3.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("objstore: upload %q: %w", key, err)
	}
	return c.PublicURL(key), nil
}

// Remove deletes an object. Removing a missing key is not an error on
// S3-compatible stores.
func (c *Client) Remove(ctx context.Context, key string) error {
	_, err := c.s3.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("objstore: remove %q: %w", key, err)
	}
	return nil
}

// PublicURL derives the browser-facing URL for a key, preferring the custom
// domain when configured.
func (c *Client) PublicURL(key string) string {
	key = strings.TrimPrefix(key, "/")
	if c.customDomain != "" {
		return c.customDomain + "/" + key
	}
	if c.pathStyle {
		return c.endpoint + "/" + c.bucket + "/" + key
	}

	u, err := url.Parse(c.endpoint)
	if err != nil || u.Host == "" {
		return c.endpoint + "/" + c.bucket + "/" + key
	}
	return fmt.Sprintf("%s://%s.%s/%s", u.Scheme, c.bucket, u.Host, key)
}
