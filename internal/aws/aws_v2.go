// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package aws

import (
	"context"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	iamv2 "github.com/aws/aws-sdk-go-v2/service/iam"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go/logging"

	"github.com/tfctl/bucketctl/internal/log"
)

// options holds optional overrides for AWS config loading.
type options struct {
	region  string
	keyID   string
	secret  string
	logger  logging.Logger
	logMode awsv2.ClientLogMode
}

// Option customizes how AWS config is loaded.
type Option func(*options)

// LoadAWSConfig loads AWS SDK v2 config. Without options it inherits the
// SDK's default chain. WithStaticCredentials pins credentials to an explicit
// key pair so nothing is read from shared config files.
func LoadAWSConfig(ctx context.Context, opts ...Option) (awsv2.Config, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	log.Debugf("opts applied: region=%s, static=%t", o.region, o.keyID != "")

	var loadOpts []func(*config.LoadOptions) error
	if o.region != "" {
		loadOpts = append(loadOpts, config.WithRegion(o.region))
	}
	if o.keyID != "" {
		provider := credentials.NewStaticCredentialsProvider(o.keyID, o.secret, "")
		loadOpts = append(loadOpts, config.WithCredentialsProvider(provider))
	}
	if o.logger != nil {
		loadOpts = append(loadOpts, config.WithLogger(o.logger))
	}
	if o.logMode != 0 {
		loadOpts = append(loadOpts, config.WithClientLogMode(o.logMode))
	}
	log.Debugf("loadOpts built: len=%d", len(loadOpts))

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		log.Debugf("config load err: err=%v", err)
		return awsv2.Config{}, err
	}
	log.Debugf("config loaded: region=%s", cfg.Region)
	return cfg, nil
}

// NewS3 constructs a v2 S3 client from the provided config. Additional service
// options can be supplied via optFns.
func NewS3(cfg awsv2.Config, optFns ...func(*s3v2.Options)) *s3v2.Client {
	client := s3v2.NewFromConfig(cfg, optFns...)
	log.Debugf("s3 client created")
	return client
}

// NewIAM constructs a v2 IAM client from the provided config.
func NewIAM(cfg awsv2.Config, optFns ...func(*iamv2.Options)) *iamv2.Client {
	client := iamv2.NewFromConfig(cfg, optFns...)
	log.Debugf("iam client created")
	return client
}

// WithRegion sets the region override. Defaults to env/profile/metadata chain.
func WithRegion(region string) Option {
	return func(o *options) { o.region = region }
}

// WithStaticCredentials uses the given key pair instead of the default
// credential chain. An empty keyID leaves the chain untouched.
func WithStaticCredentials(keyID, secret string) Option {
	return func(o *options) {
		o.keyID = keyID
		o.secret = secret
	}
}

// WithLogger routes SDK log output through logger.
func WithLogger(logger logging.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithClientLogMode enables SDK wire logging such as retries and requests.
func WithClientLogMode(mode awsv2.ClientLogMode) Option {
	return func(o *options) { o.logMode = mode }
}
