// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package provision

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	awsx "github.com/tfctl/bucketctl/internal/aws"
	"github.com/tfctl/bucketctl/internal/config"
)

// S3API is the slice of the S3 client the provisioner calls.
type S3API interface {
	CreateBucket(ctx context.Context, in *s3.CreateBucketInput, optFns ...func(*s3.Options)) (*s3.CreateBucketOutput, error)
	PutBucketCors(ctx context.Context, in *s3.PutBucketCorsInput, optFns ...func(*s3.Options)) (*s3.PutBucketCorsOutput, error)
	PutPublicAccessBlock(ctx context.Context, in *s3.PutPublicAccessBlockInput, optFns ...func(*s3.Options)) (*s3.PutPublicAccessBlockOutput, error)
	PutBucketPolicy(ctx context.Context, in *s3.PutBucketPolicyInput, optFns ...func(*s3.Options)) (*s3.PutBucketPolicyOutput, error)
}

// IAMAPI is the slice of the IAM client the provisioner calls.
type IAMAPI interface {
	CreateUser(ctx context.Context, in *iam.CreateUserInput, optFns ...func(*iam.Options)) (*iam.CreateUserOutput, error)
	CreatePolicy(ctx context.Context, in *iam.CreatePolicyInput, optFns ...func(*iam.Options)) (*iam.CreatePolicyOutput, error)
	AttachUserPolicy(ctx context.Context, in *iam.AttachUserPolicyInput, optFns ...func(*iam.Options)) (*iam.AttachUserPolicyOutput, error)
	CreateAccessKey(ctx context.Context, in *iam.CreateAccessKeyInput, optFns ...func(*iam.Options)) (*iam.CreateAccessKeyOutput, error)
}

var (
	_ S3API  = (*s3.Client)(nil)
	_ IAMAPI = (*iam.Client)(nil)
)

// ClientFactory hands out service clients for a resolved region.
type ClientFactory interface {
	S3(ctx context.Context, region string) (S3API, error)
	IAM(ctx context.Context, region string) (IAMAPI, error)
}

// sdkClients builds real SDK clients from the operator's static key pair,
// caching one per region and service.
type sdkClients struct {
	keyID  string
	secret string

	s3  map[string]*s3.Client
	iam map[string]*iam.Client
}

// NewClientFactory returns a ClientFactory backed by the AWS SDK. Credentials
// always come from env; the shared config and credentials files are never
// consulted for them.
func NewClientFactory(env config.Env) ClientFactory {
	return &sdkClients{
		keyID:  env.AccessKeyID,
		secret: env.SecretAccessKey,
		s3:     map[string]*s3.Client{},
		iam:    map[string]*iam.Client{},
	}
}

func (c *sdkClients) S3(ctx context.Context, region string) (S3API, error) {
	if client, ok := c.s3[region]; ok {
		return client, nil
	}
	cfg, err := awsx.LoadAWSConfig(ctx, awsx.DefaultOptions(region, c.keyID, c.secret)...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	client := awsx.NewS3(cfg)
	c.s3[region] = client
	return client, nil
}

func (c *sdkClients) IAM(ctx context.Context, region string) (IAMAPI, error) {
	if client, ok := c.iam[region]; ok {
		return client, nil
	}
	cfg, err := awsx.LoadAWSConfig(ctx, awsx.DefaultOptions(region, c.keyID, c.secret)...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	client := awsx.NewIAM(cfg)
	c.iam[region] = client
	return client, nil
}
