// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package provision

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/tfctl/bucketctl/internal/config"
	"github.com/tfctl/bucketctl/internal/log"
	"github.com/tfctl/bucketctl/internal/policy"
)

// usEast1 is the one region where CreateBucket must not carry a location
// constraint.
const usEast1 = "us-east-1"

// corsMaxAge is how long browsers may cache a preflight response, in seconds.
const corsMaxAge = 3000

var (
	// ErrNoRegion is returned when neither the call nor AWS_DEFAULT_REGION
	// names a region.
	ErrNoRegion = errors.New("no region given and " + config.EnvDefaultRegion + " is not set")

	// ErrNoAccountID is returned by CreateDefaultPolicy when AWS_ACCOUNT_ID is
	// not set.
	ErrNoAccountID = errors.New(config.EnvAccountID + " must be set to use the default policy")
)

// AccessKey is a newly created IAM access key.
type AccessKey struct {
	AccessKeyID     string
	SecretAccessKey string
	UserName        string
	CreateDate      time.Time
}

// Provisioner issues one-shot AWS calls. Nothing is retried, checked for
// prior existence or rolled back.
type Provisioner struct {
	clients       ClientFactory
	defaultRegion string
	accountID     string
}

// New returns a Provisioner. env supplies the fallback region and the account
// ID used to compute default policy ARNs.
func New(clients ClientFactory, env config.Env) *Provisioner {
	return &Provisioner{
		clients:       clients,
		defaultRegion: env.DefaultRegion,
		accountID:     env.AccountID,
	}
}

// Region resolves an optional region against AWS_DEFAULT_REGION.
func (p *Provisioner) Region(region string) (string, error) {
	if region != "" {
		return region, nil
	}
	if p.defaultRegion != "" {
		return p.defaultRegion, nil
	}
	return "", ErrNoRegion
}

func (p *Provisioner) s3(ctx context.Context, region string) (S3API, string, error) {
	region, err := p.Region(region)
	if err != nil {
		return nil, "", err
	}
	client, err := p.clients.S3(ctx, region)
	return client, region, err
}

func (p *Provisioner) iam(ctx context.Context, region string) (IAMAPI, error) {
	region, err := p.Region(region)
	if err != nil {
		return nil, err
	}
	return p.clients.IAM(ctx, region)
}

// CreateBucket creates bucket name. us-east-1 is the implicit location and
// rejects an explicit constraint, so one is only sent for other regions.
func (p *Provisioner) CreateBucket(ctx context.Context, name, region string) error {
	client, region, err := p.s3(ctx, region)
	if err != nil {
		return err
	}

	in := &s3.CreateBucketInput{Bucket: aws.String(name)}
	if region != usEast1 {
		in.CreateBucketConfiguration = &types.CreateBucketConfiguration{
			LocationConstraint: types.BucketLocationConstraint(region),
		}
	}

	log.Debugf("CreateBucket: bucket=%s region=%s", name, region)
	if _, err := client.CreateBucket(ctx, in); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", name, err)
	}
	return nil
}

// CORSRules returns the single rule letting appURL read, write and delete
// objects from the browser.
func CORSRules(appURL string) []types.CORSRule {
	return []types.CORSRule{
		{
			AllowedHeaders: []string{"*"},
			AllowedMethods: []string{"GET", "PUT", "DELETE"},
			AllowedOrigins: []string{appURL},
			ExposeHeaders:  []string{},
			MaxAgeSeconds:  aws.Int32(corsMaxAge),
		},
	}
}

// AttachCORS replaces the bucket's CORS configuration with rules.
func (p *Provisioner) AttachCORS(ctx context.Context, bucket, region string, rules []types.CORSRule) error {
	client, _, err := p.s3(ctx, region)
	if err != nil {
		return err
	}

	log.Debugf("PutBucketCors: bucket=%s rules=%d", bucket, len(rules))
	_, err = client.PutBucketCors(ctx, &s3.PutBucketCorsInput{
		Bucket:            aws.String(bucket),
		CORSConfiguration: &types.CORSConfiguration{CORSRules: rules},
	})
	if err != nil {
		return fmt.Errorf("failed to attach CORS to %s: %w", bucket, err)
	}
	return nil
}

// AttachPublicReadPolicy lifts the bucket's public access block and then
// allows anonymous reads of objects under public/.
func (p *Provisioner) AttachPublicReadPolicy(ctx context.Context, bucket, region string) error {
	client, _, err := p.s3(ctx, region)
	if err != nil {
		return err
	}

	log.Debugf("PutPublicAccessBlock: bucket=%s", bucket)
	_, err = client.PutPublicAccessBlock(ctx, &s3.PutPublicAccessBlockInput{
		Bucket: aws.String(bucket),
		PublicAccessBlockConfiguration: &types.PublicAccessBlockConfiguration{
			BlockPublicAcls:       aws.Bool(false),
			BlockPublicPolicy:     aws.Bool(false),
			IgnorePublicAcls:      aws.Bool(false),
			RestrictPublicBuckets: aws.Bool(false),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to remove public access block from %s: %w", bucket, err)
	}

	doc := policy.PublicRead(bucket).String()
	log.Debugf("PutBucketPolicy: bucket=%s policy=%s", bucket, doc)
	_, err = client.PutBucketPolicy(ctx, &s3.PutBucketPolicyInput{
		Bucket: aws.String(bucket),
		Policy: aws.String(doc),
	})
	if err != nil {
		return fmt.Errorf("failed to attach public read policy to %s: %w", bucket, err)
	}
	return nil
}

// CreateUser creates an IAM user with no tags or policies.
func (p *Provisioner) CreateUser(ctx context.Context, username, region string) error {
	client, err := p.iam(ctx, region)
	if err != nil {
		return err
	}

	log.Debugf("CreateUser: user=%s", username)
	if _, err := client.CreateUser(ctx, &iam.CreateUserInput{UserName: aws.String(username)}); err != nil {
		return fmt.Errorf("failed to create user %s: %w", username, err)
	}
	return nil
}

// CreatePolicy registers a managed policy and returns its ARN as reported by
// IAM.
func (p *Provisioner) CreatePolicy(ctx context.Context, name, document, region string) (string, error) {
	client, err := p.iam(ctx, region)
	if err != nil {
		return "", err
	}

	log.Debugf("CreatePolicy: name=%s", name)
	out, err := client.CreatePolicy(ctx, &iam.CreatePolicyInput{
		PolicyName:     aws.String(name),
		PolicyDocument: aws.String(document),
	})
	if err != nil {
		return "", fmt.Errorf("failed to create policy %s: %w", name, err)
	}
	if out.Policy == nil {
		return "", nil
	}
	return aws.ToString(out.Policy.Arn), nil
}

// CreateDefaultPolicy registers the default read/write policy for bucket. The
// returned ARN is computed from AWS_ACCOUNT_ID rather than read back from
// IAM.
func (p *Provisioner) CreateDefaultPolicy(ctx context.Context, bucket, region string) (string, error) {
	if p.accountID == "" {
		return "", ErrNoAccountID
	}

	name := policy.DefaultName(bucket)
	if _, err := p.CreatePolicy(ctx, name, policy.Default(bucket).String(), region); err != nil {
		return "", err
	}
	return policy.ARN(p.accountID, name), nil
}

// AttachUserPolicy attaches policyArn to username.
func (p *Provisioner) AttachUserPolicy(ctx context.Context, username, policyArn, region string) error {
	client, err := p.iam(ctx, region)
	if err != nil {
		return err
	}

	log.Debugf("AttachUserPolicy: user=%s policy=%s", username, policyArn)
	_, err = client.AttachUserPolicy(ctx, &iam.AttachUserPolicyInput{
		UserName:  aws.String(username),
		PolicyArn: aws.String(policyArn),
	})
	if err != nil {
		return fmt.Errorf("failed to attach policy %s to %s: %w", policyArn, username, err)
	}
	return nil
}

// CreateAccessKey issues a new access key for username. IAM allows two keys
// per user; a third request fails with the API error as is.
func (p *Provisioner) CreateAccessKey(ctx context.Context, username, region string) (AccessKey, error) {
	client, err := p.iam(ctx, region)
	if err != nil {
		return AccessKey{}, err
	}

	log.Debugf("CreateAccessKey: user=%s", username)
	out, err := client.CreateAccessKey(ctx, &iam.CreateAccessKeyInput{UserName: aws.String(username)})
	if err != nil {
		return AccessKey{}, fmt.Errorf("failed to create access key for %s: %w", username, err)
	}
	if out.AccessKey == nil {
		return AccessKey{}, fmt.Errorf("failed to create access key for %s: empty response", username)
	}

	return AccessKey{
		AccessKeyID:     aws.ToString(out.AccessKey.AccessKeyId),
		SecretAccessKey: aws.ToString(out.AccessKey.SecretAccessKey),
		UserName:        aws.ToString(out.AccessKey.UserName),
		CreateDate:      aws.ToTime(out.AccessKey.CreateDate),
	}, nil
}

// ErrorCode returns the AWS error code carried by err, or "" when err did
// not come from an AWS API.
func ErrorCode(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return ""
}
