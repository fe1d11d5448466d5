// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package provisiontest provides in-memory S3 and IAM clients that record
// every call and reject duplicates the way the real services do.
package provisiontest

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	iamtypes "github.com/aws/aws-sdk-go-v2/service/iam/types"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"

	"github.com/tfctl/bucketctl/internal/provision"
)

// Call records one API call and the region of the client it was made on.
type Call struct {
	Op     string
	Region string
	Input  any
}

// Factory is a provision.ClientFactory over a shared call log.
type Factory struct {
	AccountID string
	Now       time.Time

	// Fail maps an operation name to the error it returns.
	Fail map[string]error

	Calls []Call

	buckets  map[string]bool
	users    map[string]bool
	policies map[string]bool
	keys     map[string]int
}

var _ provision.ClientFactory = (*Factory)(nil)

// NewFactory returns an empty Factory for accountID.
func NewFactory(accountID string) *Factory {
	return &Factory{
		AccountID: accountID,
		Now:       time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Fail:      map[string]error{},
		buckets:   map[string]bool{},
		users:     map[string]bool{},
		policies:  map[string]bool{},
		keys:      map[string]int{},
	}
}

// Ops lists the operation names called so far, in order.
func (f *Factory) Ops() []string {
	ops := make([]string, 0, len(f.Calls))
	for _, c := range f.Calls {
		ops = append(ops, c.Op)
	}
	return ops
}

// Input returns the input of the first call to op, or nil.
func (f *Factory) Input(op string) any {
	for _, c := range f.Calls {
		if c.Op == op {
			return c.Input
		}
	}
	return nil
}

func (f *Factory) S3(_ context.Context, region string) (provision.S3API, error) {
	return &fakeS3{f: f, region: region}, nil
}

func (f *Factory) IAM(_ context.Context, region string) (provision.IAMAPI, error) {
	return &fakeIAM{f: f, region: region}, nil
}

func (f *Factory) record(op, region string, in any) error {
	f.Calls = append(f.Calls, Call{Op: op, Region: region, Input: in})
	return f.Fail[op]
}

// APIError builds the smithy error the services return.
func APIError(code, format string, args ...any) error {
	return &smithy.GenericAPIError{Code: code, Message: fmt.Sprintf(format, args...), Fault: smithy.FaultClient}
}

type fakeS3 struct {
	f      *Factory
	region string
}

func (c *fakeS3) CreateBucket(_ context.Context, in *s3.CreateBucketInput, _ ...func(*s3.Options)) (*s3.CreateBucketOutput, error) {
	if err := c.f.record("CreateBucket", c.region, in); err != nil {
		return nil, err
	}
	name := aws.ToString(in.Bucket)
	if c.f.buckets[name] {
		return nil, APIError("BucketAlreadyOwnedByYou", "bucket %s already exists", name)
	}
	c.f.buckets[name] = true
	return &s3.CreateBucketOutput{Location: aws.String("/" + name)}, nil
}

func (c *fakeS3) PutBucketCors(_ context.Context, in *s3.PutBucketCorsInput, _ ...func(*s3.Options)) (*s3.PutBucketCorsOutput, error) {
	if err := c.f.record("PutBucketCors", c.region, in); err != nil {
		return nil, err
	}
	return &s3.PutBucketCorsOutput{}, nil
}

func (c *fakeS3) PutPublicAccessBlock(_ context.Context, in *s3.PutPublicAccessBlockInput, _ ...func(*s3.Options)) (*s3.PutPublicAccessBlockOutput, error) {
	if err := c.f.record("PutPublicAccessBlock", c.region, in); err != nil {
		return nil, err
	}
	return &s3.PutPublicAccessBlockOutput{}, nil
}

func (c *fakeS3) PutBucketPolicy(_ context.Context, in *s3.PutBucketPolicyInput, _ ...func(*s3.Options)) (*s3.PutBucketPolicyOutput, error) {
	if err := c.f.record("PutBucketPolicy", c.region, in); err != nil {
		return nil, err
	}
	return &s3.PutBucketPolicyOutput{}, nil
}

type fakeIAM struct {
	f      *Factory
	region string
}

func (c *fakeIAM) CreateUser(_ context.Context, in *iam.CreateUserInput, _ ...func(*iam.Options)) (*iam.CreateUserOutput, error) {
	if err := c.f.record("CreateUser", c.region, in); err != nil {
		return nil, err
	}
	name := aws.ToString(in.UserName)
	if c.f.users[name] {
		return nil, APIError("EntityAlreadyExists", "User with name %s already exists.", name)
	}
	c.f.users[name] = true
	return &iam.CreateUserOutput{User: &iamtypes.User{UserName: in.UserName}}, nil
}

func (c *fakeIAM) CreatePolicy(_ context.Context, in *iam.CreatePolicyInput, _ ...func(*iam.Options)) (*iam.CreatePolicyOutput, error) {
	if err := c.f.record("CreatePolicy", c.region, in); err != nil {
		return nil, err
	}
	name := aws.ToString(in.PolicyName)
	if c.f.policies[name] {
		return nil, APIError("EntityAlreadyExists", "A policy called %s already exists.", name)
	}
	c.f.policies[name] = true
	arn := fmt.Sprintf("arn:aws:iam::%s:policy/%s", c.f.AccountID, name)
	return &iam.CreatePolicyOutput{Policy: &iamtypes.Policy{Arn: aws.String(arn), PolicyName: in.PolicyName}}, nil
}

func (c *fakeIAM) AttachUserPolicy(_ context.Context, in *iam.AttachUserPolicyInput, _ ...func(*iam.Options)) (*iam.AttachUserPolicyOutput, error) {
	if err := c.f.record("AttachUserPolicy", c.region, in); err != nil {
		return nil, err
	}
	if !c.f.users[aws.ToString(in.UserName)] {
		return nil, APIError("NoSuchEntity", "The user with name %s cannot be found.", aws.ToString(in.UserName))
	}
	return &iam.AttachUserPolicyOutput{}, nil
}

func (c *fakeIAM) CreateAccessKey(_ context.Context, in *iam.CreateAccessKeyInput, _ ...func(*iam.Options)) (*iam.CreateAccessKeyOutput, error) {
	if err := c.f.record("CreateAccessKey", c.region, in); err != nil {
		return nil, err
	}
	name := aws.ToString(in.UserName)
	if c.f.keys[name] >= 2 {
		return nil, APIError("LimitExceeded", "Cannot exceed quota for AccessKeysPerUser: 2")
	}
	c.f.keys[name]++
	n := c.f.keys[name]
	return &iam.CreateAccessKeyOutput{
		AccessKey: &iamtypes.AccessKey{
			AccessKeyId:     aws.String(fmt.Sprintf("AKIAFAKE%s%d", name, n)),
			SecretAccessKey: aws.String(fmt.Sprintf("secret-%s-%d", name, n)),
			UserName:        in.UserName,
			Status:          iamtypes.StatusTypeActive,
			CreateDate:      aws.Time(c.f.Now),
		},
	}, nil
}
