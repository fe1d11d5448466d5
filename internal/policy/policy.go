// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package policy

import (
	"encoding/json"
	"fmt"
	"os"
)

// Version is the only policy language version accepted.
const Version = "2012-10-17"

// Document is an IAM or bucket policy document.
type Document struct {
	Version   string      `json:"Version"`
	Statement []Statement `json:"Statement"`
}

// Statement is one entry of a Document's Statement list. Principal is only
// set on resource policies.
type Statement struct {
	Sid       string   `json:"Sid,omitempty"`
	Effect    string   `json:"Effect"`
	Principal string   `json:"Principal,omitempty"`
	Action    []string `json:"Action"`
	Resource  []string `json:"Resource"`
}

// String renders the document as indented JSON.
func (d Document) String() string {
	b, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		// Document holds only strings and slices of strings.
		panic(err)
	}
	return string(b)
}

// BucketARN returns the ARN of the bucket itself.
func BucketARN(bucket string) string {
	return "arn:aws:s3:::" + bucket
}

// ObjectsARN returns the ARN matching every object in bucket.
func ObjectsARN(bucket string) string {
	return BucketARN(bucket) + "/*"
}

// PublicObjectsARN returns the ARN matching objects under the public/ prefix.
func PublicObjectsARN(bucket string) string {
	return BucketARN(bucket) + "/public/*"
}

// DefaultName is the name the default IAM policy for bucket is registered
// under.
func DefaultName(bucket string) string {
	return fmt.Sprintf("default-%s-policy", bucket)
}

// ARN returns the managed policy ARN for name in accountID.
func ARN(accountID, name string) string {
	return fmt.Sprintf("arn:aws:iam::%s:policy/%s", accountID, name)
}

// Default grants read and write on every object in bucket.
func Default(bucket string) Document {
	return Document{
		Version: Version,
		Statement: []Statement{
			{
				Effect:   "Allow",
				Action:   []string{"s3:PutObject", "s3:GetObject"},
				Resource: []string{ObjectsARN(bucket)},
			},
		},
	}
}

// PublicRead grants anonymous read on the public/ prefix of bucket and
// nothing else.
func PublicRead(bucket string) Document {
	return Document{
		Version: Version,
		Statement: []Statement{
			{
				Sid:       "PublicReadGetObject",
				Effect:    "Allow",
				Principal: "*",
				Action:    []string{"s3:GetObject"},
				Resource:  []string{PublicObjectsARN(bucket)},
			},
		},
	}
}

// Skeleton is the starting point handed to the operator for a custom policy.
// Action is left empty and therefore fails validation until filled in.
func Skeleton(bucket string) Document {
	return Document{
		Version: Version,
		Statement: []Statement{
			{
				Effect:   "Allow",
				Action:   []string{},
				Resource: []string{ObjectsARN(bucket)},
			},
		},
	}
}

// WriteFile writes doc to path, replacing any existing file.
func WriteFile(path string, doc Document) error {
	if err := os.WriteFile(path, []byte(doc.String()+"\n"), 0o644); err != nil { //nolint:mnd
		return fmt.Errorf("failed to write policy file: %w", err)
	}
	return nil
}

// ReadFile reads path and validates its content. The raw bytes are returned
// unchanged so the operator's document is registered exactly as written.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read policy file: %w", err)
	}
	if err := Validate(data); err != nil {
		return nil, err
	}
	return data, nil
}
