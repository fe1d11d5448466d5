// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package policy

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	doc := Default("my-app-assets")

	assert.Equal(t, Version, doc.Version)
	require.Len(t, doc.Statement, 1)
	assert.Equal(t, "Allow", doc.Statement[0].Effect)
	assert.Equal(t, []string{"s3:PutObject", "s3:GetObject"}, doc.Statement[0].Action)
	assert.Equal(t, []string{"arn:aws:s3:::my-app-assets/*"}, doc.Statement[0].Resource)
	assert.NoError(t, Validate([]byte(doc.String())))
}

func TestPublicRead(t *testing.T) {
	doc := PublicRead("my-app-assets")

	require.Len(t, doc.Statement, 1)
	s := doc.Statement[0]
	assert.Equal(t, "*", s.Principal)
	assert.Equal(t, []string{"s3:GetObject"}, s.Action)
	assert.Equal(t, []string{"arn:aws:s3:::my-app-assets/public/*"}, s.Resource)
	assert.NotContains(t, s.Resource, BucketARN("my-app-assets"))
	assert.NotContains(t, s.Resource, ObjectsARN("my-app-assets"))

	// Principal must serialize as the bare "*" string.
	var raw map[string]any
	require.NoError(t, json.Unmarshal([]byte(doc.String()), &raw))
	stmt := raw["Statement"].([]any)[0].(map[string]any)
	assert.Equal(t, "*", stmt["Principal"])
}

func TestSkeleton(t *testing.T) {
	doc := Skeleton("assets")

	raw := doc.String()
	assert.JSONEq(t, `{
		"Version": "2012-10-17",
		"Statement": [
			{"Effect": "Allow", "Action": [], "Resource": ["arn:aws:s3:::assets/*"]}
		]
	}`, raw)

	// The untouched skeleton is not a usable policy.
	err := Validate([]byte(raw))
	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, []string{"Statement[0].Action must contain at least one entry"}, schemaErr.Problems)
}

func TestNamesAndARNs(t *testing.T) {
	assert.Equal(t, "default-my-app-assets-policy", DefaultName("my-app-assets"))
	assert.Equal(t,
		"arn:aws:iam::123456789012:policy/default-my-app-assets-policy",
		ARN("123456789012", DefaultName("my-app-assets")),
	)
	assert.Equal(t, "arn:aws:s3:::b", BucketARN("b"))
}

func TestWriteFileReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom-bucket-policy.json")

	require.NoError(t, WriteFile(path, Default("assets")))
	data, err := ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, Default("assets").String(), string(data))

	require.NoError(t, WriteFile(path, Skeleton("assets")))
	_, err = ReadFile(path)
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))
	_, err = ReadFile(path)
	assert.ErrorIs(t, err, ErrInvalidJSON)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
