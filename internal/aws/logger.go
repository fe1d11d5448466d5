// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package aws

import (
	"fmt"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/smithy-go/logging"

	"github.com/tfctl/bucketctl/internal/log"
)

// sdkLogger adapts the package logger to smithy's logging.Logger so SDK
// messages share the application's format and level.
type sdkLogger struct{}

// NewSDKLogger returns a logging.Logger that writes through internal/log.
func NewSDKLogger() logging.Logger {
	return sdkLogger{}
}

func (sdkLogger) Logf(c logging.Classification, format string, v ...interface{}) {
	msg := fmt.Sprintf(format, v...)
	switch c {
	case logging.Warn:
		log.Warnf("aws: %s", msg)
	default:
		log.Tracef("aws: %s", msg)
	}
}

// DefaultOptions returns the options every bucketctl client is built with:
// the explicit key pair, the SDK log bridge and, when tracing, retry and
// request logging.
func DefaultOptions(region, keyID, secret string) []Option {
	opts := []Option{
		WithRegion(region),
		WithStaticCredentials(keyID, secret),
		WithLogger(NewSDKLogger()),
	}
	if log.TraceEnabled() {
		opts = append(opts, WithClientLogMode(awsv2.LogRetries|awsv2.LogRequest))
	}
	return opts
}
