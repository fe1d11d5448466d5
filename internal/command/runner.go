// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"io"

	"github.com/tfctl/bucketctl/internal/editor"
	"github.com/tfctl/bucketctl/internal/envfile"
	"github.com/tfctl/bucketctl/internal/log"
	"github.com/tfctl/bucketctl/internal/meta"
	"github.com/tfctl/bucketctl/internal/output"
	"github.com/tfctl/bucketctl/internal/policy"
	"github.com/tfctl/bucketctl/internal/prompt"
	"github.com/tfctl/bucketctl/internal/provision"
)

// ErrMissingPolicyName is returned when a custom policy was chosen but no
// policy name was captured. Nothing has been provisioned at that point.
var ErrMissingPolicyName = errors.New("custom policy selected but no policy name was given")

// ErrMissingPolicyFile is returned when a custom policy was chosen but no
// accepted policy file was captured.
var ErrMissingPolicyFile = errors.New("custom policy selected but no policy file was accepted")

// deps are the side-effecting collaborators of a run.
type deps struct {
	prompter   prompt.Prompter
	clients    provision.ClientFactory
	editorOpts []editor.Option
	out        io.Writer
}

// plan is everything gathered before the first AWS call.
type plan struct {
	prompt.Answers
	PolicyName string
	PolicyFile string
}

// validate checks invariants that must hold before provisioning starts.
func (p plan) validate() error {
	if p.DefaultPolicy {
		return nil
	}
	if p.PolicyName == "" {
		return ErrMissingPolicyName
	}
	if p.PolicyFile == "" {
		return ErrMissingPolicyFile
	}
	return nil
}

type runner struct {
	meta     meta.Meta
	settings settings
	deps     deps
	prov     *provision.Provisioner
}

func newRunner(m meta.Meta, s settings, d deps) *runner {
	return &runner{
		meta:     m,
		settings: s,
		deps:     d,
		prov:     provision.New(d.clients, m.Env),
	}
}

// Run collects answers, provisions every resource in order and writes the
// credentials file. The first error ends the run; nothing already created is
// removed.
func (r *runner) Run(ctx context.Context) error {
	p, err := r.collect(ctx)
	if err != nil {
		return err
	}
	if err := p.validate(); err != nil {
		return err
	}

	region, err := r.prov.Region(p.Region)
	if err != nil {
		return err
	}

	summary, err := r.provision(ctx, p, region)
	if err != nil {
		return err
	}

	output.Render(r.deps.out, summary, r.settings.Color)
	return nil
}

func (r *runner) collect(ctx context.Context) (plan, error) {
	collector := prompt.NewCollector(r.deps.prompter, prompt.Defaults{
		AppURL: r.settings.AppURL,
		Region: r.meta.Env.DefaultRegion,
	})

	answers, err := collector.Collect(ctx)
	if err != nil {
		return plan{}, err
	}
	p := plan{Answers: answers}
	log.Debugf("answers: %+v", answers)

	if answers.DefaultPolicy {
		return p, nil
	}

	if p.PolicyName, err = collector.PolicyName(ctx); err != nil {
		return plan{}, err
	}

	ed := editor.New(r.deps.prompter, r.meta.WorkDir, r.deps.editorOpts...)
	if p.PolicyFile, err = ed.Edit(ctx, answers.BucketName); err != nil {
		return plan{}, err
	}
	return p, nil
}

func (r *runner) provision(ctx context.Context, p plan, region string) (output.Summary, error) {
	s := output.Summary{
		Bucket:     p.BucketName,
		Region:     region,
		AppURL:     p.AppURL,
		Username:   p.Username,
		PolicyFile: p.PolicyFile,
	}

	if err := step("create bucket "+p.BucketName, func() error {
		return r.prov.CreateBucket(ctx, p.BucketName, region)
	}); err != nil {
		return s, err
	}

	if err := step("attach CORS for "+p.AppURL, func() error {
		return r.prov.AttachCORS(ctx, p.BucketName, region, provision.CORSRules(p.AppURL))
	}); err != nil {
		return s, err
	}

	if p.AllowPublicRead {
		if err := step("attach public read policy", func() error {
			return r.prov.AttachPublicReadPolicy(ctx, p.BucketName, region)
		}); err != nil {
			return s, err
		}
		s.PublicRead = policy.PublicObjectsARN(p.BucketName)
	}

	if err := step("create user "+p.Username, func() error {
		return r.prov.CreateUser(ctx, p.Username, region)
	}); err != nil {
		return s, err
	}

	var err error
	if p.DefaultPolicy {
		err = step("create default policy", func() error {
			arn, err := r.prov.CreateDefaultPolicy(ctx, p.BucketName, region)
			s.PolicyARN = arn
			return err
		})
	} else {
		err = step("create policy "+p.PolicyName, func() error {
			doc, err := policy.ReadFile(p.PolicyFile)
			if err != nil {
				return err
			}
			arn, err := r.prov.CreatePolicy(ctx, p.PolicyName, string(doc), region)
			s.PolicyARN = arn
			return err
		})
	}
	if err != nil {
		return s, err
	}

	if err := step("attach policy to "+p.Username, func() error {
		return r.prov.AttachUserPolicy(ctx, p.Username, s.PolicyARN, region)
	}); err != nil {
		return s, err
	}

	var key provision.AccessKey
	if err := step("create access key", func() error {
		var err error
		key, err = r.prov.CreateAccessKey(ctx, p.Username, region)
		return err
	}); err != nil {
		return s, err
	}
	s.AccessKeyID = key.AccessKeyID
	s.KeyCreated = key.CreateDate

	path, err := envfile.Write(r.meta.WorkDir, envfile.Credentials{
		AccessKeyID:     key.AccessKeyID,
		SecretAccessKey: key.SecretAccessKey,
		BucketName:      p.BucketName,
		Region:          region,
	})
	if err != nil {
		return s, err
	}
	log.Infof("wrote credentials to %s", path)
	s.EnvFile = path

	return s, nil
}

// step logs desc, runs fn and records the AWS error code of a failure.
func step(desc string, fn func() error) error {
	log.Infof("%s", desc)
	if err := fn(); err != nil {
		if code := provision.ErrorCode(err); code != "" {
			log.Errorf("%s failed: code=%s", desc, code)
		} else {
			log.Debugf("%s failed: err=%v", desc, err)
		}
		return err
	}
	return nil
}
