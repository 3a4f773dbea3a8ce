// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package aws

import (
	"testing"

	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func apply(opts ...Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func TestOptions(t *testing.T) {
	tests := []struct {
		name     string
		opts     []Option
		expected options
	}{
		{"none", nil, options{}},
		{"profile", []Option{WithProfile("reports")}, options{profile: "reports"}},
		{"region", []Option{WithRegion("eu-central-1")}, options{region: "eu-central-1"}},
		{
			"all",
			[]Option{WithProfile("p"), WithRegion("r"), WithEndpoint("http://minio:9000")},
			options{profile: "p", region: "r", endpoint: "http://minio:9000"},
		},
		{"last wins", []Option{WithRegion("a"), WithRegion("b")}, options{region: "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, apply(tt.opts...))
		})
	}
}

func TestLoadOptions(t *testing.T) {
	assert.Empty(t, apply().loadOptions())
	assert.Len(t, apply(WithProfile("p")).loadOptions(), 1)
	assert.Len(t, apply(WithProfile("p"), WithRegion("r")).loadOptions(), 2)
}

func TestS3OptionsEndpoint(t *testing.T) {
	assert.Empty(t, apply().s3Options())

	fns := apply(WithEndpoint("http://minio:9000")).s3Options()
	require.Len(t, fns, 1)

	var so s3v2.Options
	fns[0](&so)
	require.NotNil(t, so.BaseEndpoint)
	assert.Equal(t, "http://minio:9000", *so.BaseEndpoint)
	assert.True(t, so.UsePathStyle)
}
