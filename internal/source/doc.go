// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package source opens report locations. A location is a local path, "-" for
// stdin, or an s3://bucket/key URI. S3 objects are cached on disk keyed by
// their ETag.
package source
