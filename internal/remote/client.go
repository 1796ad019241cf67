// Copyright 2024 The llar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package remote queries package repository indexes for the latest
// published version of a library coordinate.
package remote

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goplus/liftoff/mod/module"
)

// Repository kinds understood by NewIndex.
const (
	Maven   = "maven"
	JitPack = "jitpack"
)

// Default endpoints for the supported repository kinds.
const (
	DefaultMavenEndpoint   = "https://repo1.maven.org/maven2"
	DefaultJitPackEndpoint = "https://jitpack.io"
)

// maxBodySize bounds the size of an index response.
const maxBodySize = 4 << 20

// Index defines the interface for querying a repository index.
type Index interface {
	// Latest returns the latest published version of the coordinate.
	// The returned version is never empty when err is nil.
	Latest(ctx context.Context, c module.Coordinate) (string, error)
}

// NewIndex creates an index client for the specified repository kind.
// An empty endpoint selects the kind's default endpoint.
func NewIndex(kind, endpoint string) (Index, error) {
	httpClient := &http.Client{
		Timeout: 60 * time.Second,
	}
	switch kind {
	case Maven:
		if endpoint == "" {
			endpoint = DefaultMavenEndpoint
		}
		return &mavenIndex{endpoint: strings.TrimSuffix(endpoint, "/"), httpClient: httpClient}, nil
	case JitPack:
		if endpoint == "" {
			endpoint = DefaultJitPackEndpoint
		}
		return &jitpackIndex{endpoint: strings.TrimSuffix(endpoint, "/"), httpClient: httpClient}, nil
	default:
		return nil, fmt.Errorf("unsupported repository kind: %s", kind)
	}
}

// get issues a GET request and returns the body of a 2xx response.
func get(ctx context.Context, httpClient *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("not found: %s", url)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, url)
	}

	return io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
}
