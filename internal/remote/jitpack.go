// Copyright 2024 The llar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/goplus/liftoff/mod/module"
)

// jitpackIndex implements Index using the JitPack builds API.
type jitpackIndex struct {
	endpoint   string
	httpClient *http.Client
}

// Latest returns the version of the latest successful JitPack build.
func (j *jitpackIndex) Latest(ctx context.Context, c module.Coordinate) (string, error) {
	url := fmt.Sprintf("%s/api/builds/%s/%s/latestOk", j.endpoint, c.Group, c.Artifact)
	body, err := get(ctx, j.httpClient, url)
	if err != nil {
		return "", err
	}

	var build struct {
		Version string `json:"version"`
	}
	if err := json.Unmarshal(body, &build); err != nil {
		return "", fmt.Errorf("parse jitpack response: %w", err)
	}
	version := strings.TrimSpace(build.Version)
	if version == "" {
		return "", fmt.Errorf("no version in jitpack response")
	}
	return version, nil
}
