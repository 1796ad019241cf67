// Copyright 2024 The llar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resolver

import (
	"context"
	"sync/atomic"

	"github.com/goplus/liftoff/mod/module"
)

// mockIndex implements remote.Index for unit testing.
type mockIndex struct {
	latestFunc func(ctx context.Context, c module.Coordinate) (string, error)
	calls      atomic.Int64
}

func (m *mockIndex) Latest(ctx context.Context, c module.Coordinate) (string, error) {
	m.calls.Add(1)
	if m.latestFunc != nil {
		return m.latestFunc(ctx, c)
	}
	return "", nil
}
