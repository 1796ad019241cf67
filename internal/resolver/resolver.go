// Copyright 2024 The llar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package resolver resolves the latest version of library coordinates and
// memoizes the answers for the lifetime of a generation run.
package resolver

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/goplus/liftoff/internal/remote"
	"github.com/goplus/liftoff/mod/module"
	"github.com/qiniu/x/log"
	"golang.org/x/sync/singleflight"
)

// VersionResolutionError reports that the latest version of a coordinate
// could not be determined.
type VersionResolutionError struct {
	Coordinate module.Coordinate
	Cause      error
}

func (e *VersionResolutionError) Error() string {
	return fmt.Sprintf("failed to resolve version of %s: %v", e.Coordinate, e.Cause)
}

func (e *VersionResolutionError) Unwrap() error {
	return e.Cause
}

// result is a memoized answer. Failures are memoized too so a run never
// queries the same coordinate twice.
type result struct {
	version string
	err     error
}

// Resolver resolves versions through an Index.
// It is safe for concurrent use.
type Resolver struct {
	name  string
	index remote.Index

	mu    sync.Mutex
	cache map[module.Coordinate]result

	group   singleflight.Group
	queries atomic.Int64
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithName sets the repository name used in log output.
func WithName(name string) Option {
	return func(r *Resolver) {
		r.name = name
	}
}

// WithSeed pre-populates the cache with known versions.
// Seeded coordinates are never queried.
func WithSeed(seed map[module.Coordinate]string) Option {
	return func(r *Resolver) {
		for c, v := range seed {
			r.cache[c] = result{version: v}
		}
	}
}

// New creates a Resolver backed by index.
func New(index remote.Index, opts ...Option) *Resolver {
	r := &Resolver{
		index: index,
		cache: make(map[module.Coordinate]result),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Resolver) lookup(c module.Coordinate) (result, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	res, ok := r.cache[c]
	return res, ok
}

// Resolve returns the latest version of c.
// The first call for a coordinate queries the index; concurrent callers for
// the same coordinate wait for that single query. Later calls return the
// memoized answer. Failures are returned as *VersionResolutionError.
func (r *Resolver) Resolve(ctx context.Context, c module.Coordinate) (string, error) {
	if res, ok := r.lookup(c); ok {
		return res.version, res.err
	}

	v, err, _ := r.group.Do(c.String(), func() (any, error) {
		// The previous flight may have finished between lookup and Do.
		if res, ok := r.lookup(c); ok {
			return res.version, res.err
		}

		r.queries.Add(1)
		log.Debugf("resolver %s: querying latest version of %s", r.name, c)
		version, err := r.index.Latest(ctx, c)
		if err == nil && version == "" {
			err = fmt.Errorf("empty version")
		}
		res := result{version: version}
		if err != nil {
			res = result{err: &VersionResolutionError{Coordinate: c, Cause: err}}
		} else {
			log.Debugf("resolver %s: %s -> %s", r.name, c, version)
		}

		r.mu.Lock()
		r.cache[c] = res
		r.mu.Unlock()
		return res.version, res.err
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// Queries returns the number of index queries performed so far.
func (r *Resolver) Queries() int {
	return int(r.queries.Load())
}

// Snapshot returns the successfully resolved versions.
func (r *Resolver) Snapshot() map[module.Coordinate]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	snap := make(map[module.Coordinate]string, len(r.cache))
	for c, res := range r.cache {
		if res.err == nil {
			snap[c] = res.version
		}
	}
	return snap
}
