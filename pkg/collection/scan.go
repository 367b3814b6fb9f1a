// Copyright (c) 2025, FSG Modding.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package collection

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsgmodding/modcheck/pkg/defaults"
	"github.com/fsgmodding/modcheck/pkg/header"
	"github.com/fsgmodding/modcheck/pkg/inspect"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Option configures a Scanner.
type Option func(*Scanner)

// Scanner inspects every package in a collection folder in parallel and
// assembles the results into a single Report.
type Scanner struct {
	inspector   *inspect.Inspector
	name        string
	concurrency int
}

// NewScanner creates a Scanner with the given options. Without options
// it uses a default inspector, the folder base name as the collection
// name, and the default scan concurrency.
func NewScanner(opts ...Option) *Scanner {
	s := &Scanner{
		concurrency: defaults.ScanConcurrency,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.inspector == nil {
		s.inspector = inspect.New()
	}
	return s
}

// WithInspector sets the inspector used for each package.
func WithInspector(ins *inspect.Inspector) Option {
	return func(s *Scanner) {
		s.inspector = ins
	}
}

// WithName overrides the collection name recorded in the report.
func WithName(name string) Option {
	return func(s *Scanner) {
		s.name = name
	}
}

// WithConcurrency sets how many packages are inspected in parallel.
// Values below one are ignored.
func WithConcurrency(n int) Option {
	return func(s *Scanner) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// Scan inspects every package directly under root and returns the
// collection report. Individual package problems never fail the scan;
// they surface as issues on the package's record. Scan fails only when
// the root itself is unreadable or the context is canceled.
func (s *Scanner) Scan(ctx context.Context, root string) (*Report, error) {
	info, err := os.Stat(root)
	if err != nil {
		scanTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to read collection root %s: %w", root, err)
	}
	if !info.IsDir() {
		scanTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("collection root %s is not a directory", root)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		scanTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to list collection root %s: %w", root, err)
	}

	start := time.Now()
	defer func() {
		scanDuration.Observe(time.Since(start).Seconds())
	}()

	name := s.name
	if name == "" {
		name = filepath.Base(root)
	}

	slog.Debug("starting collection scan",
		slog.String("name", name),
		slog.String("root", root),
		slog.Int("concurrency", s.concurrency),
	)

	rep := NewReport(name, root)
	rep.Init(header.KindCollectionReport, s.inspector.Version())
	rep.RunID = uuid.NewString()

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for _, entry := range entries {
		// Dotfiles are never mod packages.
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		path := filepath.Join(root, entry.Name())
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rec := s.inspector.Inspect(gctx, path)
			mu.Lock()
			rep.Mods = append(rep.Mods, rec)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		scanTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("collection scan of %s aborted: %w", root, err)
	}

	// Deterministic output regardless of inspection completion order.
	// Short names can collide (a zip next to a folder of the same
	// name), so the full path breaks ties.
	sort.Slice(rep.Mods, func(i, j int) bool {
		a, b := rep.Mods[i].FileDetail, rep.Mods[j].FileDetail
		if a.ShortName != b.ShortName {
			return a.ShortName < b.ShortName
		}
		return a.FullPath < b.FullPath
	})

	for _, rec := range rep.Mods {
		if rec.CanNotUse {
			rep.BrokenCount++
		}
		rep.IssueCount += rec.Issues.Len()
	}
	rep.Duration = time.Since(start).Round(time.Millisecond).String()

	scanTotal.WithLabelValues("success").Inc()
	scanPackages.Set(float64(len(rep.Mods)))
	scanBroken.Set(float64(rep.BrokenCount))

	slog.Debug("collection scan complete",
		slog.String("name", name),
		slog.Int("packages", len(rep.Mods)),
		slog.Int("broken", rep.BrokenCount),
		slog.Int("issues", rep.IssueCount),
	)

	return rep, nil
}
