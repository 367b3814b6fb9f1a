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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Collection scan metrics
	scanDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "modcheck_collection_scan_duration_seconds",
			Help:    "Time taken to scan a complete mod collection",
			Buckets: []float64{0.1, 0.5, 1, 5, 10, 30, 60, 120},
		},
	)

	scanTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "modcheck_collection_scan_total",
			Help: "Total number of collection scan attempts",
		},
		[]string{"status"}, // success or error
	)

	scanPackages = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "modcheck_collection_packages",
			Help: "Number of packages in the last scanned collection",
		},
	)

	scanBroken = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "modcheck_collection_broken_packages",
			Help: "Number of unusable packages in the last scanned collection",
		},
	)
)
