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

package inspect

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Inspection pipeline metrics
	inspectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "modcheck_inspections_total",
			Help: "Total number of package inspections by outcome",
		},
		[]string{"status"},
	)

	inspectionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "modcheck_inspection_duration_seconds",
			Help:    "Duration of a single package inspection in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30},
		},
	)

	inspectionIssues = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "modcheck_inspection_issues",
			Help:    "Number of issues recorded per inspected package",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50},
		},
	)
)
