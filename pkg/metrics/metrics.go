// Copyright 2023 Intel Corporation. All Rights Reserved.
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

// Package metrics exposes the pinned resident set to Prometheus.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	logger "github.com/intel/memlockd/pkg/log"
)

// PrometheusMetricsPath is the URL path for exposing metrics to Prometheus.
const PrometheusMetricsPath = "/metrics"

var log = logger.NewLogger("metrics")

// ResidentSet is the view of the pinned files the collector exports.
// The registry is frozen once setup has finished, so the collector can
// read it without locking.
type ResidentSet interface {
	CurrentSize() int64
	Len() int
}

// collector exports the resident set as prometheus metrics.
type collector struct {
	resident    ResidentSet
	lockedBytes *prometheus.Desc
	lockedFiles *prometheus.Desc
}

// NewCollector creates a prometheus collector for the resident set.
func NewCollector(resident ResidentSet) prometheus.Collector {
	return &collector{
		resident: resident,
		lockedBytes: prometheus.NewDesc(
			"memlockd_locked_bytes",
			"Total bytes of file data pinned in physical memory.",
			nil, nil,
		),
		lockedFiles: prometheus.NewDesc(
			"memlockd_locked_files",
			"Number of files pinned in physical memory.",
			nil, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.lockedBytes
	ch <- c.lockedFiles
}

// Collect implements prometheus.Collector.
func (c *collector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(c.lockedBytes, prometheus.GaugeValue,
		float64(c.resident.CurrentSize()))
	ch <- prometheus.MustNewConstMetric(c.lockedFiles, prometheus.GaugeValue,
		float64(c.resident.Len()))
}

// Serve registers a collector for the resident set and starts serving
// metrics over HTTP on the given address.
func Serve(address string, resident ResidentSet) error {
	reg := prometheus.NewPedanticRegistry()
	if err := reg.Register(NewCollector(resident)); err != nil {
		return err
	}

	mux := http.NewServeMux()
	mux.Handle(PrometheusMetricsPath, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	srv := &http.Server{Addr: address, Handler: mux}

	log.Info("serving metrics on %s%s", address, PrometheusMetricsPath)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("metrics server failed: %v", err)
		}
	}()

	return nil
}
