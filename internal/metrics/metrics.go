// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package metrics holds the Prometheus collectors updated while decoding dataset images.
//
// They are registered with the default registry, so any binary that serves
// promhttp.Handler() exposes them.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ImagesDecodedTotal counts images successfully decoded from disk.
	ImagesDecodedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sketchdata_images_decoded_total",
		Help: "Total number of images decoded from disk",
	})

	// ImageDecodeErrorsTotal counts failed decodes, including files that could not be opened.
	ImageDecodeErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sketchdata_image_decode_errors_total",
		Help: "Total number of images that failed to open or decode",
	})

	// ImageDecodeSeconds observes the latency of each decode.
	ImageDecodeSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "sketchdata_image_decode_seconds",
		Help:    "Time spent opening and decoding one image",
		Buckets: prometheus.ExponentialBuckets(0.0005, 2, 14),
	})

	// SamplesIndexed is the number of samples collected by the last folder dataset built.
	SamplesIndexed = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "sketchdata_samples_indexed",
		Help: "Number of image samples indexed by the most recently built folder dataset",
	})
)

// ObserveDecode records the outcome of one decode that started at start.
func ObserveDecode(start time.Time, err error) {
	ImageDecodeSeconds.Observe(time.Since(start).Seconds())
	if err != nil {
		ImageDecodeErrorsTotal.Inc()
		return
	}
	ImagesDecodedTotal.Inc()
}
