// Animerec - Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

/*
Package middleware provides HTTP middleware in the http.HandlerFunc style.

Key Components:

  - RequestID: X-Request-ID propagation into the logging context
  - PrometheusMetrics: request count, latency and in-flight gauge by chi route pattern
  - Compression: gzip for clients that send Accept-Encoding: gzip

The API router adapts these to chi with a small wrapper:

	func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	    return func(next http.Handler) http.Handler { return mw(next.ServeHTTP) }
	}

PrometheusMetrics must run inside a chi router so that the route pattern is
known when the handler returns; outside one, requests are labelled "unmatched".
*/
package middleware
