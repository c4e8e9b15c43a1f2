// Animerec - Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

/*
Package api provides the HTTP surface of the recommendation service.

Routes (all GET):

	/api/v1/health/live       liveness probe
	/api/v1/health/ready      readiness probe, 503 until the catalog is loaded
	/api/v1/recommendations   ?q=<title>, recommendation outcome
	/api/v1/popular           popular panel
	/metrics                  Prometheus exposition
	/swagger/*                Swagger UI

Every JSON body uses the models.APIResponse envelope. A blank or unmatched
title is reported in the outcome field of a 200 response, not as an HTTP
error; 400 is reserved for queries that fail validation.

Middleware order: request ID, real IP, panic recovery and CORS apply
globally. Security headers, Prometheus instrumentation and gzip apply to
/api/v1.
*/
package api
