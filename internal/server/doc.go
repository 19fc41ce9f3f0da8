// Package server exposes the gradient-overlay pipeline over HTTP.
//
// Routes:
//
//	GET /image    - fetch a remote image, blend a gradient overlay onto it,
//	                return the result as PNG
//	GET /palette  - fetch a remote image, return its dominant colors as JSON
//	GET /healthz  - liveness probe
//
// # Request Lifecycle
//
// Each request runs a fresh, stateless pipeline:
//
//	validate params -> fetch -> decode -> extract color -> build overlay
//	-> composite -> encode -> respond
//
// All query parameters are validated before any network I/O, so malformed
// requests never trigger a fetch. A failure at any stage aborts the request;
// there are no internal retries and no partial image is ever returned.
//
// # Error Responses
//
// Failures map to a JSON body {"error": kind, "message": detail} with
// status 400 for invalid parameters, 422 for unprocessable images, 502 for
// upstream fetch/decode failures, and 500 for internal errors.
package server
