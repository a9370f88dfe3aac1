// Package server exposes the demo catalog and the placement engine over HTTP.
//
// The API is a small chi router in front of a [pipeline.Runner], so renders
// served over HTTP share the cache, validation and logging the CLI uses.
//
// # Routes
//
//	GET  /healthz                          liveness and build version
//	GET  /api/v1/demos                     list demos (?category=views)
//	GET  /api/v1/demos/{id}                one demo's metadata
//	GET  /api/v1/demos/{id}/render         render a demo (?format=svg|png|json)
//	POST /api/v1/place                     place a label, returns its frame
//	GET  /api/v1/catalog.{format}          registry diagram (svg, png or dot)
//
// Every response carries an X-Request-ID header. A valid UUID sent by the
// client is echoed back; anything else is replaced with a fresh one.
//
// Errors are JSON bodies of the form
//
//	{"error": true, "code": "DEMO_NOT_FOUND", "message": "...", "request_id": "..."}
//
// with the status taken from [errors.HTTPStatus].
//
// [pipeline.Runner]: github.com/matzehuels/uithings/pkg/pipeline.Runner
// [errors.HTTPStatus]: github.com/matzehuels/uithings/pkg/errors.HTTPStatus
package server
