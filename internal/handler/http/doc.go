// Package http implements the REST transport of the swift-codes service.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as panic recovery, request tracing, access logging, response
// compression, request timeouts and bearer authentication of the mutating
// routes are handled in this package before requests are delegated to the
// service layer.
package http
