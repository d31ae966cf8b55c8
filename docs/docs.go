// Package docs holds the OpenAPI document of the swift-codes REST API.
//
// The document is maintained by hand next to the router and embedded in the
// server binary, which serves it at /v1/openapi.yaml and behind the Swagger
// UI at /swagger/.
package docs

import _ "embed"

// OpenAPISpec contains the OpenAPI document embedded for runtime serving.
//
//go:embed openapi.yaml
var OpenAPISpec []byte
