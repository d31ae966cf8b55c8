package http

import (
	"net/http"

	"github.com/MKhiriev/go-swift-codes/docs"
)

func (h *Handler) getOpenAPISpec(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	w.Write(docs.OpenAPISpec)
}
