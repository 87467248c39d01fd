package http

import (
	"net/http"

	"github.com/orgdeskhq/orgdesk/pkg/httpx"
	"github.com/orgdeskhq/orgdesk/pkg/orgsdk"
)

// writeError emits the standard error body. The message reaches the
// client verbatim, so it must never carry internals.
func writeError(w http.ResponseWriter, code int, msg string) {
	httpx.WriteJSON(w, code, orgsdk.ErrorResponse{Error: msg})
}
