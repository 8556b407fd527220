package status

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// StatusResponseBody is the response body for the status check.
type StatusResponseBody struct {
	Status string `json:"status" doc:"Always ok when the server is up"`
}

// StatusOutput is the Huma output for the status check.
type StatusOutput struct {
	Body StatusResponseBody
}

// Handler handles GET /v1/status. The endpoint is exempt from authentication,
// like the category catalog.
type Handler struct{}

// NewHandler creates a new status Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Register registers the status endpoint with the Huma API.
func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-status",
		Method:      http.MethodGet,
		Path:        "/v1/status",
		Summary:     "Status",
		Description: "Reports whether the server is up.",
		Tags:        []string{"Status"},
	}, h.handle)
}

func (h *Handler) handle(ctx context.Context, _ *struct{}) (*StatusOutput, error) {
	return &StatusOutput{Body: StatusResponseBody{Status: "ok"}}, nil
}
