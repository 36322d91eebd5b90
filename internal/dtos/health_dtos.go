package dtos

type HealthCheckResponse struct {
	Status string `json:"status"`
}

// ObjectUploadResponse returns the storage path assigned to an upload.
type ObjectUploadResponse struct {
	Success bool   `json:"success"`
	Path    string `json:"path"`
}

type ObjectFinalizeRequest struct {
	Path string `json:"path" validate:"required"`
}
