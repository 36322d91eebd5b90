package controllers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/fleetcover/quote-service/internal/dtos"
	"github.com/fleetcover/quote-service/internal/services"
	"github.com/fleetcover/quote-service/internal/utils"
)

// maxUploadBytes caps quote document uploads.
const maxUploadBytes = 25 << 20

// ObjectsController is thin glue over the external object-storage
// collaborator; the quote pipeline only sees the opaque paths.
type ObjectsController struct {
	storage services.ObjectStorage
}

func NewObjectsController(storage services.ObjectStorage) *ObjectsController {
	return &ObjectsController{storage: storage}
}

// -----------------------------------------------------------------------------
// POST /api/objects/upload  (multipart "file")
// -----------------------------------------------------------------------------
func (c *ObjectsController) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid multipart payload", nil, err,
		)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Missing file field", nil, err,
		)
		return
	}
	defer file.Close()

	path, err := c.storage.Save(header.Filename, file)
	if err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to store upload", nil, err,
		)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dtos.ObjectUploadResponse{Success: true, Path: path})
}

// -----------------------------------------------------------------------------
// PUT /api/objects/finalize
// -----------------------------------------------------------------------------
func (c *ObjectsController) Finalize(w http.ResponseWriter, r *http.Request) {
	var req dtos.ObjectFinalizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err,
		)
		return
	}
	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	path, err := c.storage.Finalize(req.Path)
	if err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusNotFound, utils.ErrCodeNotFound, "Object not found", nil, err,
		)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.ObjectUploadResponse{Success: true, Path: path})
}

// -----------------------------------------------------------------------------
// GET /objects/{path}
// -----------------------------------------------------------------------------
func (c *ObjectsController) Serve(w http.ResponseWriter, r *http.Request) {
	obj, err := c.storage.Open(mux.Vars(r)["path"])
	if err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusNotFound, utils.ErrCodeNotFound, "Object not found", nil, err,
		)
		return
	}
	defer obj.Close()

	w.Header().Set("Content-Type", "application/octet-stream")
	_, _ = io.Copy(w, obj)
}
