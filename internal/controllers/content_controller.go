package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/fleetcover/quote-service/internal/dtos"
	"github.com/fleetcover/quote-service/internal/services"
	"github.com/fleetcover/quote-service/internal/utils"
)

type ContentController struct {
	svc services.ContentService
}

func NewContentController(svc services.ContentService) *ContentController {
	return &ContentController{svc: svc}
}

// -----------------------------------------------------------------------------
// GET /api/content/{key}
// -----------------------------------------------------------------------------
func (c *ContentController) GetContent(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]
	content, err := c.svc.GetContent(r.Context(), key)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	if content == nil {
		utils.RespondErrorWithCode(
			w, http.StatusNotFound, utils.ErrCodeNotFound, "Content not found", nil,
		)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.SiteContentResponse{Success: true, Content: content})
}

// -----------------------------------------------------------------------------
// PUT /api/content/{key}  (staff)
// -----------------------------------------------------------------------------
func (c *ContentController) UpsertContent(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	var req dtos.SiteContentUpsertRequest
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

	content, err := c.svc.UpsertContent(r.Context(), key, req.Value)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.SiteContentResponse{Success: true, Content: content})
}

// -----------------------------------------------------------------------------
// GET /api/blog, GET /api/blog/{slug}, POST /api/blog  (create is staff)
// -----------------------------------------------------------------------------
func (c *ContentController) ListBlogPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := c.svc.ListBlogPosts(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.BlogListResponse{Success: true, Posts: posts})
}

func (c *ContentController) GetBlogPost(w http.ResponseWriter, r *http.Request) {
	post, err := c.svc.GetBlogPost(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	if post == nil {
		utils.RespondErrorWithCode(
			w, http.StatusNotFound, utils.ErrCodeNotFound, "Post not found", nil,
		)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.BlogPostResponse{Success: true, Post: post})
}

func (c *ContentController) CreateBlogPost(w http.ResponseWriter, r *http.Request) {
	var req dtos.PostUpsertRequest
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

	post, err := c.svc.CreateBlogPost(r.Context(), req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dtos.BlogPostResponse{Success: true, Post: post})
}

// -----------------------------------------------------------------------------
// GET /api/news, GET /api/news/{slug}, POST /api/news  (create is staff)
// -----------------------------------------------------------------------------
func (c *ContentController) ListNewsReleases(w http.ResponseWriter, r *http.Request) {
	releases, err := c.svc.ListNewsReleases(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.NewsListResponse{Success: true, Releases: releases})
}

func (c *ContentController) GetNewsRelease(w http.ResponseWriter, r *http.Request) {
	release, err := c.svc.GetNewsRelease(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	if release == nil {
		utils.RespondErrorWithCode(
			w, http.StatusNotFound, utils.ErrCodeNotFound, "Release not found", nil,
		)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.NewsReleaseResponse{Success: true, Release: release})
}

func (c *ContentController) CreateNewsRelease(w http.ResponseWriter, r *http.Request) {
	var req dtos.PostUpsertRequest
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

	release, err := c.svc.CreateNewsRelease(r.Context(), req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dtos.NewsReleaseResponse{Success: true, Release: release})
}
