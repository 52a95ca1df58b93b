package handlers

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"hireflow/internal/dtos"
	"hireflow/internal/services"
)

type CandidateHandler struct {
	Candidates *services.CandidateService
}

func NewCandidateHandler(candidates *services.CandidateService) *CandidateHandler {
	return &CandidateHandler{Candidates: candidates}
}

// Create is the POST /jobs/:jobId/candidates endpoint (multipart).
func (h *CandidateHandler) Create(c *gin.Context) {
	var req dtos.CandidateCreateRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid form data: " + err.Error()})
		return
	}
	req.JobID = c.Param("jobId")
	if user := currentUser(c); user != nil {
		req.CreatedByID = user.ID
	}

	files, closers, err := h.collectFiles(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid file upload: " + err.Error()})
		return
	}
	defer func() {
		for _, f := range closers {
			f.Close()
		}
	}()

	candidate, err := h.Candidates.Create(c.Request.Context(), &req, files)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, candidate)
}

// ListByJob is the GET /jobs/:jobId/candidates endpoint.
func (h *CandidateHandler) ListByJob(c *gin.Context) {
	candidates, err := h.Candidates.ListByJob(c.Request.Context(), c.Param("jobId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, candidates)
}

// UpdateStatus is the PATCH /candidates/:id/status endpoint.
func (h *CandidateHandler) UpdateStatus(c *gin.Context) {
	var req dtos.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON format: " + err.Error()})
		return
	}
	candidate, err := h.Candidates.UpdateStatus(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, candidate)
}

// UpdateNotes is the PATCH /candidates/:id/notes endpoint.
func (h *CandidateHandler) UpdateNotes(c *gin.Context) {
	var req dtos.NotesUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON format: " + err.Error()})
		return
	}
	candidate, err := h.Candidates.UpdateNotes(c.Request.Context(), c.Param("id"), req.Notes)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, candidate)
}

// GetCV is the GET /candidates/:id/cv endpoint.
func (h *CandidateHandler) GetCV(c *gin.Context) {
	data, contentType, err := h.Candidates.FetchAsset(c.Request.Context(), c.Param("id"), services.AssetCV)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Data(http.StatusOK, contentType, data)
}

// GetProfilePicture is the GET /candidates/:id/profile-picture endpoint.
// The derivative is immutable once generated, so the response carries a
// long-lived cache directive.
func (h *CandidateHandler) GetProfilePicture(c *gin.Context) {
	data, contentType, err := h.Candidates.FetchAsset(c.Request.Context(), c.Param("id"), services.AssetProfilePicture)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Cache-Control", "public, max-age=31536000, immutable")
	c.Data(http.StatusOK, contentType, data)
}

// Delete is the DELETE /candidates/:id endpoint.
func (h *CandidateHandler) Delete(c *gin.Context) {
	if err := h.Candidates.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Candidate deleted successfully"})
}

// collectFiles opens whichever of the three upload fields are present.
// A missing field is not an error; the service validates that the CV exists.
func (h *CandidateHandler) collectFiles(c *gin.Context) (services.CandidateFiles, []multipart.File, error) {
	var files services.CandidateFiles
	var closers []multipart.File

	open := func(field string) (*services.FileUpload, error) {
		header, err := c.FormFile(field)
		if err != nil {
			return nil, nil
		}
		f, err := header.Open()
		if err != nil {
			return nil, err
		}
		closers = append(closers, f)
		return &services.FileUpload{Filename: header.Filename, Reader: f}, nil
	}

	var err error
	if files.CV, err = open("cv"); err != nil {
		return files, closers, err
	}
	if files.CoverLetter, err = open("cover_letter"); err != nil {
		return files, closers, err
	}
	if files.ProfilePicture, err = open("profile_picture"); err != nil {
		return files, closers, err
	}
	return files, closers, nil
}
