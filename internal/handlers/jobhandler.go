package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/justgohire/jobboard/internal/dtos"
	"github.com/justgohire/jobboard/internal/services"
	"github.com/justgohire/jobboard/internal/uploads"
)

type JobHandler struct {
	Jobs    *services.JobService
	Uploads *uploads.Store
	log     zerolog.Logger
}

// NewJobHandler creates the handler with dependencies
func NewJobHandler(jobs *services.JobService, store *uploads.Store, logger zerolog.Logger) *JobHandler {
	return &JobHandler{
		Jobs:    jobs,
		Uploads: store,
		log:     logger,
	}
}

// ListJobs is the GET /api/jobs endpoint: the full table, newest first,
// narrowed by whatever filter params the client sent.
func (h *JobHandler) ListJobs(c *gin.Context) {
	var filters dtos.JobFilters
	_ = c.ShouldBindQuery(&filters)

	jobs, err := h.Jobs.ListJobs(filters)
	if err != nil {
		h.log.Error().Err(err).Msg("fetching jobs failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch jobs."})
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// CreateJob is the POST /api/jobs endpoint: multipart form fields plus an
// optional companyProfilePhoto attachment.
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dtos.JobCreationRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid form data: " + err.Error()})
		return
	}

	if missing := req.MissingFields(); len(missing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing required job fields (" + strings.Join(missing, ", ") + ").",
		})
		return
	}

	// The photo URL is always server-built; the form has no way to set it.
	var photoURL *string
	if file, err := c.FormFile("companyProfilePhoto"); err == nil {
		name, err := h.Uploads.Save(file)
		if err != nil {
			if errors.Is(err, uploads.ErrFileTooLarge) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Uploaded file exceeds the size limit."})
				return
			}
			h.log.Error().Err(err).Str("filename", file.Filename).Msg("storing upload failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while creating the job."})
			return
		}
		url := requestScheme(c) + "://" + c.Request.Host + "/uploads/" + name
		photoURL = &url
	}

	job, err := h.Jobs.CreateJob(&req, photoURL)
	if err != nil {
		if errors.Is(err, dtos.ErrInvalidDeadline) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid applicationDeadline value."})
			return
		}
		h.log.Error().Err(err).Str("title", req.Title).Str("company", req.CompanyName).Msg("creating job failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while creating the job."})
		return
	}
	c.JSON(http.StatusCreated, job)
}

// requestScheme resolves the scheme the client used, honoring a proxy's
// X-Forwarded-Proto header.
func requestScheme(c *gin.Context) string {
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		return proto
	}
	if c.Request.TLS != nil {
		return "https"
	}
	return "http"
}
