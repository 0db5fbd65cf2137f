package services

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/justgohire/jobboard/internal/dtos"
	"github.com/justgohire/jobboard/internal/models"
)

type JobService struct {
	DB *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{DB: db}
}

// ListJobs returns every matching posting, newest first. Empty filter values
// are skipped, so the zero filter set returns the entire table. The search
// term and location match case-insensitively as substrings; job type and
// salary range match exactly.
func (s *JobService) ListJobs(filters dtos.JobFilters) ([]models.Job, error) {
	q := s.DB.Model(&models.Job{})

	if filters.SearchTerm != "" {
		pattern := "%" + strings.ToLower(filters.SearchTerm) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(company_name) LIKE ? OR LOWER(description) LIKE ?",
			pattern, pattern, pattern)
	}
	if filters.Location != "" {
		q = q.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(filters.Location)+"%")
	}
	if filters.JobType != "" {
		q = q.Where("job_type = ?", filters.JobType)
	}
	if filters.SalaryRange != "" {
		q = q.Where("salary_range = ?", filters.SalaryRange)
	}

	var jobs []models.Job
	if err := q.Order("created_at DESC").Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	return jobs, nil
}

// CreateJob inserts one posting. photoURL is the server-built URL of a stored
// upload, or nil when the request carried no attachment. The returned Job
// includes the assigned ID and creation timestamp.
func (s *JobService) CreateJob(req *dtos.JobCreationRequest, photoURL *string) (*models.Job, error) {
	deadline, err := req.Deadline()
	if err != nil {
		return nil, err
	}

	job := &models.Job{
		Title:               req.Title,
		CompanyName:         req.CompanyName,
		Location:            req.Location,
		JobType:             req.JobType,
		Description:         req.Description,
		Experience:          optional(req.Experience),
		SalaryRange:         optional(req.SalaryRange),
		Requirements:        optional(req.Requirements),
		Responsibilities:    optional(req.Responsibilities),
		ApplicationDeadline: deadline,
		CompanyProfilePhoto: photoURL,
	}
	if err := s.DB.Create(job).Error; err != nil {
		return nil, fmt.Errorf("insert job: %w", err)
	}
	return job, nil
}

// optional maps an empty form value to the absent marker.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
