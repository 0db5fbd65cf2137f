package dtos

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDeadline marks an applicationDeadline value that could not be
// parsed. Handlers map it to a client-fault response.
var ErrInvalidDeadline = errors.New("invalid application deadline")

var deadlineLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02",
}

// JobCreationRequest carries the multipart form fields of POST /api/jobs.
// The attachment itself (companyProfilePhoto) is read from the request
// separately and never appears here.
type JobCreationRequest struct {
	Title               string `form:"title"`
	CompanyName         string `form:"companyName"`
	Location            string `form:"location"`
	JobType             string `form:"jobType"`
	Experience          string `form:"experience"`
	SalaryRange         string `form:"salaryRange"`
	Description         string `form:"description"`
	Requirements        string `form:"requirements"`
	Responsibilities    string `form:"responsibilities"`
	ApplicationDeadline string `form:"applicationDeadline"`
}

// MissingFields returns the names of required fields that are absent or
// empty, in a stable order suitable for the error message.
func (r *JobCreationRequest) MissingFields() []string {
	var missing []string
	required := []struct {
		name  string
		value string
	}{
		{"title", r.Title},
		{"companyName", r.CompanyName},
		{"location", r.Location},
		{"jobType", r.JobType},
		{"description", r.Description},
	}
	for _, f := range required {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// Deadline parses the optional applicationDeadline field. An empty value is
// not an error; it simply means no deadline.
func (r *JobCreationRequest) Deadline() (*time.Time, error) {
	if r.ApplicationDeadline == "" {
		return nil, nil
	}
	for _, layout := range deadlineLayouts {
		if ts, err := time.Parse(layout, r.ApplicationDeadline); err == nil {
			return &ts, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidDeadline, r.ApplicationDeadline)
}

// JobFilters are the query parameters accepted by GET /api/jobs. Empty
// values are no-ops, so a filterless request returns the whole table.
type JobFilters struct {
	SearchTerm  string `form:"searchTerm"`
	Location    string `form:"location"`
	JobType     string `form:"jobType"`
	SalaryRange string `form:"salaryRange"`
}
