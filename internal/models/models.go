package models

import "time"

// Job is the single persisted entity: one posting on the board. Rows are
// append-only; there is no update or delete path, so no UpdatedAt/DeletedAt.
//
// Optional attributes are pointers so that "not supplied" serializes as JSON
// null rather than an empty string. CompanyProfilePhoto is always derived by
// the server from a stored upload; clients never set it directly.
type Job struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Title       string `gorm:"not null" json:"title"`
	CompanyName string `gorm:"not null" json:"company_name"`
	Location    string `gorm:"not null" json:"location"`
	JobType     string `gorm:"not null" json:"job_type"`
	Description string `gorm:"type:text;not null" json:"description"`

	Experience          *string    `json:"experience"`
	SalaryRange         *string    `json:"salary_range"`
	Requirements        *string    `gorm:"type:text" json:"requirements"`
	Responsibilities    *string    `gorm:"type:text" json:"responsibilities"`
	ApplicationDeadline *time.Time `json:"application_deadline"`
	CompanyProfilePhoto *string    `json:"company_profile_photo"`
}
