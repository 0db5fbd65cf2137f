package render

import (
	"fmt"
	"time"

	"github.com/justgohire/jobboard/internal/models"
)

// DefaultLogoURL is shown when a company has no configured logo, and doubles
// as the image-level fallback when a configured URL fails to load.
const DefaultLogoURL = "/default-company.png"

// companyLogos maps exact company names to their logo URLs.
var companyLogos = map[string]string{
	"Amazon":    "https://www.pngmart.com/files/23/Amazon-Logo-White-PNG-File.png",
	"Tesla":     "https://th.bing.com/th/id/OIP.QZRUtEA8SeOZrUtbE7XCegHaHa?rs=1&pid=ImgDetMain",
	"Microsoft": "https://upload.wikimedia.org/wikipedia/commons/4/44/Microsoft_logo.svg",
	"Google":    "https://static.vecteezy.com/system/resources/previews/011/598/471/non_2x/google-logo-icon-illustration-free-vector.jpg",
	"Apple":     "https://th.bing.com/th/id/OIP.9g4dkKVAUyciOuDI9_vEYQHaHa?rs=1&pid=ImgDetMain",
	"Facebook":  "https://upload.wikimedia.org/wikipedia/commons/5/51/Facebook_f_logo_%282019%29.svg",
	"Spotify":   "https://upload.wikimedia.org/wikipedia/commons/1/19/Spotify_logo_without_text.svg",
	"Netflix":   "https://upload.wikimedia.org/wikipedia/commons/0/08/Netflix_2015_logo.svg",
}

// LogoURL resolves a display logo by exact company-name lookup.
func LogoURL(company string) string {
	if u, ok := companyLogos[company]; ok {
		return u
	}
	return DefaultLogoURL
}

// DisplayTime renders a posting's age at calendar-day granularity. A zero
// timestamp reads as "Today", matching the original board's behavior for
// missing or unparseable dates.
func DisplayTime(createdAt, now time.Time) string {
	if createdAt.IsZero() {
		return "Today"
	}

	created := time.Date(createdAt.Year(), createdAt.Month(), createdAt.Day(), 0, 0, 0, 0, time.UTC)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	days := int(today.Sub(created).Hours() / 24)
	switch {
	case days <= 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	default:
		return fmt.Sprintf("%d days ago", days)
	}
}

// Card is the display form of one posting: every field resolved, with the
// original board's fallback text filled in for anything absent.
type Card struct {
	ID              uint   `json:"id"`
	Title           string `json:"title"`
	CompanyName     string `json:"company_name"`
	LogoURL         string `json:"logo_url"`
	FallbackLogoURL string `json:"fallback_logo_url"`
	PostedLabel     string `json:"posted_label"`
	Experience      string `json:"experience"`
	Location        string `json:"location"`
	Salary          string `json:"salary"`
	JobType         string `json:"job_type"`
	Description     string `json:"description"`
}

// NewCard maps one Job to its card. Pure function of the job and the clock.
func NewCard(job models.Job, now time.Time) Card {
	return Card{
		ID:              job.ID,
		Title:           job.Title,
		CompanyName:     textOrDefault(job.CompanyName, "Unknown Company"),
		LogoURL:         LogoURL(job.CompanyName),
		FallbackLogoURL: DefaultLogoURL,
		PostedLabel:     DisplayTime(job.CreatedAt, now),
		Experience:      ptrOrDefault(job.Experience, "1–3 yr Exp"),
		Location:        textOrDefault(job.Location, "Onsite"),
		Salary:          ptrOrDefault(job.SalaryRange, "N/A"),
		JobType:         textOrDefault(job.JobType, "Full-time"),
		Description:     job.Description,
	}
}

// Cards maps the held job list to display cards, preserving order.
func Cards(jobs []models.Job, now time.Time) []Card {
	cards := make([]Card, 0, len(jobs))
	for _, job := range jobs {
		cards = append(cards, NewCard(job, now))
	}
	return cards
}

func textOrDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func ptrOrDefault(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}
