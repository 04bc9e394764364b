package content

import (
	"fmt"
	"html/template"

	"github.com/bookedai/site/internal/chart"
	"github.com/bookedai/site/internal/overlay"
)

// JobStatus is the lifecycle state shown in the job table.
type JobStatus string

const (
	Confirmed JobStatus = "Confirmed"
	Pending   JobStatus = "Pending"
	Cancelled JobStatus = "Cancelled"
)

// Valid reports whether s is one of the known statuses.
func (s JobStatus) Valid() bool {
	switch s {
	case Confirmed, Pending, Cancelled:
		return true
	}
	return false
}

// Badge returns the color family used for the status pill.
func (s JobStatus) Badge() string {
	switch s {
	case Confirmed:
		return "green"
	case Pending:
		return "amber"
	case Cancelled:
		return "rose"
	}
	return ""
}

// Stat is one of the dashboard summary cards.
type Stat struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
	Sub   string `yaml:"sub"`
	Tone  string `yaml:"tone"`
}

// SyncCard is the sample calendar event card.
type SyncCard struct {
	Title    string `yaml:"title"`
	Time     string `yaml:"time"`
	Location string `yaml:"location"`
}

// JobRow is a read-only row of the sample job table.
type JobRow struct {
	ID            string    `yaml:"id"`
	CreatedAt     string    `yaml:"created_at"`
	CustomerName  string    `yaml:"customer"`
	CustomerPhone string    `yaml:"phone"`
	Intent        string    `yaml:"intent"`
	ServiceType   string    `yaml:"service"`
	Status        JobStatus `yaml:"status"`
}

// Step is an onboarding card.
type Step struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Tone        string `yaml:"tone"`
}

// Pricing is the fixed monthly plan.
type Pricing struct {
	Monthly  string   `yaml:"monthly"`
	Setup    string   `yaml:"setup"`
	Features []string `yaml:"features"`
}

// FAQEntry holds a question and its markdown answer.
type FAQEntry struct {
	ID       string `yaml:"id"`
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

// Dataset is everything in dataset.yaml.
type Dataset struct {
	Stats    []Stat            `yaml:"stats"`
	Bookings []chart.BarDatum  `yaml:"bookings"`
	Statuses []chart.RingDatum `yaml:"statuses"`
	Sync     SyncCard          `yaml:"sync"`
	Jobs     []JobRow          `yaml:"jobs"`
	Steps    []Step            `yaml:"steps"`
	Pricing  Pricing           `yaml:"pricing"`
	FAQ      []FAQEntry        `yaml:"faq"`
}

// Document is a rendered legal page.
type Document struct {
	Kind  overlay.Selection
	Title string
	Body  template.HTML
}

// ValidationError lists every defect found in a dataset.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	if len(e.Problems) == 1 {
		return "invalid content: " + e.Problems[0]
	}
	return fmt.Sprintf("invalid content: %d problems, first: %s", len(e.Problems), e.Problems[0])
}
