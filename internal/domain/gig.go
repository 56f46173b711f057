package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrDuplicateApplicant = errors.New("applicant already exists for this gig")
)

// Categories lists the accepted gig categories (wire values).
var Categories = []string{
	"Web Development",
	"Mobile App",
	"Design",
	"Writing",
	"Marketing",
	"Other",
}

// Sort keys accepted by ListGigs. SortRelevance is selected internally when a
// text query is present and the caller did not ask for an explicit order.
const (
	SortNewest     = "newest"
	SortOldest     = "oldest"
	SortBudgetHigh = "budget_high"
	SortBudgetLow  = "budget_low"
	SortDeadline   = "deadline"
	SortRelevance  = "relevance"
)

type Gig struct {
	ID          int64       `json:"id"`
	Title       string      `json:"title" validate:"required,max=100"`
	Description string      `json:"description" validate:"required"`
	Category    string      `json:"category" validate:"required,oneof='Web Development' 'Mobile App' Design Writing Marketing Other"`
	Budget      float64     `json:"budget" validate:"required,min=5"`
	Deadline    time.Time   `json:"deadline" validate:"required,future"`
	PostedBy    string      `json:"postedBy" validate:"required"`
	Applicants  []Applicant `json:"applicants"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// Applicant is owned by exactly one gig; entries are append-only and never
// mutated after insertion.
type Applicant struct {
	ID             int64     `json:"id"`
	FreelancerName string    `json:"freelancerName"`
	ShortMessage   string    `json:"shortMessage"`
	SubmittedAt    time.Time `json:"submittedAt"`
}

// GigFilter is a conjunction: every non-zero field must hold simultaneously.
type GigFilter struct {
	Category  string
	Query     string
	MinBudget *float64
	MaxBudget *float64
}

// GigPage is one page of list results plus pagination metadata.
type GigPage struct {
	Items []Gig
	Total int64
	Page  int
	Pages int
}

type GigRepository interface {
	Create(ctx context.Context, gig *Gig) error
	GetByID(ctx context.Context, id int64) (*Gig, error)
	Fetch(ctx context.Context, filter GigFilter, sortBy string, limit, offset int) ([]Gig, int64, error)
	Search(ctx context.Context, query string) ([]Gig, error)
	FetchByCategory(ctx context.Context, category string) ([]Gig, error)
	// AppendApplicant must be a single conditional insert: when another
	// applicant with the same name (case-insensitive) already exists on the
	// gig it returns ErrDuplicateApplicant, even under concurrent requests.
	AppendApplicant(ctx context.Context, gigID int64, applicant *Applicant) error
}

type GigUsecase interface {
	CreateGig(ctx context.Context, gig *Gig) error
	GetGigDetails(ctx context.Context, id int64) (*Gig, error)
	ListGigs(ctx context.Context, filter GigFilter, sortBy string, page, limit int) (*GigPage, error)
	SearchGigs(ctx context.Context, query string) ([]Gig, error)
	ListByCategory(ctx context.Context, category string) ([]Gig, error)
}

type ApplicationUsecase interface {
	ApplyToGig(ctx context.Context, gigID int64, freelancerName, shortMessage string) error
}
