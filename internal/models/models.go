// Package models holds the records owned by the backend API. This layer
// displays and edits their fields; uniqueness and persistence live upstream.
package models

import "time"

// Application status values as the backend reports them.
const (
	StatusApplied      = "APPLIED"
	StatusInterviewing = "INTERVIEWING"
	StatusOffer        = "OFFER"
	StatusRejected     = "REJECTED"
)

type Job struct {
	ID          string   `json:"id"`
	CompanyName string   `json:"company_name"`
	Title       string   `json:"title"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	JobLink     string   `json:"job_link"`
	TechStack   []string `json:"tech_stack,omitempty"`
	SalaryRange string   `json:"salary_range,omitempty"`
}

type Application struct {
	ID          string    `json:"id"`
	JobID       string    `json:"job_id"`
	CompanyName string    `json:"company_name"`
	Title       string    `json:"title"`
	JobLink     string    `json:"job_link"`
	Status      string    `json:"status"`
	ResumeID    string    `json:"resume_id,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Contact struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email,omitempty"`
	CompanyName string    `json:"company_name,omitempty"`
	Role        string    `json:"role,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type Resume struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Narrative is a user-authored story snippet used in coaching prompts.
type Narrative struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

type Offer struct {
	ID            string    `json:"id"`
	ApplicationID string    `json:"application_id"`
	CompanyName   string    `json:"company_name"`
	BaseSalary    int64     `json:"base_salary"`
	Equity        string    `json:"equity,omitempty"`
	Deadline      time.Time `json:"deadline,omitempty"`
	Accepted      bool      `json:"accepted"`
	CreatedAt     time.Time `json:"created_at"`
}

// LeaderboardEntry ranks users by application activity.
type LeaderboardEntry struct {
	Rank         int    `json:"rank"`
	UserName     string `json:"user_name"`
	Applications int    `json:"applications"`
	Streak       int    `json:"streak"`
}

// Review is the asynchronous job-review process tracked by the poller.
// State "complete" is terminal; everything else means still pending.
type Review struct {
	ID     string `json:"id"`
	State  string `json:"state"`
	Result string `json:"result,omitempty"`
}

// ReviewComplete is the terminal state reported by the backend.
const ReviewComplete = "complete"
