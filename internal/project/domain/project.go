// Package domain defines the crowdfunding project entity, its lifecycle rules and the
// errors reported when those rules are violated.
package domain

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Project is a fundraising campaign owned by the user whose email is stored in Creator.
type Project struct {
	// ID is the stable handle callers use to address the project.
	ID      uuid.UUID
	Title   string
	Details string
	// TargetAmount is the funding goal; donations may exceed it.
	TargetAmount float64
	// StartDate is the calendar date the project was created and never changes.
	StartDate time.Time
	// EndDate is a calendar date on or after StartDate.
	EndDate time.Time
	// Creator is the owner's email, compared case-insensitively.
	Creator       string
	CurrentAmount float64
	// Backers holds one donor email per donation, in donation order.
	Backers []string
	Closed  bool
	// Revision is incremented on every mutation and used for optimistic checks.
	Revision uint64
}

// NewProject builds an open project with no funds and its own empty backer list.
func NewProject(
	title, details string,
	targetAmount float64,
	startDate, endDate time.Time,
	creator string,
) *Project {
	return &Project{
		ID:           uuid.Must(uuid.NewV7()),
		Title:        title,
		Details:      details,
		TargetAmount: targetAmount,
		StartDate:    Truncate(startDate),
		EndDate:      Truncate(endDate),
		Creator:      creator,
		Backers:      []string{},
	}
}

// IsOwnedBy reports whether email identifies the creator of the project.
func (p *Project) IsOwnedBy(email string) bool {
	return strings.EqualFold(strings.TrimSpace(p.Creator), strings.TrimSpace(email))
}

// IsOpen reports whether the project still accepts edits and donations.
func (p *Project) IsOpen() bool {
	return !p.Closed
}

// TargetReached reports whether the raised amount meets or exceeds the goal.
func (p *Project) TargetReached() bool {
	return p.CurrentAmount >= p.TargetAmount
}

// AddDonation credits amount and records donor as a backer. Callers must have
// checked that the project is open and amount is a valid donation.
func (p *Project) AddDonation(donor string, amount float64) {
	p.CurrentAmount += amount
	p.Backers = append(p.Backers, donor)
	p.Revision++
}

// Close marks the project as closed.
func (p *Project) Close() {
	p.Closed = true
	p.Revision++
}

// Clone returns a deep copy that shares no backer storage with p.
func (p *Project) Clone() *Project {
	c := *p
	c.Backers = append([]string{}, p.Backers...)
	return &c
}

// IsValidDonation reports whether amount can be credited to a project.
func IsValidDonation(amount float64) bool {
	return amount > 0 && !math.IsInf(amount, 0) && !math.IsNaN(amount)
}

// IsValidTarget reports whether amount is an acceptable funding goal.
func IsValidTarget(amount float64) bool {
	return amount >= 0 && !math.IsInf(amount, 0) && !math.IsNaN(amount)
}
