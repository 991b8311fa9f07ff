package domain

// CreateProjectInput contains the caller-supplied fields of a new project.
type CreateProjectInput struct {
	Title        string  `json:"title"`
	Details      string  `json:"details"`
	TargetAmount float64 `json:"target_amount"`
	// EndDate is a YYYY-MM-DD calendar date.
	EndDate string `json:"end_date"`
}

// EditProjectInput holds optional replacements; a nil field keeps the current value.
type EditProjectInput struct {
	Title        *string  `json:"title,omitempty"`
	Details      *string  `json:"details,omitempty"`
	TargetAmount *float64 `json:"target_amount,omitempty"`
	EndDate      *string  `json:"end_date,omitempty"`
	// ExpectedRevision, when set, must equal the stored revision.
	ExpectedRevision *uint64 `json:"expected_revision,omitempty"`
}

// IsEmpty reports whether no field would be changed.
func (in EditProjectInput) IsEmpty() bool {
	return in.Title == nil && in.Details == nil && in.TargetAmount == nil && in.EndDate == nil
}

// ListFilter narrows a project listing. Zero value lists everything.
type ListFilter struct {
	Owner    string
	OpenOnly bool
}

// Matches reports whether p passes the filter.
func (f ListFilter) Matches(p *Project) bool {
	if f.Owner != "" && !p.IsOwnedBy(f.Owner) {
		return false
	}
	if f.OpenOnly && !p.IsOpen() {
		return false
	}
	return true
}
