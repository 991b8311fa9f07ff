package records

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	projectDomain "github.com/allisson/crowdfund/internal/project/domain"
	userDomain "github.com/allisson/crowdfund/internal/user/domain"
)

// MaskedPassword replaces the password in display projections.
const MaskedPassword = "no access"

// legacyProjectNamespace seeds IDs for project records written without one.
var legacyProjectNamespace = uuid.MustParse("6f1d7c5e-3a0b-4c52-9d8e-1b2f4a6c8e01")

// Profile selects how much of a record is rendered.
type Profile int

const (
	// ProfileAuthoritative keeps every field; used for the persisted user directory.
	ProfileAuthoritative Profile = iota
	// ProfileDisplay masks the password; used for output and embedded creator references.
	ProfileDisplay
)

// UserRecord is the persisted shape of a user.
type UserRecord struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	MobilePhone string `json:"mobile_phone"`
}

// CreatorRef is the persisted project owner. It is always written as a plain email but
// also reads records that embed the creator as a user sub-record.
type CreatorRef string

// UnmarshalJSON accepts either "email" or {"email": "..."}.
func (c *CreatorRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*c = ""
		return nil
	}

	var email string
	if err := json.Unmarshal(data, &email); err == nil {
		*c = CreatorRef(email)
		return nil
	}

	var embedded struct {
		Email string `json:"email"`
	}
	if err := json.Unmarshal(data, &embedded); err != nil {
		return fmt.Errorf("creator must be an email or an object with an email: %w", err)
	}
	*c = CreatorRef(embedded.Email)
	return nil
}

// ProjectRecord is the persisted shape of a project.
type ProjectRecord struct {
	ID            string     `json:"id,omitempty"`
	Title         string     `json:"title"`
	Details       string     `json:"details"`
	TargetAmount  float64    `json:"target_amount"`
	StartDate     string     `json:"start_date"`
	EndDate       string     `json:"end_date"`
	Creator       CreatorRef `json:"creator"`
	CurrentAmount float64    `json:"current_amount"`
	Backers       []string   `json:"backers"`
	Closed        bool       `json:"closed"`
	Revision      uint64     `json:"revision"`
}

// ProjectView is the display projection of a project with its creator embedded.
type ProjectView struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Details       string     `json:"details"`
	TargetAmount  float64    `json:"target_amount"`
	StartDate     string     `json:"start_date"`
	EndDate       string     `json:"end_date"`
	Creator       UserRecord `json:"creator"`
	CurrentAmount float64    `json:"current_amount"`
	Backers       []string   `json:"backers"`
	Closed        bool       `json:"closed"`
	Revision      uint64     `json:"revision"`
}

// NewUserRecord converts a user using the given profile.
func NewUserRecord(user *userDomain.User, profile Profile) UserRecord {
	password := user.Password
	if profile == ProfileDisplay {
		password = MaskedPassword
	}
	return UserRecord{
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Email:       user.Email,
		Password:    password,
		MobilePhone: user.MobilePhone,
	}
}

// ToDomain converts the record back into a user.
func (r UserRecord) ToDomain() *userDomain.User {
	return &userDomain.User{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		Password:    r.Password,
		MobilePhone: r.MobilePhone,
	}
}

// NewProjectRecord converts a project into its persisted shape.
func NewProjectRecord(project *projectDomain.Project) ProjectRecord {
	return ProjectRecord{
		ID:            project.ID.String(),
		Title:         project.Title,
		Details:       project.Details,
		TargetAmount:  project.TargetAmount,
		StartDate:     formatDate(project.StartDate),
		EndDate:       formatDate(project.EndDate),
		Creator:       CreatorRef(project.Creator),
		CurrentAmount: project.CurrentAmount,
		Backers:       nonNil(project.Backers),
		Closed:        project.Closed,
		Revision:      project.Revision,
	}
}

// ToDomain converts the record back into a project. position is the record's index
// in its set and only matters for records written without an id.
func (r ProjectRecord) ToDomain(position int) *projectDomain.Project {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		id = uuid.NewSHA1(
			legacyProjectNamespace,
			[]byte(fmt.Sprintf("%d|%s|%s|%s", position, r.Creator, r.Title, r.StartDate)),
		)
	}

	return &projectDomain.Project{
		ID:            id,
		Title:         r.Title,
		Details:       r.Details,
		TargetAmount:  r.TargetAmount,
		StartDate:     parseDate(r.StartDate),
		EndDate:       parseDate(r.EndDate),
		Creator:       string(r.Creator),
		CurrentAmount: r.CurrentAmount,
		Backers:       append([]string{}, r.Backers...),
		Closed:        r.Closed,
		Revision:      r.Revision,
	}
}

// NewProjectView renders a project for display. When creator is nil only the owner
// email is known and the remaining creator fields stay empty.
func NewProjectView(project *projectDomain.Project, creator *userDomain.User) ProjectView {
	if creator == nil {
		creator = &userDomain.User{Email: project.Creator}
	}
	rec := NewProjectRecord(project)
	return ProjectView{
		ID:            rec.ID,
		Title:         rec.Title,
		Details:       rec.Details,
		TargetAmount:  rec.TargetAmount,
		StartDate:     rec.StartDate,
		EndDate:       rec.EndDate,
		Creator:       NewUserRecord(creator, ProfileDisplay),
		CurrentAmount: rec.CurrentAmount,
		Backers:       rec.Backers,
		Closed:        rec.Closed,
		Revision:      rec.Revision,
	}
}

// formatDate writes the zero time as an empty string so unreadable dates stay unset.
func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return projectDomain.FormatDate(t)
}

func parseDate(value string) time.Time {
	t, err := projectDomain.ParseDate(value)
	if err != nil {
		return time.Time{}
	}
	return t
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
