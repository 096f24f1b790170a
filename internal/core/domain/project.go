package domain

import "time"

// Project groups campaigns for one client. ClientName is a denormalised copy
// taken when the project was last saved.
type Project struct {
	ProjectID   string     `json:"project_id"`
	ClientID    string     `json:"client_id"`
	ClientName  string     `json:"client_name,omitempty"`
	ProjectName string     `json:"project_name"`
	Description string     `json:"description,omitempty"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Status      Status     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (p Project) PrimaryKey() string { return p.ProjectID }
func (p Project) ParentKey() string  { return p.ClientID }
