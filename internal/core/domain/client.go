package domain

import "time"

// Client is the root of the hierarchy: the advertiser that owns projects.
type Client struct {
	ClientID         string    `json:"client_id"`
	ClientName       string    `json:"client_name"`
	IndustryCategory string    `json:"industry_category,omitempty"`
	ContactPerson    string    `json:"contact_person,omitempty"`
	Email            string    `json:"email,omitempty"`
	Phone            string    `json:"phone,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (c Client) PrimaryKey() string { return c.ClientID }
func (c Client) ParentKey() string  { return "" }
