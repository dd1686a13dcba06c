package models

import "time"

// Client is a person or business the firm manages money for.
type Client struct {
	ID          string        `json:"id" yaml:"id"`
	Name        string        `json:"name" yaml:"name"`
	Company     string        `json:"company" yaml:"company"`
	Email       string        `json:"email" yaml:"email"`
	Phone       string        `json:"phone" yaml:"phone"`
	Address     string        `json:"address" yaml:"address"`
	Tags        []string      `json:"tags" yaml:"tags"`
	Status      ClientStatus  `json:"status" yaml:"status"`
	Segment     ClientSegment `json:"segment" yaml:"segment"`
	Owner       string        `json:"owner" yaml:"owner"`
	Notes       string        `json:"notes" yaml:"notes"`
	DematID     string        `json:"demat_id,omitempty" yaml:"demat_id"`
	LastContact time.Time     `json:"last_contact" yaml:"-"`
	CreatedAt   time.Time     `json:"created_at" yaml:"-"`
}

// ClientPatch lists the client fields an update may change. Nil fields are
// left untouched.
type ClientPatch struct {
	Name        *string        `json:"name,omitempty"`
	Company     *string        `json:"company,omitempty"`
	Email       *string        `json:"email,omitempty"`
	Phone       *string        `json:"phone,omitempty"`
	Address     *string        `json:"address,omitempty"`
	Tags        []string       `json:"tags,omitempty"`
	Status      *ClientStatus  `json:"status,omitempty"`
	Segment     *ClientSegment `json:"segment,omitempty"`
	Owner       *string        `json:"owner,omitempty"`
	Notes       *string        `json:"notes,omitempty"`
	DematID     *string        `json:"demat_id,omitempty"`
	LastContact *time.Time     `json:"last_contact,omitempty"`
}

// Apply merges the set fields of p over c.
func (p ClientPatch) Apply(c *Client) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Company != nil {
		c.Company = *p.Company
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Address != nil {
		c.Address = *p.Address
	}
	if p.Tags != nil {
		c.Tags = append([]string{}, p.Tags...)
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	if p.Segment != nil {
		c.Segment = *p.Segment
	}
	if p.Owner != nil {
		c.Owner = *p.Owner
	}
	if p.Notes != nil {
		c.Notes = *p.Notes
	}
	if p.DematID != nil {
		c.DematID = *p.DematID
	}
	if p.LastContact != nil {
		c.LastContact = *p.LastContact
	}
}
