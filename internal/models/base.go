package models

// Record is implemented by every entity kept in a slot collection.
type Record interface {
	GetID() string
}

func (c Client) GetID() string  { return c.ID }
func (t Task) GetID() string    { return t.ID }
func (n Note) GetID() string    { return n.ID }
func (f Folio) GetID() string   { return f.ID }
func (h Holding) GetID() string { return h.ID }

// ClientOwned is implemented by records that reference a client.
type ClientOwned interface {
	Record
	GetClientID() string
}

func (t Task) GetClientID() string    { return t.ClientID }
func (n Note) GetClientID() string    { return n.ClientID }
func (f Folio) GetClientID() string   { return f.ClientID }
func (h Holding) GetClientID() string { return h.ClientID }
