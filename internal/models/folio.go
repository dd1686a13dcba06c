package models

// Folio is an account number a client holds with a fund house.
type Folio struct {
	ID          string `json:"id" yaml:"id"`
	ClientID    string `json:"client_id" yaml:"client_id"`
	FolioNumber string `json:"folio_number" yaml:"folio_number"`
	Provider    string `json:"provider" yaml:"provider"`
	Notes       string `json:"notes" yaml:"notes"`
}

// FolioPatch lists the folio fields an update may change.
type FolioPatch struct {
	FolioNumber *string `json:"folio_number,omitempty"`
	Provider    *string `json:"provider,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

// Apply merges the set fields of p over f.
func (p FolioPatch) Apply(f *Folio) {
	if p.FolioNumber != nil {
		f.FolioNumber = *p.FolioNumber
	}
	if p.Provider != nil {
		f.Provider = *p.Provider
	}
	if p.Notes != nil {
		f.Notes = *p.Notes
	}
}
