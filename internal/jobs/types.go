// Package jobs provides the job-search client, result types and ranking for
// the external job-listing API.
package jobs

import "time"

// Display placeholders for nullable listing fields.
const (
	placeholderContractType = "N/A"
	placeholderCreated      = "No Date Available"
)

// Listing represents one external search result. Listings are immutable once
// fetched; the active page is fully replaced on every search.
type Listing struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	RedirectURL  string   `json:"redirect_url"`
	ContractType string   `json:"contract_type"`
	Created      string   `json:"created"`
	Company      Company  `json:"company"`
	Location     Location `json:"location"`
}

// Company holds the employer's display name.
type Company struct {
	DisplayName string `json:"display_name"`
}

// Location holds the listing's display location.
type Location struct {
	DisplayName string `json:"display_name"`
}

// CreatedTime parses the posting timestamp. ok is false when the timestamp is
// missing or unparseable; such listings rank as oldest rather than failing.
func (l *Listing) CreatedTime() (t time.Time, ok bool) {
	if l.Created == "" {
		return time.Time{}, false
	}
	parsed, err := time.Parse(time.RFC3339, l.Created)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

// DisplayContractType returns the contract type or "N/A" when absent.
func (l *Listing) DisplayContractType() string {
	if l.ContractType == "" {
		return placeholderContractType
	}
	return l.ContractType
}

// DisplayCreated returns the posting date or a placeholder when absent.
func (l *Listing) DisplayCreated() string {
	t, ok := l.CreatedTime()
	if !ok {
		return placeholderCreated
	}
	return t.Format("January 2, 2006")
}
