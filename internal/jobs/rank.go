package jobs

import "sort"

// Rank orders a fetched page of listings by posting recency, newest first.
// Listings with missing or unparseable timestamps sort as oldest. The sort is
// stable: listings with equal timestamps keep their input order.
func Rank(listings []Listing) []Listing {
	ranked := make([]Listing, len(listings))
	copy(ranked, listings)

	sort.SliceStable(ranked, func(i, j int) bool {
		ti, iOK := ranked[i].CreatedTime()
		tj, jOK := ranked[j].CreatedTime()
		if iOK != jOK {
			return iOK
		}
		if !iOK {
			return false
		}
		return ti.After(tj)
	})

	return ranked
}
