package model

// SearchFilter holds the search form's criteria. Empty string fields mean
// "no constraint"; Status selects the time predicate and defaults to StatusAll.
type SearchFilter struct {
	ItemID      string
	SellerID    string
	Category    string
	Description string
	MinPrice    string
	MaxPrice    string
	Status      string
}

// Empty reports whether no search criterion (other than status) is set.
func (f SearchFilter) Empty() bool {
	return f.ItemID == "" && f.SellerID == "" && f.Category == "" &&
		f.Description == "" && f.MinPrice == "" && f.MaxPrice == ""
}

// SearchResult is one row of a search: the item plus its concatenated
// category string.
type SearchResult struct {
	Item
	Categories string `json:"categories"`
}
