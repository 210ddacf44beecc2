package domain

// Paging limits applied to listing searches.
const (
	DefaultPageSize = 24
	MaxPageSize     = 100
)

// SearchQuery holds the filters of one listing search.
// Empty string filters are omitted from the remote request.
type SearchQuery struct {
	Type     string `json:"type,omitempty"`
	Location string `json:"location,omitempty"`
	Age      string `json:"age,omitempty"`
	Breed    string `json:"breed,omitempty"`
	Size     string `json:"size,omitempty"`
	Gender   string `json:"gender,omitempty"`

	// Page is 1-based.
	Page int `json:"page"`

	// PageSize is the number of results per page.
	PageSize int `json:"page_size"`
}

// Normalize floors Page at 1, defaults PageSize and caps it at MaxPageSize.
func (q SearchQuery) Normalize() SearchQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize <= 0 {
		q.PageSize = DefaultPageSize
	}
	if q.PageSize > MaxPageSize {
		q.PageSize = MaxPageSize
	}
	return q
}

// PetPage is one page of search results.
type PetPage struct {
	Items      []Pet `json:"items"`
	Page       int   `json:"page"`
	TotalPages int   `json:"total_pages"`
	PageSize   int   `json:"page_size"`
	Count      int   `json:"count"`
}

// SinglePage wraps pets as the only page of a result set.
func SinglePage(pets []Pet) PetPage {
	if pets == nil {
		pets = []Pet{}
	}
	return PetPage{
		Items:      pets,
		Page:       1,
		TotalPages: 1,
		PageSize:   len(pets),
		Count:      len(pets),
	}
}
