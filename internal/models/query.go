package models

// Params are the list query parameters. Zero values are omitted from
// the query string.
type Params struct {
	Limit     int
	NextToken string
	Status    string
	SortOrder string
}

// Results is one page of a listing. NextToken is an opaque server
// issued cursor, empty means end of list.
type Results[T TransferObject] struct {
	Items     []T    `json:"items"`
	NextToken string `json:"nextToken,omitempty"`
}
