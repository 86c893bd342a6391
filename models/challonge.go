package models

// TournamentsPage is one page of the Challonge v2 community tournaments listing.
type TournamentsPage struct {
	Data  []RawTournament `json:"data"`
	Links PageLinks       `json:"links"`
	Meta  PageMeta        `json:"meta"`
}

// RawTournament is the as-received JSON:API representation of a tournament.
// Attributes and relationships stay semi-structured because the API has shipped
// several shapes for the same information (top-level dates vs a nested
// timestamps object, three alternate homes for the participant count).
type RawTournament struct {
	Id            string                 `json:"id"`
	Type          string                 `json:"type"`
	Attributes    map[string]interface{} `json:"attributes"`
	Relationships map[string]interface{} `json:"relationships"`
}

type PageLinks struct {
	Next string `json:"next"`
}

// PageMeta carries the pagination counters. A zero value means the API omitted
// the key.
type PageMeta struct {
	CurrentPage int `json:"current_page"`
	NextPage    int `json:"next_page"`
	TotalPages  int `json:"total_pages"`
}
