package models

// Tournament is the normalized record written to CSV. The field order matches
// the exported header and must not change between versions. Missing source
// values stay empty strings so they render as empty cells.
type Tournament struct {
	Id                string `csv:"id"`
	Name              string `csv:"name"`
	Url               string `csv:"url"`
	FullChallongeUrl  string `csv:"full_challonge_url"`
	State             string `csv:"state"`
	GameName          string `csv:"game_name"`
	ParticipantsCount string `csv:"participants_count"`
	CreatedAt         string `csv:"created_at"`
	StartedAt         string `csv:"started_at"`
	CompletedAt       string `csv:"completed_at"`
}
