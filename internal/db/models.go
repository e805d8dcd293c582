package db

type ScrapeRun struct {
	ID         int64
	SourceLink string
	ScrapedAt  int64
}

type MunicipalityResult struct {
	RunID      int64
	Idx        int64
	Code       string
	Location   string
	Registered string
	Envelopes  string
	Valid      string
}

type PartyVote struct {
	RunID           int64
	MunicipalityIdx int64
	Idx             int64
	Party           string
	Votes           string
}
