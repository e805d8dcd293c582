package db

import (
	"context"
)

const createScrapeRun = `
insert into scrape_run (source_link, scraped_at)
values (?, ?)
returning id
`

type CreateScrapeRunParams struct {
	SourceLink string
	ScrapedAt  int64
}

func (q *Queries) CreateScrapeRun(ctx context.Context, arg CreateScrapeRunParams) (int64, error) {
	row := q.db.QueryRowContext(ctx, createScrapeRun, arg.SourceLink, arg.ScrapedAt)
	var id int64
	err := row.Scan(&id)
	return id, err
}

const getScrapeRun = `
select id, source_link, scraped_at from scrape_run
where id = ?
`

func (q *Queries) GetScrapeRun(ctx context.Context, id int64) (ScrapeRun, error) {
	row := q.db.QueryRowContext(ctx, getScrapeRun, id)
	var i ScrapeRun
	err := row.Scan(&i.ID, &i.SourceLink, &i.ScrapedAt)
	return i, err
}

const getLatestScrapeRun = `
select id, source_link, scraped_at from scrape_run
order by scraped_at desc, id desc
limit 1
`

func (q *Queries) GetLatestScrapeRun(ctx context.Context) (ScrapeRun, error) {
	row := q.db.QueryRowContext(ctx, getLatestScrapeRun)
	var i ScrapeRun
	err := row.Scan(&i.ID, &i.SourceLink, &i.ScrapedAt)
	return i, err
}

const createMunicipalityResult = `
insert into municipality_result (run_id, idx, code, location, registered, envelopes, valid)
values (?, ?, ?, ?, ?, ?, ?)
`

func (q *Queries) CreateMunicipalityResult(ctx context.Context, arg MunicipalityResult) error {
	_, err := q.db.ExecContext(ctx, createMunicipalityResult,
		arg.RunID,
		arg.Idx,
		arg.Code,
		arg.Location,
		arg.Registered,
		arg.Envelopes,
		arg.Valid,
	)
	return err
}

const getMunicipalityResults = `
select run_id, idx, code, location, registered, envelopes, valid from municipality_result
where run_id = ?
order by idx
`

func (q *Queries) GetMunicipalityResults(ctx context.Context, runID int64) ([]MunicipalityResult, error) {
	rows, err := q.db.QueryContext(ctx, getMunicipalityResults, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []MunicipalityResult
	for rows.Next() {
		var i MunicipalityResult
		if err := rows.Scan(
			&i.RunID,
			&i.Idx,
			&i.Code,
			&i.Location,
			&i.Registered,
			&i.Envelopes,
			&i.Valid,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const createPartyVote = `
insert into party_votes (run_id, municipality_idx, idx, party, votes)
values (?, ?, ?, ?, ?)
`

func (q *Queries) CreatePartyVote(ctx context.Context, arg PartyVote) error {
	_, err := q.db.ExecContext(ctx, createPartyVote,
		arg.RunID,
		arg.MunicipalityIdx,
		arg.Idx,
		arg.Party,
		arg.Votes,
	)
	return err
}

const getPartyVotes = `
select run_id, municipality_idx, idx, party, votes from party_votes
where run_id = ?
order by municipality_idx, idx
`

func (q *Queries) GetPartyVotes(ctx context.Context, runID int64) ([]PartyVote, error) {
	rows, err := q.db.QueryContext(ctx, getPartyVotes, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []PartyVote
	for rows.Next() {
		var i PartyVote
		if err := rows.Scan(
			&i.RunID,
			&i.MunicipalityIdx,
			&i.Idx,
			&i.Party,
			&i.Votes,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
