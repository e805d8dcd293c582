package snapshot

import (
	"context"
	"fmt"
	"time"
	"volby-scraper/internal/components/assert"
	"volby-scraper/internal/components/telemetry"
	"volby-scraper/internal/db"
	"volby-scraper/internal/scrapers/volby"
)

const (
	report_db_query      = "db.query"
	report_snapshot_push = "snapshot.push"
)

// Snapshot stores the results of whole scrape runs.
type Snapshot struct {
	db     *db.Queries
	makeTx db.MakeTx
	tel    telemetry.API
}

func NewSnapshot(qry *db.Queries, makeTx db.MakeTx, tel telemetry.API) Snapshot {
	assert.NotNil(qry, "queries")
	assert.NotNil(makeTx, "makeTx")
	assert.NotNil(tel, "telemetry")

	tel = telemetry.NewScopedAPI("snapshot", tel)

	return Snapshot{
		db:     qry,
		makeTx: makeTx,
		tel:    tel,
	}
}

type Run struct {
	ID         int64
	SourceLink string
	ScrapedAt  time.Time
	Results    []volby.Result
}

// Push stores one run in a single transaction and returns its id.
func (s Snapshot) Push(ctx context.Context, sourceLink string, scrapedAt time.Time, results []volby.Result) (int64, error) {
	tx, discard, commit, err := s.makeTx(ctx)
	if err != nil {
		s.tel.ReportBroken(report_db_query, fmt.Errorf("make tx: %w", err))
		return 0, err
	}
	defer discard()

	runID, err := tx.CreateScrapeRun(ctx, db.CreateScrapeRunParams{
		SourceLink: sourceLink,
		ScrapedAt:  scrapedAt.Unix(),
	})
	if err != nil {
		s.tel.ReportBroken(report_db_query, err, "CreateScrapeRun")
		return 0, err
	}

	for i, result := range results {
		err = tx.CreateMunicipalityResult(ctx, db.MunicipalityResult{
			RunID:      runID,
			Idx:        int64(i),
			Code:       result.Code,
			Location:   result.Location,
			Registered: result.Registered,
			Envelopes:  result.Envelopes,
			Valid:      result.Valid,
		})
		if err != nil {
			s.tel.ReportBroken(report_db_query, err, "CreateMunicipalityResult", result.Code)
			return 0, err
		}

		for j, party := range result.Parties {
			err = tx.CreatePartyVote(ctx, db.PartyVote{
				RunID:           runID,
				MunicipalityIdx: int64(i),
				Idx:             int64(j),
				Party:           party.Party,
				Votes:           party.Votes,
			})
			if err != nil {
				s.tel.ReportBroken(report_db_query, err, "CreatePartyVote", result.Code, party.Party)
				return 0, err
			}
		}
	}

	err = commit()
	if err != nil {
		s.tel.ReportBroken(report_snapshot_push, fmt.Errorf("commit: %w", err))
		return 0, err
	}
	s.tel.ReportDebug("stored run", runID, len(results))
	return runID, nil
}

// Pull reads back the run stored under `runID`.
func (s Snapshot) Pull(ctx context.Context, runID int64) (Run, error) {
	run, err := s.db.GetScrapeRun(ctx, runID)
	if err != nil {
		s.tel.ReportBroken(report_db_query, err, "GetScrapeRun", runID)
		return Run{}, err
	}
	municipalities, err := s.db.GetMunicipalityResults(ctx, runID)
	if err != nil {
		s.tel.ReportBroken(report_db_query, err, "GetMunicipalityResults", runID)
		return Run{}, err
	}
	votes, err := s.db.GetPartyVotes(ctx, runID)
	if err != nil {
		s.tel.ReportBroken(report_db_query, err, "GetPartyVotes", runID)
		return Run{}, err
	}

	out := Run{
		ID:         run.ID,
		SourceLink: run.SourceLink,
		ScrapedAt:  time.Unix(run.ScrapedAt, 0),
		Results:    make([]volby.Result, len(municipalities)),
	}
	for i, m := range municipalities {
		out.Results[i] = volby.Result{
			Code:       m.Code,
			Location:   m.Location,
			Registered: m.Registered,
			Envelopes:  m.Envelopes,
			Valid:      m.Valid,
		}
	}
	for _, v := range votes {
		if v.MunicipalityIdx < 0 || int(v.MunicipalityIdx) >= len(out.Results) {
			s.tel.ReportWarning(report_db_query, "orphaned party vote", runID, v.MunicipalityIdx)
			continue
		}
		result := &out.Results[v.MunicipalityIdx]
		result.Parties = append(result.Parties, volby.PartyVotes{
			Party: v.Party,
			Votes: v.Votes,
		})
	}

	return out, nil
}

// Latest returns the most recently stored run.
func (s Snapshot) Latest(ctx context.Context) (Run, error) {
	run, err := s.db.GetLatestScrapeRun(ctx)
	if err != nil {
		return Run{}, err
	}
	return s.Pull(ctx, run.ID)
}
