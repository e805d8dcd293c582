package snapshot

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"
	"volby-scraper/internal/components/telemetry"
	"volby-scraper/internal/db"
	"volby-scraper/internal/scrapers/volby"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T, target string) Snapshot {
	database, err := db.OpenDB(target, "")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { database.Close() })
	return NewSnapshot(db.New(database), db.NewMakeTx(database), &telemetry.RecordingAPI{})
}

var sampleResults = []volby.Result{
	{
		Code:       "529303",
		Location:   "Benešov",
		Registered: "13 104",
		Envelopes:  "8 485",
		Valid:      "8 437",
		Parties: []volby.PartyVotes{
			{Party: "Občanská demokratická strana", Votes: "1 052"},
			{Party: "ANO 2011", Votes: "2 577"},
		},
	},
	{
		Code:       "530743",
		Location:   "Bílkovice",
		Registered: "120",
		Envelopes:  "80",
		Valid:      "79",
	},
}

func TestPushPull(t *testing.T) {
	for _, target := range []string{":memory:", filepath.Join(t.TempDir(), "volby.db")} {
		store := setup(t, target)
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()

		at := time.Date(2017, 10, 21, 14, 0, 0, 0, time.UTC)
		id, err := store.Push(ctx, "https://www.volby.cz/pls/ps2017nss/ps32?xkraj=2", at, sampleResults)
		require.NoError(t, err)

		run, err := store.Pull(ctx, id)
		require.NoError(t, err)
		require.Equal(t, id, run.ID)
		require.Equal(t, "https://www.volby.cz/pls/ps2017nss/ps32?xkraj=2", run.SourceLink)
		require.True(t, at.Equal(run.ScrapedAt))
		if diff := cmp.Diff(sampleResults, run.Results); diff != "" {
			t.Fatalf("results mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestLatest(t *testing.T) {
	store := setup(t, ":memory:")
	ctx := context.Background()

	_, err := store.Latest(ctx)
	require.True(t, errors.Is(err, sql.ErrNoRows))

	_, err = store.Push(ctx, "first", time.Unix(100, 0), sampleResults[:1])
	require.NoError(t, err)
	second, err := store.Push(ctx, "second", time.Unix(200, 0), sampleResults)
	require.NoError(t, err)

	run, err := store.Latest(ctx)
	require.NoError(t, err)
	require.Equal(t, second, run.ID)
	require.Len(t, run.Results, 2)
}
