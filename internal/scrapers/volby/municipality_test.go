package volby

import (
	"testing"
	"volby-scraper/internal/components/telemetry"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

const nbsp = "\u00a0"

func TestParseMunicipality(t *testing.T) {
	tel := &telemetry.RecordingAPI{}
	m := Municipality{Code: "529303", Name: "Benešov"}

	result, err := ParseMunicipality(fixtureDoc(t, "municipality_529303.html"), m, tel)
	require.NoError(t, err)

	expected := Result{
		Code:       "529303",
		Location:   "Benešov",
		Registered: "13" + nbsp + "104",
		Envelopes:  "8" + nbsp + "485",
		Valid:      "8" + nbsp + "437",
		Parties: []PartyVotes{
			{Party: "Občanská demokratická strana", Votes: "1" + nbsp + "052"},
			{Party: "Řád národa - Vlastenecká unie", Votes: "5"},
			{Party: "Česká str.sociálně demokrat.", Votes: "624"},
			{Party: "ANO 2011", Votes: "2" + nbsp + "577"},
			{Party: "Česká pirátská strana", Votes: "1" + nbsp + "012"},
		},
	}
	if diff := cmp.Diff(expected, result); diff != "" {
		t.Fatalf("result mismatch (-want +got):\n%s", diff)
	}
	require.Empty(t, tel.Find("warning", report_parse_municipality))
}

func TestParseMunicipalityMissingSummary(t *testing.T) {
	_, err := ParseMunicipality(
		fixtureDoc(t, "municipality_broken.html"),
		Municipality{Code: "1", Name: "Broken"},
		&telemetry.RecordingAPI{},
	)

	var missing *MissingCellError
	require.ErrorAs(t, err, &missing)
	require.Equal(t, headerValid, missing.Header)
}

func TestParseMunicipalityPairsByRow(t *testing.T) {
	tel := &telemetry.RecordingAPI{}
	result, err := ParseMunicipality(
		fixtureDoc(t, "municipality_missing_votes.html"),
		Municipality{Code: "2", Name: "Chybějící"},
		tel,
	)
	require.NoError(t, err)

	// the party without a vote cell is dropped, its neighbours keep their own values
	require.Equal(t, []PartyVotes{
		{Party: "Občanská demokratická strana", Votes: "10"},
		{Party: "ANO 2011", Votes: "40"},
	}, result.Parties)

	warnings := tel.Find("warning", report_parse_municipality)
	require.Len(t, warnings, 1)
	require.Contains(t, warnings[0].Params, "Řád národa - Vlastenecká unie")
}

func TestParseMunicipalityDuplicateParty(t *testing.T) {
	tel := &telemetry.RecordingAPI{}
	result, err := ParseMunicipality(
		fixtureDoc(t, "municipality_duplicate_party.html"),
		Municipality{Code: "3", Name: "Zdvojená"},
		tel,
	)
	require.NoError(t, err)

	// the second row of a party is ignored, the first vote count stays
	require.Equal(t, []PartyVotes{
		{Party: "Občanská demokratická strana", Votes: "10"},
		{Party: "Řád národa - Vlastenecká unie", Votes: "9"},
		{Party: "ANO 2011", Votes: "40"},
	}, result.Parties)

	warnings := tel.Find("warning", report_parse_municipality)
	require.Len(t, warnings, 1)
	require.Contains(t, warnings[0].Params, "duplicate party")
	require.Contains(t, warnings[0].Params, "Občanská demokratická strana")
}

func TestResultRecord(t *testing.T) {
	result := Result{
		Code:       "1",
		Location:   "A",
		Registered: "10",
		Envelopes:  "8",
		Valid:      "7",
		Parties: []PartyVotes{
			{Party: "ANO 2011", Votes: "5"},
			{Party: "ODS", Votes: "2"},
		},
	}

	rec := result.Record()
	require.Equal(t,
		[]string{"code", "location", "registered", "envelopes", "valid", "ANO 2011", "ODS"},
		rec.Keys(),
	)
	votes, ok := rec.Get("ODS")
	require.True(t, ok)
	require.Equal(t, "2", votes)
}
