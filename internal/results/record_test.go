package results

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func record(pairs ...string) Record {
	rec := NewRecord()
	for i := 0; i+1 < len(pairs); i += 2 {
		rec.Set(pairs[i], pairs[i+1])
	}
	return rec
}

func TestRecordSetKeepsPosition(t *testing.T) {
	rec := record("code", "1", "location", "A", "code", "2")
	require.Equal(t, []string{"code", "location"}, rec.Keys())
	value, ok := rec.Get("code")
	require.True(t, ok)
	require.Equal(t, "2", value)

	_, ok = rec.Get("missing")
	require.False(t, ok)
}

func TestRecordZeroValue(t *testing.T) {
	var rec Record
	rec.Set("code", "1")
	require.Equal(t, 1, rec.Len())
}

func TestHeaderUnion(t *testing.T) {
	records := []Record{
		record("code", "1", "location", "A", "ODS", "10", "ANO 2011", "20"),
		record("code", "2", "location", "B", "ANO 2011", "5", "SPD", "3"),
		record("code", "3", "location", "C", "Piráti", "1", "ODS", "4"),
	}

	require.Equal(t,
		[]string{"code", "location", "ODS", "ANO 2011", "SPD", "Piráti"},
		Header(records),
	)
	require.Empty(t, Header(nil))
}

func TestRow(t *testing.T) {
	header := []string{"code", "location", "ODS", "SPD"}
	rec := record("code", "2", "location", "B", "SPD", "3", "Zelení", "9")

	require.Equal(t, []string{"2", "B", "", "3"}, rec.Row(header))
}
