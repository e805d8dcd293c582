package results

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteCSVDialect(t *testing.T) {
	records := []Record{
		record("code", "529303", "location", "Benešov", "registered", "13 104", "ODS", "1 052"),
		record("code", "532568", "location", "Bernartice", "registered", "191", "SPD", "13"),
	}

	var out bytes.Buffer
	err := WriteCSV(&out, Header(records), records)
	require.NoError(t, err)

	require.Equal(t,
		"code;location;registered;ODS;SPD\r\n"+
			"529303;Benešov;13 104;1 052;\r\n"+
			"532568;Bernartice;191;;13\r\n",
		out.String(),
	)
}

func TestWriteCSVQuotesDelimiter(t *testing.T) {
	records := []Record{record("location", "Praha; Nové Město", "note", `"x"`)}

	var out bytes.Buffer
	require.NoError(t, WriteCSV(&out, Header(records), records))
	require.Equal(t, "location;note\r\n\"Praha; Nové Město\";\"\"\"x\"\"\"\r\n", out.String())
}

func TestCSVRoundTrip(t *testing.T) {
	records := []Record{
		record("code", "529303", "location", "Benešov", "registered", "13 104", "Občanská demokratická strana", "1 052", "ANO 2011", "2 577"),
		record("code", "532568", "location", "Bernartice", "registered", "191", "ANO 2011", "80", "Svob.a př.dem.-T.Okamura (SPD)", "13"),
		record("code", "530743", "location", "Praha; centrum", "registered", "120"),
	}
	path := filepath.Join(t.TempDir(), "results_test.csv")

	header, err := WriteCSVFile(path, records)
	require.NoError(t, err)

	readHeader, rows, err := ReadCSVFile(path)
	require.NoError(t, err)
	require.Equal(t, header, readHeader)
	require.Len(t, rows, len(records))
	for i, rec := range records {
		require.Equal(t, rec.Row(header), rows[i])
		for _, key := range rec.Keys() {
			value, _ := rec.Get(key)
			require.Contains(t, rows[i], value)
		}
	}
}

func TestWriteCSVFileOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results_x.csv")
	require.NoError(t, os.WriteFile(path, []byte("old contents that are longer than the new ones\r\n"), 0600))

	_, err := WriteCSVFile(path, []Record{record("code", "1")})
	require.NoError(t, err)

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "code\r\n1\r\n", string(contents))
}

func TestWriteCSVFileEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results_x.csv")

	_, err := WriteCSVFile(path, nil)
	require.ErrorIs(t, err, ErrNoRecords)
	require.NoFileExists(t, path)
}

func TestWriteFileRemovesPartialOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results_x.csv")
	failure := errors.New("disk full")

	err := writeFile(path, func(w io.Writer) error {
		_, err := io.WriteString(w, "code;location\r\n529303;Ben")
		require.NoError(t, err)
		return failure
	})
	require.ErrorIs(t, err, failure)
	require.NoFileExists(t, path)
}
