package results

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

const Delimiter = ';'

var ErrNoRecords = errors.New("no records to write")

func newWriter(w io.Writer) *csv.Writer {
	writer := csv.NewWriter(w)
	writer.Comma = Delimiter
	writer.UseCRLF = true
	return writer
}

// WriteCSV writes `header` followed by one row per record.
func WriteCSV(w io.Writer, header []string, records []Record) error {
	writer := newWriter(w)
	err := writer.Write(header)
	if err != nil {
		return err
	}
	for _, rec := range records {
		err = writer.Write(rec.Row(header))
		if err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteCSVFile derives the header from `records` and writes them to `path`,
// replacing whatever was there. Nothing is created when there are no records.
func WriteCSVFile(path string, records []Record) ([]string, error) {
	if len(records) == 0 {
		return nil, ErrNoRecords
	}
	header := Header(records)

	err := writeFile(path, func(w io.Writer) error {
		return WriteCSV(w, header, records)
	})
	if err != nil {
		return nil, err
	}
	return header, nil
}

// writeFile creates `path` and fills it with `write`, a failed write removes
// the file again so no truncated output is left behind.
func writeFile(path string, write func(w io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = write(f)
	if err == nil {
		err = f.Close()
	} else {
		f.Close()
	}
	if err != nil {
		os.Remove(path)
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// ReadCSV reads a file written by WriteCSV back into its header and rows.
func ReadCSV(r io.Reader) (header []string, rows [][]string, err error) {
	reader := csv.NewReader(r)
	reader.Comma = Delimiter

	all, err := reader.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(all) == 0 {
		return nil, nil, ErrNoRecords
	}
	return all[0], all[1:], nil
}

// ReadCSVFile is ReadCSV on the file at `path`.
func ReadCSVFile(path string) ([]string, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	return ReadCSV(f)
}
