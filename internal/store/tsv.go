package store

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// maxLineBytes bounds a single TSV line. Encoded sequences can be long.
const maxLineBytes = 16 << 20

// ReadTSV parses tab-separated records from r.
// source names the input in error messages.
func ReadTSV(r io.Reader, source string) ([]Record, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	records := []Record{}
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSuffix(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < 3 {
			return nil, &LoadError{
				Code:    ErrCodeFieldCount,
				Source:  source,
				Line:    ln,
				Message: fmt.Sprintf("expected 3 tab-separated fields, got %d", len(fields)),
			}
		}
		records = append(records, Record{
			Name:     fields[0],
			Organism: fields[1],
			Formula:  fields[2],
		})
	}
	if err := sc.Err(); err != nil {
		return nil, &LoadError{Code: ErrCodeRead, Source: source, Line: ln + 1, Message: "read failed", Err: err}
	}
	return records, nil
}

// LoadTSVFile reads the TSV dataset at path into a Store.
func LoadTSVFile(path string) (*Store, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeOpen, Source: path, Message: "cannot open dataset", Err: err}
	}
	defer fh.Close()

	records, err := ReadTSV(fh, path)
	if err != nil {
		return nil, err
	}
	return Load(records), nil
}
