package ticktick

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/eZtaR1/ticktick-to-todoist/internal/clierr"
)

// metadataLines is the number of preamble lines a TickTick backup carries
// before the header row.
const metadataLines = 6

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadWarning records a data row that was skipped while reading.
type ReadWarning struct {
	Line int
	Err  error
}

// Read parses a TickTick backup file into records. Malformed data rows
// are skipped and reported as warnings; a bad header or an undecodable
// file is fatal.
func Read(path string) ([]Record, []ReadWarning, error) {
	data, err := os.ReadFile(path) //nolint:gosec // input path from CLI argument
	if err != nil {
		return nil, nil, clierr.Newf(clierr.IOError, "reading %s: %v", path, err)
	}

	text, err := decode(data)
	if err != nil {
		return nil, nil, err
	}

	body, err := skipMetadata(text)
	if err != nil {
		return nil, nil, err
	}

	r := csv.NewReader(strings.NewReader(body))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		return nil, nil, clierr.Newf(clierr.FormatError, "reading header row: %v", err)
	}
	if !headerMatches(header) {
		return nil, nil, clierr.New(clierr.FormatError,
			"invalid file: header does not match the TickTick backup format")
	}

	var records []Record
	var warnings []ReadWarning
	// Data rows start after the metadata preamble and the header.
	line := metadataLines + 1
	for {
		line++
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, clierr.Newf(clierr.FormatError, "reading row: %v", err)
		}
		if len(row) != NumColumns {
			warnings = append(warnings, ReadWarning{
				Line: line,
				Err:  fmt.Errorf("expected %d columns, got %d", NumColumns, len(row)),
			})
			continue
		}
		records = append(records, FromRow(row))
	}

	return records, warnings, nil
}

// decode interprets raw file bytes as UTF-8 (BOM tolerated), falling back
// to ISO-8859-1 when the bytes are not valid UTF-8.
func decode(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if utf8.Valid(data) {
		return string(data), nil
	}

	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return "", clierr.Newf(clierr.EncodingError,
			"could not decode file as UTF-8 or ISO-8859-1: %v", err)
	}
	return string(decoded), nil
}

// skipMetadata drops the fixed preamble lines preceding the header row.
func skipMetadata(text string) (string, error) {
	rest := text
	for i := 0; i < metadataLines; i++ {
		idx := strings.IndexByte(rest, '\n')
		if idx < 0 {
			return "", clierr.Newf(clierr.FormatError,
				"invalid file: expected %d metadata lines before the header", metadataLines)
		}
		rest = rest[idx+1:]
	}
	return rest, nil
}

func headerMatches(header []string) bool {
	if len(header) != len(Header) {
		return false
	}
	for i, field := range header {
		if strings.TrimSpace(field) != Header[i] {
			return false
		}
	}
	return true
}
