package todoist

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
)

const fileMode = 0o600

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// WriteFile writes a Todoist import file: UTF-8 with BOM, CRLF line
// endings, header row first. Todoist's importer expects exactly this
// encoding; a BOM-less file mangles non-ASCII content on import.
func WriteFile(path string, rows []Row) error {
	var buf bytes.Buffer
	buf.Write(utf8BOM)

	w := csv.NewWriter(&buf)
	w.UseCRLF = true
	if err := w.Write(Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, r := range rows {
		if err := w.Write(r.Fields()); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("writing rows: %w", err)
	}

	return os.WriteFile(path, buf.Bytes(), fileMode)
}
