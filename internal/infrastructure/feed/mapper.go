package feed

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/ministore/backend/internal/domain"
)

// envelope is the wrapped feed shape produced by the spreadsheet converter.
// Some revisions name the array "items", others "products".
type envelope struct {
	GeneratedAt string             `json:"generated_at"`
	TotalItems  int                `json:"total_items"`
	Items       []domain.RawRecord `json:"items"`
	Products    []domain.RawRecord `json:"products"`
}

// decodeFeed parses a feed document in either of its two observed shapes: a
// JSON object wrapping the record array, or a bare array of records. An
// empty record list is a valid (empty) catalog, not an error.
func decodeFeed(body []byte) ([]domain.RawRecord, string, error) {
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	if len(trimmed) == 0 {
		return nil, "", fmt.Errorf("empty feed body")
	}

	if trimmed[0] == '[' {
		var records []domain.RawRecord
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, "", err
		}
		return records, "", nil
	}

	var env envelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, "", err
	}

	records := env.Items
	if records == nil {
		records = env.Products
	}
	if records == nil {
		return nil, "", fmt.Errorf("feed has no items or products array")
	}
	return records, env.GeneratedAt, nil
}
