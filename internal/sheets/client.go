// Package sheets fetches lead batches exported from Google Sheets as CSV.
package sheets

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strings"

	"smartcaller_backend/platform/apperr"
	"smartcaller_backend/platform/config"
)

// ErrInvalidSheetURL is the message returned for URLs that are neither a
// Google Sheet nor a direct CSV export link.
const ErrInvalidSheetURL = "URL Google Sheet invalide (attendu: export CSV)."

// Client downloads and parses spreadsheet exports.
type Client struct {
	http    *http.Client
	maxRows int
}

// NewClient builds a client with the configured timeout and row cap.
func NewClient(cfg config.ImportConfig) *Client {
	return &Client{
		http:    &http.Client{Timeout: cfg.GetImportTimeout()},
		maxRows: cfg.GetImportMaxRows(),
	}
}

// ExportURL rewrites a Google Sheets edit URL into its CSV export form.
// Direct export URLs pass through unchanged; anything else is rejected.
func ExportURL(raw string) (string, error) {
	switch {
	case strings.Contains(raw, "spreadsheets"):
		return strings.Replace(raw, "/edit#gid=", "/export?format=csv&gid=", 1), nil
	case strings.Contains(raw, "export?format=csv"):
		return raw, nil
	default:
		return "", apperr.Validation(ErrInvalidSheetURL)
	}
}

// Fetch downloads the sheet and returns its rows keyed by the (lower-cased,
// trimmed) header names. Rows beyond the configured cap are dropped.
func (c *Client) Fetch(ctx context.Context, rawURL string) ([]map[string]string, error) {
	exportURL, err := ExportURL(rawURL)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, exportURL, nil)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, ErrInvalidSheetURL, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUpstream, "échec du téléchargement de la feuille", err).WithOp("sheets.Fetch")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperr.Upstream(fmt.Sprintf("échec du téléchargement de la feuille (HTTP %d)", resp.StatusCode)).WithOp("sheets.Fetch")
	}

	rows, err := c.parseCSV(resp.Body)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUpstream, "contenu CSV illisible", err).WithOp("sheets.Fetch")
	}
	return rows, nil
}

func (c *Client) parseCSV(r io.Reader) ([]map[string]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	for i, name := range header {
		header[i] = strings.ToLower(strings.TrimSpace(name))
	}

	var rows []map[string]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		row := make(map[string]string, len(header))
		for i, name := range header {
			if name == "" {
				continue
			}
			if i < len(record) {
				row[name] = strings.TrimSpace(record[i])
			} else {
				row[name] = ""
			}
		}
		rows = append(rows, row)

		if c.maxRows > 0 && len(rows) >= c.maxRows {
			break
		}
	}
	return rows, nil
}
