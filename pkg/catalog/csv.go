package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/HerbHall/shirtsearch/pkg/models"
)

// csvHeaders returns the CSV column headers.
func csvHeaders() []string {
	return []string{"id", "name", "size", "color"}
}

// csvColumnCount is the number of columns in the CSV format.
const csvColumnCount = 4

// shirtToCSVRow converts a shirt to a CSV row (matching csvHeaders order).
func shirtToCSVRow(s models.Shirt) []string {
	return []string{s.ID, s.Name, string(s.Size), string(s.Color)}
}

// csvRowToShirt parses a CSV row into a Shirt.
func csvRowToShirt(row []string) (models.Shirt, error) {
	if len(row) != csvColumnCount {
		return models.Shirt{}, fmt.Errorf("expected %d columns, got %d", csvColumnCount, len(row))
	}
	s := models.Shirt{
		ID:    row[0],
		Name:  row[1],
		Size:  models.Size(row[2]),
		Color: models.Color(row[3]),
	}
	normalize(&s)
	return s, nil
}

// ReadCSV parses a catalog from CSV. The first record must be the
// id,name,size,color header.
func ReadCSV(r io.Reader) ([]models.Shirt, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("catalog: csv: missing header")
	}
	if err != nil {
		return nil, fmt.Errorf("catalog: csv header: %w", err)
	}
	if got, want := strings.ToLower(strings.Join(header, ",")), strings.Join(csvHeaders(), ","); got != want {
		return nil, fmt.Errorf("catalog: csv header %q, want %q", got, want)
	}

	var shirts []models.Shirt
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("catalog: csv: %w", err)
		}
		s, err := csvRowToShirt(row)
		if err != nil {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("catalog: csv line %d: %w", line, err)
		}
		shirts = append(shirts, s)
	}
	return shirts, nil
}

// WriteCSV writes shirts as CSV with a header row.
func WriteCSV(w io.Writer, shirts []models.Shirt) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeaders()); err != nil {
		return fmt.Errorf("catalog: write csv header: %w", err)
	}
	for i := range shirts {
		if err := cw.Write(shirtToCSVRow(shirts[i])); err != nil {
			return fmt.Errorf("catalog: write csv row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
