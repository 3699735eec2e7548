// Package registry loads the canonical property registry and the
// vendor-alias table from external files. Both are read fresh per
// processing run; load failures are reported to the caller, which
// decides whether to degrade to empty data.
package registry

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"immodok/internal/domain"
)

// objectColumns are the header names expected in the source table.
const (
	colObjectNumber = "object_number"
	colBuildingName = "building_name"
	colStreet       = "street"
	colZip          = "zip"
	colCity         = "city"
	colAliases      = "aliases"
)

// FileObjectSource reads ObjectRecords from a tabular file. The format
// is picked by extension: .xlsx workbooks, anything else CSV.
type FileObjectSource struct {
	path string
}

// NewFileObjectSource creates a FileObjectSource for the given path.
func NewFileObjectSource(path string) *FileObjectSource {
	return &FileObjectSource{path: path}
}

// LoadObjects reads and parses the registry file.
func (s *FileObjectSource) LoadObjects(_ context.Context) ([]domain.ObjectRecord, error) {
	if strings.EqualFold(filepath.Ext(s.path), ".xlsx") {
		return s.loadXLSX()
	}
	return s.loadCSV()
}

func (s *FileObjectSource) loadCSV() ([]domain.ObjectRecord, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("opening object registry: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading object registry header: %w", err)
	}
	idx := columnIndex(header)

	var objects []domain.ObjectRecord
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading object registry row: %w", err)
		}
		objects = append(objects, recordFromRow(row, idx))
	}
	return objects, nil
}

func (s *FileObjectSource) loadXLSX() ([]domain.ObjectRecord, error) {
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("opening object registry workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("reading object registry sheet: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	idx := columnIndex(rows[0])

	var objects []domain.ObjectRecord
	for _, row := range rows[1:] {
		objects = append(objects, recordFromRow(row, idx))
	}
	return objects, nil
}

func columnIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(strings.ToLower(name))] = i
	}
	return idx
}

func recordFromRow(row []string, idx map[string]int) domain.ObjectRecord {
	cell := func(col string) string {
		i, ok := idx[col]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	return domain.ObjectRecord{
		ObjectNumber: cell(colObjectNumber),
		BuildingName: cell(colBuildingName),
		Street:       cell(colStreet),
		Zip:          cell(colZip),
		City:         cell(colCity),
		Aliases:      splitAliases(cell(colAliases)),
	}
}

// splitAliases splits the |-separated alias list, dropping empties.
func splitAliases(s string) []string {
	var aliases []string
	for _, a := range strings.Split(s, "|") {
		if a = strings.TrimSpace(a); a != "" {
			aliases = append(aliases, a)
		}
	}
	return aliases
}
