package fs

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/bft-labs/fraglen/internal/domain"
	"github.com/bft-labs/fraglen/pkg/histogram"
)

// Supported data file formats.
const (
	FormatTSV  = "tsv"
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// dataRow is one (sample, length, count) triple in the long-format dump.
type dataRow struct {
	Sample         string `csv:"Sample"`
	FragmentLength int    `csv:"FragmentLength"`
	Count          int    `csv:"Count"`
}

// DataFileWriter implements ports.DataFileWriter by writing files into a
// directory.
type DataFileWriter struct {
	dir    string
	format string
}

// NewDataFileWriter creates a writer for dir. format is one of FormatTSV,
// FormatCSV or FormatJSON.
func NewDataFileWriter(dir, format string) (*DataFileWriter, error) {
	switch format {
	case FormatTSV, FormatCSV, FormatJSON:
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownFormat, format)
	}
	return &DataFileWriter{dir: dir, format: format}, nil
}

// Path returns the file WriteDataFile uses for baseName.
func (w *DataFileWriter) Path(baseName string) string {
	ext := ".txt"
	switch w.format {
	case FormatCSV:
		ext = ".csv"
	case FormatJSON:
		ext = ".json"
	}
	return filepath.Join(w.dir, baseName+ext)
}

// WriteDataFile writes ds to the data directory, replacing any earlier file.
func (w *DataFileWriter) WriteDataFile(ctx context.Context, ds histogram.Dataset, baseName string) error {
	var (
		data []byte
		err  error
	)
	switch w.format {
	case FormatJSON:
		data, err = json.MarshalIndent(ds, "", "  ")
	case FormatCSV:
		data, err = marshalRows(ds, ',')
	default:
		data, err = marshalRows(ds, '\t')
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", baseName, err)
	}
	return WriteFileAtomic(w.Path(baseName), data)
}

func marshalRows(ds histogram.Dataset, comma rune) ([]byte, error) {
	rows := make([]*dataRow, 0)
	for _, name := range ds.Names() {
		d := ds[name]
		for _, l := range d.Lengths() {
			rows = append(rows, &dataRow{Sample: name, FragmentLength: l, Count: d[l]})
		}
	}

	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	cw.Comma = comma
	if err := gocsv.MarshalCSV(&rows, gocsv.NewSafeCSVWriter(cw)); err != nil {
		return nil, err
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFileAtomic writes data to a temp file next to path and renames it
// into place, creating the parent directory if needed.
func WriteFileAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
