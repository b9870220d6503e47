// Package export writes groove geometry as CSV coordinate tables and
// reads them back.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/zhk0567/groove"
	"gonum.org/v1/gonum/spatial/r2"
)

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

// WritePoints writes a two column X,Y table for an arbitrary point
// sequence. Centerline and outline exports are this table.
func WritePoints(w io.Writer, pts []r2.Vec) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"X", "Y"}); err != nil {
		return err
	}
	for _, p := range pts {
		if err := cw.Write([]string{formatCoord(p.X), formatCoord(p.Y)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteBoundaries writes the left and right flank ordinates keyed by the
// shared axial coordinate, one row per sample.
func WriteBoundaries(w io.Writer, pairs []groove.BoundaryPair) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"X", "Y_Left", "Y_Right"}); err != nil {
		return err
	}
	for _, p := range pairs {
		row := []string{formatCoord(p.Left.X), formatCoord(p.Left.Y), formatCoord(p.Right.Y)}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// CreatePoints writes pts as an X,Y CSV file at path.
func CreatePoints(path string, pts []r2.Vec) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WritePoints(f, pts)
}

// CreateBoundaries writes the boundary table as a CSV file at path.
func CreateBoundaries(path string, pairs []groove.BoundaryPair) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteBoundaries(f, pairs)
}

// ReadPoints parses an X,Y table written by WritePoints. A leading
// header row is skipped when present.
func ReadPoints(r io.Reader) ([]r2.Vec, error) {
	rows, err := readRows(r, 2)
	if err != nil {
		return nil, err
	}
	pts := make([]r2.Vec, len(rows))
	for i, row := range rows {
		pts[i] = r2.Vec{X: row[0], Y: row[1]}
	}
	return pts, nil
}

// ReadBoundaries parses an X,Y_Left,Y_Right table written by
// WriteBoundaries.
func ReadBoundaries(r io.Reader) ([]groove.BoundaryPair, error) {
	rows, err := readRows(r, 3)
	if err != nil {
		return nil, err
	}
	pairs := make([]groove.BoundaryPair, len(rows))
	for i, row := range rows {
		pairs[i] = groove.BoundaryPair{
			Left:  r2.Vec{X: row[0], Y: row[1]},
			Right: r2.Vec{X: row[0], Y: row[2]},
		}
	}
	return pairs, nil
}

// readRows reads every record with exactly want numeric fields. The
// first record may be a textual header, which is dropped. Any later
// record that fails to parse is an error rather than a skip: these
// files are machine written, so damage should surface.
func readRows(r io.Reader, want int) ([][]float64, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	recs, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, errors.New("empty csv")
	}
	var rows [][]float64
	for i, rec := range recs {
		if len(rec) != want {
			return nil, fmt.Errorf("csv: row %d has %d fields, want %d", i+1, len(rec), want)
		}
		vals := make([]float64, want)
		ok := true
		for j, field := range rec {
			v, perr := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if perr != nil {
				ok = false
				break
			}
			vals[j] = v
		}
		if !ok {
			if i == 0 {
				continue // header row
			}
			return nil, fmt.Errorf("csv: row %d is not numeric", i+1)
		}
		rows = append(rows, vals)
	}
	if len(rows) == 0 {
		return nil, errors.New("csv: no valid points parsed")
	}
	return rows, nil
}
