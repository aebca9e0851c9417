package commands

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"

	"vertexfx/internal/domain"
	"vertexfx/internal/geom"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatCSV  = "csv"
)

func checkFormat(f string) error {
	switch f {
	case formatText, formatJSON, formatCSV:
		return nil
	}
	return errors.Errorf("unknown format %q (want text, json or csv)", f)
}

func writeResult(w io.Writer, format string, res domain.SampleResult) error {
	switch format {
	case formatJSON:
		return writeJSON(w, res)
	case formatCSV:
		return writeCSV(w, res.Points)
	default:
		for _, p := range res.Points {
			fmt.Fprintln(w, p)
		}
		fmt.Fprintf(w, "points: %d  length: %.4f  fingerprint: %s\n", len(res.Points), res.Length, res.Fingerprint)
		return nil
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeCSV(w io.Writer, pts []geom.Point) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"x", "y", "z"}); err != nil {
		return err
	}
	for _, p := range pts {
		if err := cw.Write([]string{ftoa(p.X), ftoa(p.Y), ftoa(p.Z)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func ftoa(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }
