// SPDX-License-Identifier: MIT
// Package: table
//
// tsv.go — tab-separated input.

package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// ReadTSV loads a Frame from tab-separated text. The first line is the
// header; its first field names the entity-ID column and the remaining
// fields become columns. Every record must have the header's field count.
func ReadTSV(r io.Reader) (*Frame, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.LazyQuotes = true
	cr.ReuseRecord = false

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("ReadTSV: empty input: %w", ErrMalformed)
	}
	if err != nil {
		return nil, fmt.Errorf("ReadTSV: header: %w: %w", ErrMalformed, err)
	}
	if len(header) < 1 {
		return nil, fmt.Errorf("ReadTSV: header has no fields: %w", ErrMalformed)
	}

	var ids []string
	cols := make([][]string, len(header)-1)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ReadTSV: %w: %w", ErrMalformed, err)
		}
		ids = append(ids, rec[0])
		for k := range cols {
			cols[k] = append(cols[k], rec[k+1])
		}
	}

	f := NewFrame(ids)
	for k, name := range header[1:] {
		values := cols[k]
		if values == nil {
			values = []string{}
		}
		if err := f.AddColumn(name, values); err != nil {
			return nil, fmt.Errorf("ReadTSV: %w", err)
		}
	}

	return f, nil
}
