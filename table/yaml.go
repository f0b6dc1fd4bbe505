// SPDX-License-Identifier: MIT
// Package table - YAML document form.
//
// Document layout:
//
//	columns:
//	  - name: a
//	    kind: float
//	    values: [1, 2.5, null]
//	  - name: when
//	    kind: time
//	    values: [2024-01-01, 2024-01-02, 2024-01-03]
//
// Time cells are written as RFC 3339 timestamps; date-only and
// "2006-01-02 15:04:05" text is accepted on read.

package table

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type columnDoc struct {
	Name   string `yaml:"name"`
	Kind   Kind   `yaml:"kind"`
	Values []any  `yaml:"values"`
}

type tableDoc struct {
	Columns []columnDoc `yaml:"columns"`
}

// UnmarshalYAML decodes a kind name ("float", "int", ...).
func (k *Kind) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseKind(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*k = parsed

	return nil
}

// MarshalYAML encodes the kind by name.
func (k Kind) MarshalYAML() (any, error) {
	if _, ok := kindNames[k]; !ok {
		return nil, fmt.Errorf("%s: %w", k, ErrUnknownKind)
	}

	return k.String(), nil
}

// UnmarshalYAML decodes a table document and validates it through New.
func (t *Table) UnmarshalYAML(value *yaml.Node) error {
	var doc tableDoc
	if err := value.Decode(&doc); err != nil {
		return err
	}
	cols := make([]Column, len(doc.Columns))
	for j, c := range doc.Columns {
		cols[j] = Column{Name: c.Name, Kind: c.Kind, Values: c.Values}
	}
	built, err := New(cols...)
	if err != nil {
		return err
	}
	*t = *built

	return nil
}

// MarshalYAML encodes the table as a columns document.
func (t *Table) MarshalYAML() (any, error) {
	doc := tableDoc{Columns: make([]columnDoc, len(t.cols))}
	for j, c := range t.cols {
		doc.Columns[j] = columnDoc{Name: c.Name, Kind: c.Kind, Values: c.Values}
	}

	return doc, nil
}

// DecodeYAML reads one table document from r.
func DecodeYAML(r io.Reader) (*Table, error) {
	var t Table
	if err := yaml.NewDecoder(r).Decode(&t); err != nil {
		return nil, fmt.Errorf("failed to parse table: %w", err)
	}

	return &t, nil
}

// EncodeYAML writes t to w as a table document.
func EncodeYAML(w io.Writer, t *Table) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(t); err != nil {
		return fmt.Errorf("failed to encode table: %w", err)
	}

	return enc.Close()
}
