// SPDX-License-Identifier: MIT

// Package table defines a small labeled, column-typed table and its YAML
// document form. A *Table implements matrix.Tabular, so it can be ingested
// with matrix.FromTable once every column is numeric.
//
// This file declares Kind, Column, Table, sentinel errors and the New
// constructor.
//
// Errors:
//
//	ErrEmptyName     - a column has an empty name.
//	ErrDuplicateName - two columns share a name.
//	ErrColumnLength  - columns have different lengths.
//	ErrCellType      - a value does not fit its column kind.
//	ErrUnknownColumn - Select, Drop or Partition named a missing column.
//	ErrUnknownKind   - a YAML document names an unknown kind.
package table

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/0xdomyz/sklearn-collection/matrix"
)

// Sentinel errors for table operations.
var (
	ErrEmptyName     = errors.New("table: column name is empty")
	ErrDuplicateName = errors.New("table: duplicate column name")
	ErrColumnLength  = errors.New("table: column lengths differ")
	ErrCellType      = errors.New("table: value does not match column kind")
	ErrUnknownColumn = errors.New("table: unknown column")
	ErrUnknownKind   = errors.New("table: unknown column kind")
)

// Kind is the declared type of a column.
type Kind uint8

const (
	KindFloat  Kind = iota + 1 // float64 cells
	KindInt                    // int64 cells
	KindBool                   // bool cells
	KindString                 // string cells
	KindTime                   // time.Time cells
)

var kindNames = map[Kind]string{
	KindFloat:  "float",
	KindInt:    "int",
	KindBool:   "bool",
	KindString: "string",
	KindTime:   "time",
}

// String returns the YAML name of the kind.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}

	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Numeric reports whether cells of this kind are numbers. Bool is not numeric.
func (k Kind) Numeric() bool { return k == KindFloat || k == KindInt }

// ParseKind maps a YAML name back to its Kind.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}

	return 0, fmt.Errorf("%q: %w", s, ErrUnknownKind)
}

// Column is a named, typed sequence of cells. A nil value is a missing cell.
// Accepted Go values per kind (after New):
//
//	float  → float64     int  → int64      bool → bool
//	string → string      time → time.Time
type Column struct {
	Name   string
	Kind   Kind
	Values []any
}

// Table is an immutable, rectangular set of columns.
type Table struct {
	cols  []Column
	index map[string]int
	rows  int
}

var _ matrix.Tabular = (*Table)(nil)

// New validates and copies cols into a Table.
// Stage 1: names non-empty and unique.
// Stage 2: equal lengths.
// Stage 3: coerce every value to its column kind.
// Complexity: O(rows*cols).
func New(cols ...Column) (*Table, error) {
	t := &Table{
		cols:  make([]Column, 0, len(cols)),
		index: make(map[string]int, len(cols)),
	}
	for j, c := range cols {
		if c.Name == "" {
			return nil, fmt.Errorf("column %d: %w", j, ErrEmptyName)
		}
		if _, dup := t.index[c.Name]; dup {
			return nil, fmt.Errorf("column %q: %w", c.Name, ErrDuplicateName)
		}
		if j == 0 {
			t.rows = len(c.Values)
		} else if len(c.Values) != t.rows {
			return nil, fmt.Errorf("column %q has %d values, want %d: %w", c.Name, len(c.Values), t.rows, ErrColumnLength)
		}
		if _, ok := kindNames[c.Kind]; !ok {
			return nil, fmt.Errorf("column %q: %w", c.Name, ErrUnknownKind)
		}

		vals := make([]any, len(c.Values))
		for i, v := range c.Values {
			cv, err := coerce(c.Kind, v)
			if err != nil {
				return nil, fmt.Errorf("column %q row %d: %w", c.Name, i, err)
			}
			vals[i] = cv
		}
		t.index[c.Name] = j
		t.cols = append(t.cols, Column{Name: c.Name, Kind: c.Kind, Values: vals})
	}

	return t, nil
}

// NumRows returns the number of rows.
func (t *Table) NumRows() int { return t.rows }

// NumCols returns the number of columns.
func (t *Table) NumCols() int { return len(t.cols) }

// ColumnName returns the name of column j.
func (t *Table) ColumnName(j int) string { return t.cols[j].Name }

// ColumnNumeric reports whether column j is numeric.
func (t *Table) ColumnNumeric(j int) bool { return t.cols[j].Kind.Numeric() }

// Cell returns the numeric value at (i, j); ok is false for missing cells
// and for non-numeric columns.
func (t *Table) Cell(i, j int) (float64, bool) {
	switch v := t.cols[j].Values[i].(type) {
	case float64:
		return v, true
	case int64:
		return float64(v), true
	}

	return 0, false
}

// Names returns the column names in order.
func (t *Table) Names() []string {
	out := make([]string, len(t.cols))
	for j, c := range t.cols {
		out[j] = c.Name
	}

	return out
}

// Column returns a copy of the named column.
func (t *Table) Column(name string) (Column, error) {
	j, ok := t.index[name]
	if !ok {
		return Column{}, fmt.Errorf("%q: %w", name, ErrUnknownColumn)
	}
	c := t.cols[j]

	return Column{Name: c.Name, Kind: c.Kind, Values: append([]any(nil), c.Values...)}, nil
}

// Select returns a new Table with the named columns, in the given order.
func (t *Table) Select(names ...string) (*Table, error) {
	cols := make([]Column, 0, len(names))
	for _, name := range names {
		c, err := t.Column(name)
		if err != nil {
			return nil, err
		}
		cols = append(cols, c)
	}

	return New(cols...)
}

// Drop returns a new Table without the named columns.
func (t *Table) Drop(names ...string) (*Table, error) {
	skip := make(map[string]bool, len(names))
	for _, name := range names {
		if _, ok := t.index[name]; !ok {
			return nil, fmt.Errorf("%q: %w", name, ErrUnknownColumn)
		}
		skip[name] = true
	}
	keep := make([]string, 0, len(t.cols))
	for _, c := range t.cols {
		if !skip[c.Name] {
			keep = append(keep, c.Name)
		}
	}

	return t.Select(keep...)
}

// Numeric returns a new Table holding only the numeric columns.
func (t *Table) Numeric() (*Table, error) {
	keep := make([]string, 0, len(t.cols))
	for _, c := range t.cols {
		if c.Kind.Numeric() {
			keep = append(keep, c.Name)
		}
	}

	return t.Select(keep...)
}

// Part is one group produced by Partition.
type Part struct {
	Key   any    // partition cell value; nil groups the missing cells
	Table *Table // rows with that key, without the key column
}

// Partition splits t into one Table per distinct value of the named column,
// in ascending key order (missing keys first, then NaN). The key column is dropped
// from every part and row order within a part is preserved.
// Complexity: O(rows*cols + k log k) for k distinct keys.
func (t *Table) Partition(name string) ([]Part, error) {
	key, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	rest, err := t.Drop(name)
	if err != nil {
		return nil, err
	}

	groups := make([]*group, 0)
	byKey := make(map[any]*group)
	for i, k := range key.Values {
		gk := groupKey(k)
		g, seen := byKey[gk]
		if !seen {
			g = &group{key: k}
			byKey[gk] = g
			groups = append(groups, g)
		}
		g.rows = append(g.rows, i)
	}
	slices.SortStableFunc(groups, func(a, b *group) int { return compareKeys(a.key, b.key) })

	parts := make([]Part, 0, len(groups))
	for _, g := range groups {
		sub, err := rest.pick(g.rows)
		if err != nil {
			return nil, err
		}
		parts = append(parts, Part{Key: g.key, Table: sub})
	}

	return parts, nil
}

// group collects the rows sharing one partition key.
type group struct {
	key  any
	rows []int
}

// nanKey stands in for every NaN key, which never equals itself.
type nanKey struct{}

// groupKey returns the map key used to group cell value v.
func groupKey(v any) any {
	if f, ok := v.(float64); ok && math.IsNaN(f) {
		return nanKey{}
	}

	return v
}

// pick returns a new Table holding the given row indices, in order.
func (t *Table) pick(idx []int) (*Table, error) {
	cols := make([]Column, len(t.cols))
	for j, c := range t.cols {
		vals := make([]any, len(idx))
		for k, i := range idx {
			vals[k] = c.Values[i]
		}
		cols[j] = Column{Name: c.Name, Kind: c.Kind, Values: vals}
	}

	return New(cols...)
}

// compareKeys orders partition keys of one column kind; nil sorts first.
func compareKeys(a, b any) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	switch x := a.(type) {
	case float64:
		return cmp.Compare(x, b.(float64))
	case int64:
		return cmp.Compare(x, b.(int64))
	case string:
		return cmp.Compare(x, b.(string))
	case time.Time:
		return x.Compare(b.(time.Time))
	case bool:
		switch y := b.(bool); {
		case x == y:
			return 0
		case !x:
			return -1
		}
		return 1
	}

	return 0
}

// coerce converts v to the canonical Go type of kind. nil passes through.
func coerce(kind Kind, v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	switch kind {
	case KindFloat:
		if f, ok := toFloat(v); ok {
			return f, nil
		}
	case KindInt:
		if f, ok := toFloat(v); ok && f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64 {
			return int64(f), nil
		}
	case KindBool:
		if b, ok := v.(bool); ok {
			return b, nil
		}
	case KindString:
		if s, ok := v.(string); ok {
			return s, nil
		}
	case KindTime:
		switch tv := v.(type) {
		case time.Time:
			return tv, nil
		case string:
			return parseTime(tv)
		}
	}

	return nil, fmt.Errorf("%T for %s: %w", v, kind, ErrCellType)
}

// toFloat accepts the numeric Go types a YAML decoder or a caller may supply.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case uint:
		return float64(n), true
	}

	return 0, false
}

// timeLayouts are tried in order when a time cell arrives as text.
var timeLayouts = []string{time.RFC3339Nano, time.DateTime, time.DateOnly}

func parseTime(s string) (any, error) {
	for _, layout := range timeLayouts {
		if tv, err := time.Parse(layout, s); err == nil {
			return tv, nil
		}
	}

	return nil, fmt.Errorf("time %q: %w", s, ErrCellType)
}
