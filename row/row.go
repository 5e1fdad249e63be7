// Package row implements spec.md §4.11: the surface a row mapper
// consumes, sitting above the per-column codecs in package column. It
// does not itself read or write bytes — it maps between a single row's
// positional column triples and the named pairs a row mapper emits.
package row

import (
	"fmt"

	"github.com/chdriver/chwire/chtype"
	"github.com/chdriver/chwire/errs"
	"github.com/chdriver/chwire/value"
)

// Column is one positional (name, type, value) triple feeding
// DeserializeRow.
type Column struct {
	Name  string
	Type  *chtype.Type
	Value value.Value
}

// NamedValue is one (name, value) pair emitted by SerializeRow.
type NamedValue struct {
	Name  string
	Value value.Value
}

// Row is the domain value a row mapper constructs from one block row:
// an ordered list of named values, matching the destination schema's
// column order.
type Row struct {
	Columns []NamedValue
}

// DeserializeRow consumes a positional list of named, typed columns for a
// single row and constructs a Row. Column order is preserved; names are
// informational here but may drive field matching in a generic row
// mapper built on top of this package.
func DeserializeRow(cols []Column) (Row, error) {
	out := make([]NamedValue, len(cols))
	for i, c := range cols {
		if err := value.Validate(c.Value, c.Type); err != nil {
			return Row{}, fmt.Errorf("column %q: %w", c.Name, err)
		}
		out[i] = NamedValue{Name: c.Name, Value: c.Value}
	}

	return Row{Columns: out}, nil
}

// SerializeRow emits the columns of r, ordered to match the schema it was
// built against.
func SerializeRow(r Row) []NamedValue {
	return r.Columns
}

// Scalar unwraps a single-column row, as used by scalar-row
// implementations (e.g. a single-column boolean query). It fails with a
// typed error for any row that does not carry exactly one column.
func Scalar(r Row) (value.Value, error) {
	if len(r.Columns) != 1 {
		return value.Value{}, fmt.Errorf("%w: scalar row requires exactly 1 column, got %d", errs.ErrTypeMismatch, len(r.Columns))
	}

	return r.Columns[0].Value, nil
}
