package chtype

import (
	"strconv"
	"strings"
	"time"
)

// String renders t in ClickHouse's canonical textual form. It is the round
// trip target of Parse: Parse(t.String()) == t for every valid t, except
// that a Decimal(p,s) parsed with a wide precision prints as its narrowed
// DecimalN(s) form (spec.md §8 property 1), and that the Enum8/Enum16 form
// printed here is rejected by Parse with errs.ErrUnsupported.
func (t *Type) String() string {
	switch t.kind {
	case KindFixedString:
		return "FixedString(" + strconv.Itoa(t.size) + ")"

	case KindDecimal32, KindDecimal64, KindDecimal128, KindDecimal256:
		return t.kind.String() + "(" + strconv.Itoa(int(t.scale)) + ")"

	case KindDateTime:
		if t.loc == nil || t.loc == time.UTC {
			return "DateTime"
		}

		return "DateTime('" + t.loc.String() + "')"

	case KindDateTime64:
		// Unlike DateTime, DateTime64's canonical form always carries an
		// explicit tz argument, even UTC (spec.md §8 S7).
		return "DateTime64(" + strconv.Itoa(int(t.scale)) + ", " + t.Location().String() + ")"

	case KindEnum8, KindEnum16:
		parts := make([]string, len(t.members))
		for i, m := range t.members {
			parts[i] = "'" + m.Name + "' = " + strconv.Itoa(int(m.Value))
		}

		return t.kind.String() + "(" + strings.Join(parts, ", ") + ")"

	case KindArray:
		return "Array(" + t.elem.String() + ")"

	case KindNullable:
		return "Nullable(" + t.elem.String() + ")"

	case KindLowCardinality:
		return "LowCardinality(" + t.elem.String() + ")"

	case KindMap:
		return "Map(" + t.key.String() + ", " + t.val.String() + ")"

	case KindTuple:
		parts := make([]string, len(t.elems))
		for i, e := range t.elems {
			parts[i] = e.String()
		}

		return "Tuple(" + strings.Join(parts, ", ") + ")"

	default:
		return t.kind.String()
	}
}
