package value

import (
	"fmt"

	"github.com/chdriver/chwire/chtype"
	"github.com/chdriver/chwire/errs"
)

// Validate runs t.Validate() and then a structural value-vs-type check,
// per spec.md §4.2's validate_value(v). It is the only entry point callers
// need: there is no separate "validate the type, then validate the value"
// two-step for consumers of this package.
func Validate(v Value, t *chtype.Type) error {
	if err := t.Validate(); err != nil {
		return err
	}

	return validateValue(v, t)
}

func validateValue(v Value, t *chtype.Type) error {
	switch t.Kind() {
	case chtype.KindLowCardinality:
		// LowCardinality is a wire-encoding detail, not a distinct value
		// variant: a value conforms to LowCardinality(T) iff it conforms
		// to T (Null included, transitively, when T is Nullable).
		return validateValue(v, t.Elem())

	case chtype.KindNullable:
		if v.IsNull() {
			return nil
		}

		return validateValue(v, t.Elem())
	}

	if v.IsNull() {
		return fmt.Errorf("%w: Null is not a valid %s value", errs.ErrTypeMismatch, t)
	}

	if v.Kind() != t.Kind() {
		return fmt.Errorf("%w: expected %s, got %s", errs.ErrTypeMismatch, t.Kind(), v.Kind())
	}

	switch t.Kind() {
	case chtype.KindDecimal32, chtype.KindDecimal64, chtype.KindDecimal128, chtype.KindDecimal256:
		if v.Scale() != t.Scale() {
			return fmt.Errorf("%w: %s scale %d does not match value scale %d", errs.ErrTypeMismatch, t.Kind(), t.Scale(), v.Scale())
		}

	case chtype.KindDateTime:
		if v.Loc().String() != t.Location().String() {
			return fmt.Errorf("%w: DateTime timezone %s does not match value timezone %s", errs.ErrTypeMismatch, t.Location(), v.Loc())
		}

	case chtype.KindDateTime64:
		if v.Scale() != t.Scale() {
			return fmt.Errorf("%w: DateTime64 precision %d does not match value precision %d", errs.ErrTypeMismatch, t.Scale(), v.Scale())
		}
		if v.Loc().String() != t.Location().String() {
			return fmt.Errorf("%w: DateTime64 timezone %s does not match value timezone %s", errs.ErrTypeMismatch, t.Location(), v.Loc())
		}

	case chtype.KindEnum8, chtype.KindEnum16:
		code := int16(v.Int())
		found := false
		for _, m := range t.Members() {
			if m.Value == code {
				found = true

				break
			}
		}
		if !found {
			return fmt.Errorf("%w: %d is not a member of %s", errs.ErrTypeMismatch, code, t)
		}

	case chtype.KindFixedString:
		if len(v.Str()) > t.Size() {
			return fmt.Errorf("%w: FixedString(%d) value length %d overflows", errs.ErrTypeMismatch, t.Size(), len(v.Str()))
		}

	case chtype.KindArray:
		for i, e := range v.Elems() {
			if err := validateValue(e, t.Elem()); err != nil {
				return fmt.Errorf("array element %d: %w", i, err)
			}
		}

	case chtype.KindTuple:
		elems := v.Elems()
		want := t.Elems()
		if len(elems) != len(want) {
			return fmt.Errorf("%w: Tuple of %d elements does not match value of %d elements", errs.ErrTypeMismatch, len(want), len(elems))
		}
		for i, e := range elems {
			if err := validateValue(e, want[i]); err != nil {
				return fmt.Errorf("tuple element %d: %w", i, err)
			}
		}

	case chtype.KindMap:
		keys, vals := v.MapKeys(), v.MapVals()
		if len(keys) != len(vals) {
			return fmt.Errorf("%w: Map keys/values length mismatch %d/%d", errs.ErrTypeMismatch, len(keys), len(vals))
		}
		for i, k := range keys {
			if err := validateValue(k, t.Key()); err != nil {
				return fmt.Errorf("map key %d: %w", i, err)
			}
		}
		for i, val := range vals {
			if err := validateValue(val, t.Val()); err != nil {
				return fmt.Errorf("map value %d: %w", i, err)
			}
		}
	}

	return nil
}
