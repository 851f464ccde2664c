package ndarray

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Expr is one index expression: Int, Slice, or Ellipsis.
// Expressions are consumed in order by Array.Select.
type Expr interface {
	String() string
	isExpr()
}

// Int is an integer index expression on axis 0.
type Int int

func (i Int) String() string { return strconv.Itoa(int(i)) }

func (Int) isExpr() {}

// EllipsisMarker is the type of Ellipsis.
type EllipsisMarker struct{}

// Ellipsis selects the whole view unchanged.
var Ellipsis EllipsisMarker

func (EllipsisMarker) String() string { return "..." }

func (EllipsisMarker) isExpr() {}

// ParseExprs parses a comma separated index expression such as
// "2, 1:11:2, -1" or "...,0:-1:2@1". A slice is written start:stop[:step][@dim].
func ParseExprs(src string) ([]Expr, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return nil, nil
	}

	parts := strings.Split(src, ",")
	exprs := make([]Expr, 0, len(parts))
	for pos, raw := range parts {
		p := strings.TrimSpace(raw)
		e, err := parseExpr(p)
		if err != nil {
			return nil, errors.Wrapf(err, "expression %d (%q)", pos, p)
		}
		exprs = append(exprs, e)
	}
	return exprs, nil
}

func parseExpr(p string) (Expr, error) {
	if p == "..." {
		return Ellipsis, nil
	}
	if !strings.Contains(p, ":") {
		i, err := strconv.Atoi(p)
		if err != nil {
			return nil, errors.Wrap(err, "integer index")
		}
		return Int(i), nil
	}

	s := Slice{Step: 1}
	if at := strings.IndexByte(p, '@'); at >= 0 {
		d, err := strconv.Atoi(p[at+1:])
		if err != nil {
			return nil, errors.Wrap(err, "slice axis")
		}
		s.Dim = d
		p = p[:at]
	}

	fields := strings.Split(p, ":")
	if len(fields) > 3 {
		return nil, errors.Errorf("too many ':' in slice %q", p)
	}
	dst := []*int{&s.Start, &s.Stop, &s.Step}
	for i, f := range fields {
		if f == "" {
			return nil, errors.Errorf("empty slice field %d in %q", i, p)
		}
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, errors.Wrap(err, "slice field")
		}
		*dst[i] = v
	}
	return s, nil
}
