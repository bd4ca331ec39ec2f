package query

import (
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/ozank/collegium/internal/pkg/apperrors"
)

// Clause connectors of the textual filter mini-language.
const (
	andToken = "and::"
	orToken  = "or::"
)

// Comparison operators, longest first so that ">=" wins over ">".
var operators = []struct {
	token string
	sql   string
}{
	{"==", "="},
	{"!=", "<>"},
	{">=", ">="},
	{"<=", "<="},
	{">", ">"},
	{"<", "<"},
}

type clause struct {
	expr string
	arg  interface{}
	or   bool
}

// Filter is a compiled boolean predicate ready to apply to a query.
type Filter struct {
	clauses []clause
}

// ParseFilter compiles a raw filter string into a Filter. Clauses are
// joined with "and::" / "or::" and each clause compares one exposed field
// against a literal with ==, !=, >, >=, < or <=. Field names resolve
// through fm; unknown fields fail the parse.
//
//	age>=18and::departmentId==3or::name==Algebra
func ParseFilter(raw string, fm FieldMap) (*Filter, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	f := &Filter{}
	rest := raw
	or := false
	for rest != "" {
		part, nextOr, remainder := splitNextClause(rest)
		c, err := parseClause(part, fm)
		if err != nil {
			return nil, err
		}
		c.or = or
		f.clauses = append(f.clauses, c)
		or = nextOr
		rest = remainder
	}
	return f, nil
}

// splitNextClause cuts the leading clause off raw, reporting whether the
// following clause is or-connected.
func splitNextClause(raw string) (part string, nextOr bool, rest string) {
	andIdx := strings.Index(raw, andToken)
	orIdx := strings.Index(raw, orToken)

	switch {
	case andIdx == -1 && orIdx == -1:
		return raw, false, ""
	case orIdx == -1 || (andIdx != -1 && andIdx < orIdx):
		return raw[:andIdx], false, raw[andIdx+len(andToken):]
	default:
		return raw[:orIdx], true, raw[orIdx+len(orToken):]
	}
}

func parseClause(part string, fm FieldMap) (clause, error) {
	part = strings.TrimSpace(part)
	for _, op := range operators {
		idx := strings.Index(part, op.token)
		if idx <= 0 {
			continue
		}
		field := strings.TrimSpace(part[:idx])
		value := strings.TrimSpace(part[idx+len(op.token):])
		if value == "" {
			break
		}

		column, err := fm.Column(field)
		if err != nil {
			return clause{}, err
		}
		return clause{
			expr: fmt.Sprintf("%s %s ?", column, op.sql),
			arg:  convertLiteral(value),
		}, nil
	}
	return clause{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidFilter, part)
}

// convertLiteral turns the textual literal into the narrowest Go value so
// the driver compares numbers as numbers.
func convertLiteral(value string) interface{} {
	if n, err := strconv.ParseInt(value, 10, 64); err == nil {
		return n
	}
	if fl, err := strconv.ParseFloat(value, 64); err == nil {
		return fl
	}
	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}
	return value
}

// Where builds a single-clause filter programmatically, for callers that
// know their column names and do not go through a field map.
func Where(expr string, arg interface{}) *Filter {
	return &Filter{clauses: []clause{{expr: expr, arg: arg}}}
}

// And appends an and-connected clause.
func (f *Filter) And(expr string, arg interface{}) *Filter {
	f.clauses = append(f.clauses, clause{expr: expr, arg: arg})
	return f
}

// Apply attaches the filter's conditions to db as one grouped condition,
// so surrounding conditions always AND against the whole filter and an
// or-connected clause cannot escape them.
func (f *Filter) Apply(db *gorm.DB) *gorm.DB {
	if f.Empty() {
		return db
	}

	var sql strings.Builder
	args := make([]interface{}, 0, len(f.clauses))
	sql.WriteByte('(')
	for i, c := range f.clauses {
		if i > 0 {
			if c.or {
				sql.WriteString(" OR ")
			} else {
				sql.WriteString(" AND ")
			}
		}
		sql.WriteString(c.expr)
		args = append(args, c.arg)
	}
	sql.WriteByte(')')
	return db.Where(sql.String(), args...)
}

// Empty reports whether the filter has no clauses.
func (f *Filter) Empty() bool {
	return f == nil || len(f.clauses) == 0
}
