package query

import (
	"fmt"
	"strings"

	"github.com/ozank/collegium/internal/pkg/apperrors"
)

// FieldMap is the allow-list that stands between a DTO view and the
// database. Filter and order expressions arrive written against the view's
// exposed field names; the map resolves them to columns. Include names
// resolve to eager-load paths. Anything not listed is rejected, which keeps
// the property-correspondence precondition explicit instead of relying on
// runtime reflection.
type FieldMap struct {
	fields    map[string]string
	relations map[string]string
}

// NewFieldMap builds a FieldMap from exposed-name to column and
// exposed-name to preload-path tables. Lookup is case-insensitive.
func NewFieldMap(fields map[string]string, relations map[string]string) FieldMap {
	fm := FieldMap{
		fields:    make(map[string]string, len(fields)),
		relations: make(map[string]string, len(relations)),
	}
	for name, column := range fields {
		fm.fields[strings.ToLower(name)] = column
	}
	for name, path := range relations {
		fm.relations[strings.ToLower(name)] = path
	}
	return fm
}

// Column resolves an exposed field name to its database column.
func (fm FieldMap) Column(field string) (string, error) {
	column, ok := fm.fields[strings.ToLower(strings.TrimSpace(field))]
	if !ok {
		return "", fmt.Errorf("%w: %q", apperrors.ErrUnknownField, field)
	}
	return column, nil
}

// Preload resolves an exposed include name to its eager-load path.
func (fm FieldMap) Preload(relation string) (string, error) {
	path, ok := fm.relations[strings.ToLower(strings.TrimSpace(relation))]
	if !ok {
		return "", fmt.Errorf("%w: %q", apperrors.ErrUnknownRelation, relation)
	}
	return path, nil
}
