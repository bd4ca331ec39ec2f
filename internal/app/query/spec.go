package query

import (
	"fmt"

	"gorm.io/gorm"
)

// Options is the DTO-shaped query input collected at the HTTP boundary:
// a raw filter string, include names and an order field, all written
// against the exposed field names of a DTO view.
type Options struct {
	Filter   string
	Includes []string
	OrderBy  string
	Desc     bool
}

// Empty reports whether no query input was supplied.
func (o Options) Empty() bool {
	return o.Filter == "" && len(o.Includes) == 0 && o.OrderBy == ""
}

// Spec is the entity-shaped query produced from Options through a view's
// FieldMap: compiled conditions, eager-load paths and ordering that can be
// applied directly to the persistence layer.
type Spec struct {
	Filter   *Filter
	Preloads []string
	OrderBy  string
	Desc     bool
}

// Build validates and translates DTO-shaped Options into an entity-shaped
// Spec. Every referenced field and relation must appear in fm.
func Build(opts Options, fm FieldMap) (Spec, error) {
	var spec Spec

	filter, err := ParseFilter(opts.Filter, fm)
	if err != nil {
		return Spec{}, err
	}
	spec.Filter = filter

	for _, include := range opts.Includes {
		path, err := fm.Preload(include)
		if err != nil {
			return Spec{}, err
		}
		spec.Preloads = append(spec.Preloads, path)
	}

	if opts.OrderBy != "" {
		column, err := fm.Column(opts.OrderBy)
		if err != nil {
			return Spec{}, err
		}
		spec.OrderBy = column
		spec.Desc = opts.Desc
	}

	return spec, nil
}

// Apply attaches conditions, preloads and ordering to db.
func (s Spec) Apply(db *gorm.DB) *gorm.DB {
	db = s.Filter.Apply(db)
	for _, path := range s.Preloads {
		db = db.Preload(path)
	}
	if s.OrderBy != "" {
		direction := "ASC"
		if s.Desc {
			direction = "DESC"
		}
		db = db.Order(fmt.Sprintf("%s %s", s.OrderBy, direction))
	}
	return db
}

// HasFilter reports whether the spec carries conditions.
func (s Spec) HasFilter() bool { return !s.Filter.Empty() }

// HasOrder reports whether the spec carries ordering.
func (s Spec) HasOrder() bool { return s.OrderBy != "" }

// HasPreloads reports whether the spec carries eager loads.
func (s Spec) HasPreloads() bool { return len(s.Preloads) > 0 }
