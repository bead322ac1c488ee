// Package catalog describes every back-office screen: which backend resource
// it wraps, how its table is sorted and filtered, its form defaults and the
// reference options its form needs.
package catalog

import (
	"context"
	"io"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/talkincode/backoffice/internal/backend"
	"github.com/talkincode/backoffice/internal/domain"
	"github.com/talkincode/backoffice/pkg/tableview"
)

// Option is one choice of a reference select input
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// OptionLoader fills the choices for one form field
type OptionLoader struct {
	Field string
	Load  func(ctx context.Context) ([]Option, error)
}

// Form is what an empty create screen needs
type Form struct {
	Defaults interface{}         `json:"defaults"`
	Options  map[string][]Option `json:"options"`
}

// Meta describes a screen independently of its record type
type Meta struct {
	Name    string   `json:"name"`
	Plural  string   `json:"plural"`
	Label   string   `json:"label"`
	Display string   `json:"display"`
	Columns []string `json:"columns"`
}

// Descriptor is implemented by every Resource regardless of record type
type Descriptor interface {
	Meta() Meta
	Form(ctx context.Context) (Form, error)
	Export(ctx context.Context, w io.Writer, format Format, q tableview.Query) (int, error)
}

// Resource binds a backend wrapper to its list and form behaviour
type Resource[T domain.Entity] struct {
	API          *backend.Resource[T]
	Label        string
	DisplayField string
	Display      func(T) string
	Columns      map[string]tableview.Column[T]
	DefaultSort  string
	DefaultOrder tableview.Order
	Defaults     func() T
	Options      []OptionLoader
	// Check runs after tag validation for rules spanning several fields
	Check func(T) error
}

var _ Descriptor = (*Resource[domain.Product])(nil)

func (r *Resource[T]) Meta() Meta {
	cols := make([]string, 0, len(r.Columns))
	for k := range r.Columns {
		cols = append(cols, k)
	}
	sort.Strings(cols)
	return Meta{
		Name:    r.API.Name,
		Plural:  r.API.Plural,
		Label:   r.Label,
		Display: r.DisplayField,
		Columns: cols,
	}
}

// Normalize fills the default sort when the query names an unknown column
func (r *Resource[T]) Normalize(q tableview.Query) tableview.Query {
	q.OrderBy = strings.TrimSpace(q.OrderBy)
	if _, ok := r.Columns[q.OrderBy]; !ok {
		q.OrderBy = r.DefaultSort
		if q.Order == "" {
			q.Order = r.DefaultOrder
		}
	}
	if q.Order == "" {
		q.Order = tableview.Asc
	}
	q.Filter = strings.TrimSpace(q.Filter)
	return q
}

// Query loads the collection and applies the table transform. Paging is left
// to the caller.
func (r *Resource[T]) Query(ctx context.Context, q tableview.Query) ([]T, error) {
	rows, err := r.API.List(ctx)
	if err != nil {
		return nil, err
	}
	q = r.Normalize(q)
	return tableview.Apply(rows, q, r.Columns, r.Display), nil
}

// ErrNotFound is returned by Find when no record has the requested id
var ErrNotFound = errors.New("record not found")

// Find loads the collection and returns the record with id
func (r *Resource[T]) Find(ctx context.Context, id string) (T, error) {
	var zero T
	rows, err := r.API.List(ctx)
	if err != nil {
		return zero, err
	}
	for _, row := range rows {
		if row.Key() == id {
			return row, nil
		}
	}
	return zero, errors.Wrapf(ErrNotFound, "%s %s", r.API.Name, id)
}

// Validate runs tag validation and then Check
func (r *Resource[T]) Validate(item T) error {
	if err := domain.Validate(item); err != nil {
		return err
	}
	if r.Check != nil {
		return r.Check(item)
	}
	return nil
}

// Form returns default values and loads every reference option concurrently
func (r *Resource[T]) Form(ctx context.Context) (Form, error) {
	form := Form{Options: make(map[string][]Option, len(r.Options))}
	if r.Defaults != nil {
		form.Defaults = r.Defaults()
	} else {
		var zero T
		form.Defaults = zero
	}
	if len(r.Options) == 0 {
		return form, nil
	}

	results := make([][]Option, len(r.Options))
	g, gctx := errgroup.WithContext(ctx)
	for i, loader := range r.Options {
		i, loader := i, loader
		g.Go(func() error {
			opts, err := loader.Load(gctx)
			if err != nil {
				return errors.Wrapf(err, "load %s options", loader.Field)
			}
			results[i] = opts
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return form, err
	}
	for i, loader := range r.Options {
		form.Options[loader.Field] = results[i]
	}
	return form, nil
}

// OptionsFrom builds a loader listing every record of src
func OptionsFrom[T domain.Entity](field string, src *Resource[T]) OptionLoader {
	return OptionLoader{
		Field: field,
		Load: func(ctx context.Context) ([]Option, error) {
			rows, err := src.Query(ctx, tableview.Query{})
			if err != nil {
				return nil, err
			}
			opts := make([]Option, 0, len(rows))
			for _, row := range rows {
				opts = append(opts, Option{Value: row.Key(), Label: src.Display(row)})
			}
			return opts, nil
		},
	}
}
