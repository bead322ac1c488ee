package backend

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
)

// Resource wraps the REST endpoints of one entity:
//
//	POST   /create-<name>
//	GET    /<plural>
//	PUT    /update-<name>
//	DELETE /delete-<name>
//	DELETE /delete-<plural>
type Resource[T any] struct {
	client *Client
	Name   string
	Plural string
}

// NewResource creates a resource wrapper. plural defaults to name+"s".
func NewResource[T any](client *Client, name, plural string) *Resource[T] {
	if plural == "" {
		plural = name + "s"
	}
	return &Resource[T]{client: client, Name: name, Plural: plural}
}

type deletePayload struct {
	ID string `json:"id"`
}

type deleteManyPayload struct {
	IDs []string `json:"ids"`
}

// Create posts a new record and returns the stored version. When the backend
// omits data the submitted record is returned.
func (r *Resource[T]) Create(ctx context.Context, item T) (T, error) {
	env, err := r.client.Call(ctx, http.MethodPost, "/create-"+r.Name, item)
	if err != nil {
		return item, errors.Wrapf(err, "create %s", r.Name)
	}
	var out T
	found, err := env.Decode(&out)
	if err != nil {
		return item, err
	}
	if !found {
		return item, nil
	}
	return out, nil
}

// List fetches the full collection
func (r *Resource[T]) List(ctx context.Context) ([]T, error) {
	env, err := r.client.Call(ctx, http.MethodGet, "/"+r.Plural, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "list %s", r.Plural)
	}
	out := make([]T, 0)
	if _, err := env.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

// Update sends the full record, which carries its id, and returns the stored version
func (r *Resource[T]) Update(ctx context.Context, item T) (T, error) {
	env, err := r.client.Call(ctx, http.MethodPut, "/update-"+r.Name, item)
	if err != nil {
		return item, errors.Wrapf(err, "update %s", r.Name)
	}
	var out T
	found, err := env.Decode(&out)
	if err != nil {
		return item, err
	}
	if !found {
		return item, nil
	}
	return out, nil
}

// Delete removes one record
func (r *Resource[T]) Delete(ctx context.Context, id string) error {
	if _, err := r.client.Call(ctx, http.MethodDelete, "/delete-"+r.Name, deletePayload{ID: id}); err != nil {
		return errors.Wrapf(err, "delete %s %s", r.Name, id)
	}
	return nil
}

// DeleteMany removes several records in one call
func (r *Resource[T]) DeleteMany(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	if _, err := r.client.Call(ctx, http.MethodDelete, "/delete-"+r.Plural, deleteManyPayload{IDs: ids}); err != nil {
		return errors.Wrapf(err, "delete %d %s", len(ids), r.Plural)
	}
	return nil
}
