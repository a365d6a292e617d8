package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// ErrEmptyResponse is returned when the backend answers 2xx without the data
// the console needs (an empty list body or a zero id).
var ErrEmptyResponse = errors.New("empty backend response")

// Query is the list query of every resource: page, limit, filter text and the
// id of an already selected record (autocomplete keeps it among the options).
type Query struct {
	Page   int
	Limit  int
	Filter string
	ID     uint64
}

func (q Query) encode() string {
	page := q.Page
	if page < 1 {
		page = 1
	}
	// Parameter order matches the backend documentation.
	return fmt.Sprintf("page=%d&limit=%d&filter=%s&id=%d",
		page, q.Limit, url.QueryEscape(q.Filter), q.ID)
}

// Page is one list response.
type Page[T any] struct {
	Data       []T
	TotalCount uint64
}

// Resource is the CRUD surface of one backend collection, e.g. /equipments.
type Resource[T any] struct {
	client *Client
	path   string
}

func NewResource[T any](client *Client, path string) *Resource[T] {
	return &Resource[T]{client: client, path: path}
}

func (r *Resource[T]) Path() string { return r.path }

func (r *Resource[T]) List(ctx context.Context, q Query) (Page[T], error) {
	header, raw, err := r.client.do(ctx, http.MethodGet, r.path+"?"+q.encode(), nil)
	if err != nil {
		return Page[T]{}, err
	}
	if len(raw) == 0 {
		return Page[T]{}, ErrEmptyResponse
	}

	var data []T
	if err := json.Unmarshal(raw, &data); err != nil {
		return Page[T]{}, fmt.Errorf("decode %s list: %w", r.path, err)
	}
	if data == nil {
		data = make([]T, 0)
	}

	return Page[T]{Data: data, TotalCount: totalCount(header, q.Limit)}, nil
}

func (r *Resource[T]) Get(ctx context.Context, id uint64) (T, error) {
	var out T
	_, raw, err := r.client.do(ctx, http.MethodGet, r.itemPath(id), nil)
	if err != nil {
		return out, err
	}
	if len(raw) == 0 {
		return out, ErrEmptyResponse
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("decode %s/%d: %w", r.path, id, err)
	}
	return out, nil
}

// Create posts body and returns the id the backend assigned.
func (r *Resource[T]) Create(ctx context.Context, body interface{}) (uint64, error) {
	_, raw, err := r.client.do(ctx, http.MethodPost, r.path, body)
	if err != nil {
		return 0, err
	}
	id, err := decodeID(raw)
	if err != nil {
		return 0, fmt.Errorf("decode %s create response: %w", r.path, err)
	}
	if id == 0 {
		return 0, ErrEmptyResponse
	}
	return id, nil
}

func (r *Resource[T]) Update(ctx context.Context, id uint64, body interface{}) error {
	_, _, err := r.client.do(ctx, http.MethodPut, r.itemPath(id), body)
	return err
}

func (r *Resource[T]) Delete(ctx context.Context, id uint64) error {
	_, _, err := r.client.do(ctx, http.MethodDelete, r.itemPath(id), nil)
	return err
}

func (r *Resource[T]) itemPath(id uint64) string {
	return r.path + "/" + strconv.FormatUint(id, 10)
}

// totalCount reads x-total-count; a missing or unreadable header counts as
// one full page.
func totalCount(h http.Header, limit int) uint64 {
	if v := h.Get(TotalCountHeader); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			return n
		}
	}
	if limit < 0 {
		return 0
	}
	return uint64(limit)
}

// decodeID accepts a bare number (the documented answer) or an {"id": n} object.
func decodeID(raw []byte) (uint64, error) {
	if len(raw) == 0 {
		return 0, ErrEmptyResponse
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		v, err := strconv.ParseUint(n.String(), 10, 64)
		if err != nil {
			return 0, err
		}
		return v, nil
	}
	var obj struct {
		ID uint64 `json:"id"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return 0, err
	}
	return obj.ID, nil
}
