package api

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/Zestathon/payorbit/internal/client/models"
)

func encodeJSON(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding request payload: %w", err)
	}
	return b, nil
}

func decodeJSON(raw []byte, v any) error {
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// The server has shipped listings in several envelope shapes over time.
// decodePage tries the recognized shapes in fixed priority order; the order
// is an observable contract:
//
//  1. {"success": ..., "data": [...], "count": n}
//  2. a bare JSON array
//  3. {"results": [...], "count": n}
//  4. {"employees": [...], "count": n}
//
// An unrecognized envelope normalizes to an empty page. A missing count
// falls back to the length of the item list.
func decodePage[T any](raw []byte, page, pageSize int) (*models.Page[T], error) {
	items, count, err := matchEnvelope(raw)
	if err != nil {
		return nil, err
	}

	out := &models.Page[T]{
		Items:       []T{},
		CurrentPage: page,
		PageSize:    pageSize,
	}
	if items != nil {
		if err := decodeJSON(items, &out.Items); err != nil {
			return nil, err
		}
	}

	if count != nil {
		out.TotalCount = *count
	} else {
		out.TotalCount = len(out.Items)
	}
	return out, nil
}

type wrappedEnvelope struct {
	Success   *bool           `json:"success"`
	Data      json.RawMessage `json:"data"`
	Results   json.RawMessage `json:"results"`
	Employees json.RawMessage `json:"employees"`
	Count     *int            `json:"count"`
}

func isArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}

// matchEnvelope returns the raw item array and the count field (nil when
// absent) for whichever shape matched first. A bare array is disjoint from
// the object wrappers, so testing it up front preserves the documented
// priority.
func matchEnvelope(raw []byte) (json.RawMessage, *int, error) {
	if isArray(raw) {
		return raw, nil, nil
	}

	var env wrappedEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, nil, fmt.Errorf("decoding listing envelope: %w", err)
	}

	switch {
	case env.Success != nil && isArray(env.Data):
		return env.Data, env.Count, nil
	case isArray(env.Results):
		return env.Results, env.Count, nil
	case isArray(env.Employees):
		return env.Employees, env.Count, nil
	}

	// Unrecognized shape: defined fallback is an empty listing.
	return nil, nil, nil
}
