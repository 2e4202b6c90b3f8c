package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aditpras/folio/internal/content"
	"github.com/aditpras/folio/internal/store"
)

// resource adapts one content collection to the five REST endpoints every
// content type shares: list, create, partial update, archive, move.
type resource[T any] struct {
	col *content.Collection[T]
	// filterParam, when non-empty, names both the query parameter and the
	// record field usable as a single equality filter.
	filterParam string
}

func mountResource[T any](r chi.Router, path string, res *resource[T]) {
	r.Get(path, res.list)
	r.Post(path, res.create)
	r.Patch(path+"/{id}", res.update)
	r.Post(path+"/{id}/archive", res.archive)
	r.Post(path+"/{id}/move", res.move)
}

func (res *resource[T]) list(w http.ResponseWriter, r *http.Request) {
	var filter *store.Filter
	if res.filterParam != "" {
		if v := r.URL.Query().Get(res.filterParam); v != "" {
			filter = &store.Filter{Field: res.filterParam, Value: v}
		}
	}
	items, err := res.col.List(r.Context(), filter)
	if err != nil {
		writeError(w, "list "+res.col.Name(), err)
		return
	}
	writeJSON(w, http.StatusOK, ListResponse[T]{Items: items, Total: len(items)})
}

func (res *resource[T]) create(w http.ResponseWriter, r *http.Request) {
	fields, ok := decodeFields(w, r, res.col.Name())
	if !ok {
		return
	}
	raw, err := json.Marshal(fields)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	var rec T
	if err := json.Unmarshal(raw, &rec); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}

	created, err := res.col.Create(r.Context(), &rec)
	if err != nil {
		writeError(w, "create "+res.col.Name(), err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (res *resource[T]) update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	fields, ok := decodeFields(w, r, res.col.Name())
	if !ok {
		return
	}
	updated, err := res.col.Update(r.Context(), id, fields)
	if err != nil {
		writeError(w, "update "+res.col.Name(), err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (res *resource[T]) archive(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := res.col.Archive(r.Context(), id); err != nil {
		writeError(w, "archive "+res.col.Name(), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (res *resource[T]) move(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	var dir content.Direction
	switch req.Direction {
	case "up":
		dir = content.MoveUp
	case "down":
		dir = content.MoveDown
	default:
		writeJSON(w, http.StatusBadRequest, errorBody("direction must be \"up\" or \"down\""))
		return
	}
	if err := res.col.Move(r.Context(), id, dir); err != nil {
		writeError(w, "move "+res.col.Name(), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// decodeFields reads the request body as a flat field bag, drops any
// client-supplied identity, and re-parses delimited string inputs
// (skills, tags) into arrays.
func decodeFields(w http.ResponseWriter, r *http.Request, collection string) (map[string]any, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return nil, false
	}
	delete(fields, "id")
	for _, key := range csvFields[collection] {
		if s, ok := fields[key].(string); ok {
			fields[key] = content.ParseList(s)
		}
	}
	return fields, true
}
