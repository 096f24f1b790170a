package httpadapter

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// resource binds the CRUD operations of one entity to its routes.
type resource[E, In any] struct {
	path string
	// filter names the query parameter that narrows the listing to one
	// parent, e.g. GET /projects?client_id=cl00001.
	filter string
	create func(context.Context, In) (*E, error)
	update func(context.Context, string, In) (*E, error)
	get    func(context.Context, string) (*E, error)
	list   func(context.Context, string) ([]E, error)
	remove func(context.Context, string) error
	// sub holds extra routes below the entity path, such as child listings.
	sub map[string]http.HandlerFunc
}

func mount[E, In any](r chi.Router, h *Handler, res resource[E, In]) {
	r.Route(res.path, func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			parentID := ""
			if res.filter != "" {
				parentID = r.URL.Query().Get(res.filter)
			}
			items, err := res.list(r.Context(), parentID)
			if err != nil {
				h.fail(w, r, err)
				return
			}
			h.writeJSON(w, http.StatusOK, items)
		})
		r.Post("/", func(w http.ResponseWriter, r *http.Request) {
			var in In
			if !h.decode(w, r, &in) {
				return
			}
			e, err := res.create(r.Context(), in)
			if err != nil {
				h.fail(w, r, err)
				return
			}
			h.writeJSON(w, http.StatusCreated, e)
		})
		r.Get("/{id}", func(w http.ResponseWriter, r *http.Request) {
			e, err := res.get(r.Context(), chi.URLParam(r, "id"))
			if err != nil {
				h.fail(w, r, err)
				return
			}
			h.writeJSON(w, http.StatusOK, e)
		})
		r.Put("/{id}", func(w http.ResponseWriter, r *http.Request) {
			var in In
			if !h.decode(w, r, &in) {
				return
			}
			e, err := res.update(r.Context(), chi.URLParam(r, "id"), in)
			if err != nil {
				h.fail(w, r, err)
				return
			}
			h.writeJSON(w, http.StatusOK, e)
		})
		r.Delete("/{id}", func(w http.ResponseWriter, r *http.Request) {
			if err := res.remove(r.Context(), chi.URLParam(r, "id")); err != nil {
				h.fail(w, r, err)
				return
			}
			w.WriteHeader(http.StatusNoContent)
		})
		for pattern, fn := range res.sub {
			r.Get(pattern, fn)
		}
	})
}

// children lists the records under the {id} path parameter.
func children[E any](h *Handler, list func(context.Context, string) ([]E, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := list(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			h.fail(w, r, err)
			return
		}
		h.writeJSON(w, http.StatusOK, items)
	}
}
