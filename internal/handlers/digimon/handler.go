package digimon

import (
	"net/http"
	"strconv"

	"github.com/FlagBrew/digidex/internal/dex"
	"github.com/go-chi/chi/v5"
	"github.com/lrstanley/chix"
)

type Handler struct {
	catalog *dex.Catalog
}

func NewHandler(catalog *dex.Catalog) *Handler {
	return &Handler{catalog: catalog}
}

func (h *Handler) Route(r chi.Router) {
	r.Get("/digimon", h.list)
	r.Get("/digimon/{id}", h.get)
	r.Get("/levels", h.levels)
	r.Post("/compare", h.compare)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := dex.Filter{
		Search: r.URL.Query().Get("search"),
		Level:  dex.NormalizeLevel(r.URL.Query().Get("level")),
	}

	visible := filter.Apply(h.catalog.Entries())

	chix.JSON(w, r, http.StatusOK, listResponse{
		Total:   len(visible),
		Loading: h.catalog.Loading(),
		Digimon: newCards(visible),
	})
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		chix.JSON(w, r, http.StatusBadRequest, chix.M{"error": "invalid id"})
		return
	}

	d, ok := h.catalog.Get(id)
	if !ok {
		chix.JSON(w, r, http.StatusNotFound, chix.M{"error": "digimon not found"})
		return
	}

	chix.JSON(w, r, http.StatusOK, newDetail(d))
}

func (h *Handler) levels(w http.ResponseWriter, r *http.Request) {
	chix.JSON(w, r, http.StatusOK, dex.Levels(h.catalog.Entries()))
}

func (h *Handler) compare(w http.ResponseWriter, r *http.Request) {
	var payload compareRequest
	if chix.Error(w, r, chix.Bind(r, &payload)) {
		return
	}

	if len(payload.IDs) != dex.MaxCompare {
		chix.JSON(w, r, http.StatusBadRequest, chix.M{"error": "exactly two ids are required"})
		return
	}

	if payload.IDs[0] == payload.IDs[1] {
		chix.JSON(w, r, http.StatusBadRequest, chix.M{"error": "cannot compare a digimon with itself"})
		return
	}

	a, okA := h.catalog.Get(payload.IDs[0])
	b, okB := h.catalog.Get(payload.IDs[1])
	if !okA || !okB {
		chix.JSON(w, r, http.StatusBadRequest, chix.M{"error": "unknown digimon id"})
		return
	}

	verdict := dex.Compare(a, b)
	chix.JSON(w, r, http.StatusOK, chix.M{
		"verdict": verdict,
		"message": verdict.Message(),
	})
}
