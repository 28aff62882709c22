package session

import (
	"net/http"
	"strconv"

	"github.com/FlagBrew/digidex/internal/dex"
	"github.com/FlagBrew/digidex/internal/models"
	"github.com/apex/log"
	"github.com/go-chi/chi/v5"
	"github.com/lrstanley/chix"
)

type Handler struct {
	catalog  *dex.Catalog
	sessions *dex.Registry
}

func NewHandler(catalog *dex.Catalog, sessions *dex.Registry) *Handler {
	return &Handler{catalog: catalog, sessions: sessions}
}

func (h *Handler) Route(r chi.Router) {
	r.Post("/", h.create)
	r.Route("/{sid}", func(r chi.Router) {
		r.Get("/", h.get)
		r.Patch("/", h.update)
		r.Delete("/", h.delete)
		r.Post("/favorites/{id}", h.toggleFavorite)
		r.Post("/compare/{id}", h.toggleCompare)
		r.Put("/selected/{id}", h.open)
		r.Delete("/selected", h.close)
	})
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	s := h.sessions.Create()
	log.FromContext(r.Context()).WithField("session", s.ID).Debug("session created")
	chix.JSON(w, r, http.StatusCreated, s.Snapshot(h.catalog))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	chix.JSON(w, r, http.StatusOK, s.Snapshot(h.catalog))
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	var payload updateRequest
	if chix.Error(w, r, chix.Bind(r, &payload)) {
		return
	}

	if payload.ViewMode != nil {
		mode, err := dex.ParseViewMode(*payload.ViewMode)
		if err != nil {
			chix.JSON(w, r, http.StatusBadRequest, chix.M{"error": err.Error()})
			return
		}
		s.SetViewMode(mode)
	}
	if payload.Search != nil {
		s.SetSearch(*payload.Search)
	}
	if payload.Level != nil {
		s.SetLevel(dex.NormalizeLevel(*payload.Level))
	}
	if payload.Sound != nil {
		s.SetSound(*payload.Sound)
	}
	if payload.CompareMode != nil {
		s.SetCompareMode(*payload.CompareMode)
	}

	chix.JSON(w, r, http.StatusOK, s.Snapshot(h.catalog))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Delete(chi.URLParam(r, "sid")); err != nil {
		chix.JSON(w, r, http.StatusNotFound, chix.M{"error": err.Error()})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) toggleFavorite(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	d, ok := h.digimon(w, r)
	if !ok {
		return
	}

	result := "removed"
	if s.ToggleFavorite(d.ID) {
		result = "added"
	}

	chix.JSON(w, r, http.StatusOK, toggleResponse{Result: result, Session: s.Snapshot(h.catalog)})
}

func (h *Handler) toggleCompare(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	d, ok := h.digimon(w, r)
	if !ok {
		return
	}

	result := s.ToggleCompare(d)
	if result == dex.CompareFull {
		log.FromContext(r.Context()).WithFields(log.Fields{
			"session": s.ID,
			"digimon": d.ID,
		}).Debug("comparison already full, ignoring pick")
	}

	chix.JSON(w, r, http.StatusOK, toggleResponse{Result: result.String(), Session: s.Snapshot(h.catalog)})
}

func (h *Handler) open(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	d, ok := h.digimon(w, r)
	if !ok {
		return
	}

	if !s.Open(d.ID) {
		chix.JSON(w, r, http.StatusConflict, chix.M{"error": "compare mode is on, picks toggle the comparison instead"})
		return
	}

	chix.JSON(w, r, http.StatusOK, s.Snapshot(h.catalog))
}

func (h *Handler) close(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	s.Close()
	chix.JSON(w, r, http.StatusOK, s.Snapshot(h.catalog))
}

func (h *Handler) session(w http.ResponseWriter, r *http.Request) (*dex.Session, bool) {
	s, err := h.sessions.Get(chi.URLParam(r, "sid"))
	if err != nil {
		chix.JSON(w, r, http.StatusNotFound, chix.M{"error": err.Error()})
		return nil, false
	}
	return s, true
}

func (h *Handler) digimon(w http.ResponseWriter, r *http.Request) (models.Digimon, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		chix.JSON(w, r, http.StatusBadRequest, chix.M{"error": "invalid id"})
		return models.Digimon{}, false
	}

	d, ok := h.catalog.Get(id)
	if !ok {
		chix.JSON(w, r, http.StatusNotFound, chix.M{"error": "digimon not found"})
		return models.Digimon{}, false
	}
	return d, true
}
