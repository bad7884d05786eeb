package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"svw.info/fitcube/internal/domain"
	"svw.info/fitcube/internal/notation"
	"svw.info/fitcube/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

func (h *Handler) Register(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Use(jsonContent)
		r.Post("/solve", h.handleSolve)
		r.Get("/unique", h.handleUnique)
		r.Post("/validate", h.handleValidate)
		r.Post("/hint", h.handleHint)
		r.Post("/solutions", h.handleSave)
		r.Get("/solutions", h.handleList)
		r.Get("/solutions/{id}", h.handleLoad)
	})
}

func jsonContent(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	if status != http.StatusOK {
		w.WriteHeader(status)
	}
	_ = json.NewEncoder(w).Encode(v)
}

// decode reads an optional JSON body; an empty body leaves v untouched.
func decode(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// pathReq carries a path either as moves or in text notation.
type pathReq struct {
	Moves []domain.Move `json:"moves,omitempty"`
	Path  string        `json:"path,omitempty"`
}

func (p pathReq) moves() ([]domain.Move, error) {
	if p.Path != "" {
		return notation.Parse(p.Path)
	}
	return p.Moves, nil
}

func formatOrEmpty(moves []domain.Move) string {
	s, err := notation.Format(moves)
	if err != nil {
		return ""
	}
	return s
}

// ---- Solve ----

type solveReq struct {
	Save bool   `json:"save,omitempty"`
	Name string `json:"name,omitempty"`
}
type solveResp struct {
	ID         string        `json:"id,omitempty"`
	Moves      []domain.Move `json:"moves,omitempty"`
	Path       string        `json:"path,omitempty"`
	DurationMs int64         `json:"durationMs,omitempty"`
	Nodes      int           `json:"nodes,omitempty"`
	Error      string        `json:"error,omitempty"`
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveReq
	if err := decode(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, solveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	moves, st, err := h.UC.Solve(r.Context())
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrNoSolution) {
			status = http.StatusUnprocessableEntity
		}
		writeJSON(w, status, solveResp{Error: err.Error(), DurationMs: st.Duration.Milliseconds(), Nodes: st.Nodes})
		return
	}
	resp := solveResp{
		Moves:      moves,
		Path:       formatOrEmpty(moves),
		DurationMs: st.Duration.Milliseconds(),
		Nodes:      st.Nodes,
	}
	if req.Save {
		sol := &domain.Solution{Name: req.Name, Moves: moves, Nodes: st.Nodes}
		if err := h.UC.Save(r.Context(), sol); err != nil {
			resp.Error = err.Error()
			writeJSON(w, http.StatusInternalServerError, resp)
			return
		}
		resp.ID = sol.ID
	}
	writeJSON(w, http.StatusOK, resp)
}

// ---- Unique ----

type uniqueResp struct {
	Unique     bool   `json:"unique"`
	DurationMs int64  `json:"durationMs,omitempty"`
	Nodes      int    `json:"nodes,omitempty"`
	Error      string `json:"error,omitempty"`
}

func (h *Handler) handleUnique(w http.ResponseWriter, r *http.Request) {
	ok, st, err := h.UC.Unique(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, uniqueResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, uniqueResp{Unique: ok, DurationMs: st.Duration.Milliseconds(), Nodes: st.Nodes})
}

// ---- Validate ----

type validateResp struct {
	OK        bool              `json:"ok"`
	Conflicts []domain.Conflict `json:"conflicts,omitempty"`
	Error     string            `json:"error,omitempty"`
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req pathReq
	if err := decode(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, validateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	moves, err := req.moves()
	if err != nil {
		writeJSON(w, http.StatusBadRequest, validateResp{Error: "invalid path: " + err.Error()})
		return
	}
	ok, conflicts, err := h.UC.Validate(r.Context(), moves)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, validateResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, validateResp{OK: ok, Conflicts: conflicts})
}

// ---- Hint ----

type hintResp struct {
	Found bool         `json:"found"`
	Move  *domain.Move `json:"move,omitempty"`
	Error string       `json:"error,omitempty"`
}

func (h *Handler) handleHint(w http.ResponseWriter, r *http.Request) {
	var req pathReq
	if err := decode(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, hintResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	prefix, err := req.moves()
	if err != nil {
		writeJSON(w, http.StatusBadRequest, hintResp{Error: "invalid path: " + err.Error()})
		return
	}
	mv, ok, err := h.UC.Hint(r.Context(), prefix)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, hintResp{Error: err.Error()})
		return
	}
	resp := hintResp{Found: ok}
	if ok {
		resp.Move = &mv
	}
	writeJSON(w, http.StatusOK, resp)
}

// ---- Save / Load / List ----

type saveResp struct {
	ID    string `json:"id,omitempty"`
	Error string `json:"error,omitempty"`
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	var s domain.Solution
	if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
		writeJSON(w, http.StatusBadRequest, saveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	if err := h.UC.Save(r.Context(), &s); err != nil {
		writeJSON(w, http.StatusBadRequest, saveResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, saveResp{ID: s.ID})
}

type loadResp struct {
	Solution *domain.Solution `json:"solution,omitempty"`
	Path     string           `json:"path,omitempty"`
	Error    string           `json:"error,omitempty"`
}

func (h *Handler) handleLoad(w http.ResponseWriter, r *http.Request) {
	s, err := h.UC.Load(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrNotFound) {
			status = http.StatusNotFound
		}
		writeJSON(w, status, loadResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, loadResp{Solution: s, Path: formatOrEmpty(s.Moves)})
}

type listResp struct {
	Solutions []domain.SolutionMeta `json:"solutions"`
	Error     string                `json:"error,omitempty"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ss, err := h.UC.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, listResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, listResp{Solutions: ss})
}
