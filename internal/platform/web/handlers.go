package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vovakirdan/tui-hexchess/internal/core"
	"github.com/vovakirdan/tui-hexchess/internal/game"
	"github.com/vovakirdan/tui-hexchess/internal/hexchess"
	"github.com/vovakirdan/tui-hexchess/internal/session"
	"github.com/vovakirdan/tui-hexchess/internal/setups"
)

// MoveView is a move as sent to the browser.
type MoveView struct {
	From     hexchess.Coord `json:"from"`
	To       hexchess.Coord `json:"to"`
	Piece    string         `json:"piece"`
	Captured string         `json:"captured,omitempty"`
	Notation string         `json:"notation"`
}

// BoardResponse is the JSON body describing a table.
type BoardResponse struct {
	Table    string              `json:"table"`
	Game     string              `json:"game"`
	Setup    string              `json:"setup"`
	Turn     string              `json:"turn"`
	Flipped  bool                `json:"flipped"`
	Ply      int                 `json:"ply"`
	Selected *hexchess.Coord     `json:"selected,omitempty"`
	LastMove *MoveView           `json:"last_move,omitempty"`
	Layout   hexchess.Layout     `json:"layout"`
	Tiles    []hexchess.TileView `json:"tiles"`
}

// ClickResponse is returned by POST /api/click. An illegal click is not an
// error: it answers 200 with moved=false.
type ClickResponse struct {
	Moved bool          `json:"moved"`
	Board BoardResponse `json:"board"`
}

type clickBody struct {
	Q *int `json:"q"`
	R *int `json:"r"`
}

func (s *Server) boardResponse(t *session.Table, g *game.Game) BoardResponse {
	st := g.State()
	resp := BoardResponse{
		Table:    t.ID(),
		Game:     g.ID(),
		Setup:    g.Setup().ID,
		Turn:     st.Turn.String(),
		Flipped:  st.Flipped,
		Ply:      st.Ply,
		Selected: st.Selected,
		Layout:   s.config.Layout,
		Tiles:    g.Board().Snapshot(s.config.Layout, st.Flipped),
	}
	if st.LastMove != nil {
		m := *st.LastMove
		resp.LastMove = &MoveView{
			From:     m.From,
			To:       m.To,
			Piece:    m.Piece.String(),
			Notation: m.String(),
		}
		if m.HasCapture {
			resp.LastMove.Captured = m.Captured.String()
		}
	}
	return resp
}

// withTable runs fn against the caller's table and writes its result.
func (s *Server) withTable(w http.ResponseWriter, r *http.Request, fn func(t *session.Table, g *game.Game) any) {
	t, err := s.table(w, r)
	if err != nil {
		s.logger.Error("cannot open table", "error", err)
		writeError(w, http.StatusInternalServerError, "cannot open table")
		return
	}

	var out any
	err = t.Do(func(g *game.Game) {
		out = fn(t, g)
	})
	if errors.Is(err, session.ErrNotFound) {
		// Expired between lookup and use; the next request opens a new one.
		writeError(w, http.StatusConflict, "table expired, retry")
		return
	}
	writeJSON(w, out)
}

func (s *Server) handleBoard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	s.withTable(w, r, func(t *session.Table, g *game.Game) any {
		return s.boardResponse(t, g)
	})
}

func (s *Server) handleClick(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	defer r.Body.Close()
	var body clickBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		if isBodyTooLarge(err) {
			writeError(w, http.StatusRequestEntityTooLarge, "request too large")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if body.Q == nil || body.R == nil {
		writeError(w, http.StatusBadRequest, "q and r are required")
		return
	}
	c := hexchess.Hex(*body.Q, *body.R)

	s.withTable(w, r, func(t *session.Table, g *game.Game) any {
		moved := g.Click(c)
		if moved {
			s.logger.Debug("move", "table", t.ID(), "move", g.State().Message)
		}
		return ClickResponse{Moved: moved, Board: s.boardResponse(t, g)}
	})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	s.withTable(w, r, func(t *session.Table, g *game.Game) any {
		g.Reset(core.RuntimeConfig{})
		return s.boardResponse(t, g)
	})
}

func (s *Server) handleFlip(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	s.withTable(w, r, func(t *session.Table, g *game.Game) any {
		g.Flip()
		return s.boardResponse(t, g)
	})
}

func (s *Server) handleSetups(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, map[string]any{"setups": setups.List(), "current": s.config.Setup})
}

// ---- JSON helpers ----

func (s *Server) withJSON(h func(http.ResponseWriter, *http.Request)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		applySecurityHeaders(w.Header(), apiCSP)
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		if r.Body != nil && r.Body != http.NoBody {
			r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
		}
		h(w, r)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	writeJSON(w, map[string]string{"error": msg})
}

func applySecurityHeaders(h http.Header, csp string) {
	h.Set("Content-Security-Policy", csp)
	h.Set("Cross-Origin-Opener-Policy", "same-origin")
	h.Set("X-Content-Type-Options", "nosniff")
}

func isBodyTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}
