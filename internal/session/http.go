package session

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"StayMock/pkg/kit"
)

const maxBodyBytes = 1 << 20

type Server struct {
	Log     *zap.Logger
	Session *Session
	JWT     *TokenMaker
}

type loginReq struct {
	Name string `json:"name"`
}

type loginResp struct {
	User        User   `json:"user"`
	AccessToken string `json:"access_token"`
}

// handleLogin accepts an empty body as a login with the default name.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req loginReq
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return
	}

	u := s.Session.Login(req.Name)

	tok, err := s.JWT.New(u)
	if err != nil {
		s.Log.Error("token issue", zap.Error(err))
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	s.Log.Info("login", zap.String("user_id", u.ID), zap.String("name", u.Name))
	kit.WriteJSON(w, http.StatusOK, loginResp{User: u, AccessToken: tok})
}

func (s *Server) handleLogout(w http.ResponseWriter, _ *http.Request) {
	s.Session.Logout()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleWhoAmI(w http.ResponseWriter, r *http.Request) {
	u, ok := s.Session.Current()
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "no user logged in", nil)
		return
	}
	kit.WriteJSON(w, http.StatusOK, u)
}
