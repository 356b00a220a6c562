package httpapi

import (
	"net/http"

	"pos-loyalty-gateway/internal/auth"
	"pos-loyalty-gateway/internal/config"
	"pos-loyalty-gateway/internal/posdb"
	"pos-loyalty-gateway/internal/store"
)

type Server struct {
	cfg      config.Config
	authn    *auth.Authenticator
	sessions *auth.Resolver
	codec    *auth.Codec
	pos      posdb.Querier
	mux      *http.ServeMux
}

func NewServer(cfg config.Config, creds store.CredentialStore, codec *auth.Codec, pos posdb.Querier) *Server {
	s := &Server{
		cfg:      cfg,
		authn:    auth.NewAuthenticator(creds),
		sessions: auth.NewResolver(codec, creds),
		codec:    codec,
		pos:      pos,
		mux:      http.NewServeMux(),
	}
	s.registerRoutes()
	return s
}

func (s *Server) Handler() http.Handler {
	var h http.Handler = s.mux
	h = recoverMiddleware(h)
	h = requestIDMiddleware(h)
	h = loggingMiddleware(h)
	h = s.authMiddleware(h)
	return h
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.HandleFunc("/token", s.handleToken)
	s.mux.HandleFunc("/users/me", s.handleCurrentUser)
	s.mux.HandleFunc("/fetch-collection", s.handleFetchCollection)
	s.mux.HandleFunc("/fetch-redemption", s.handleFetchRedemption)
}
