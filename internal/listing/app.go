package listing

import (
	"net/http"

	"StayMock/pkg/kit"
)

// NewHandler serves svc over HTTP behind the shared kit middleware stack.
func NewHandler(svc *Service, deps kit.RouterDeps) http.Handler {
	r := kit.NewRouter(deps)

	s := &Server{Service: svc, Log: deps.Log}
	r.Mount("/", s.Routes())
	return r
}
