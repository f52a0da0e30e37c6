package http

import (
	"context"
	"net/http"
	"sync"
	"time"
)

type Server struct {
	mu         sync.Mutex
	httpServer *http.Server
}

// Run blocks serving handler on addr until Shutdown is called.
func (s *Server) Run(addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}
	s.mu.Lock()
	s.httpServer = srv
	s.mu.Unlock()

	return srv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.httpServer
	s.mu.Unlock()
	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}
