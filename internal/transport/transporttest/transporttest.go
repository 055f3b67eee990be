// Package transporttest runs the OSS API in-process for tests.
package transporttest

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/beanbocchi/ossclient/internal/service"
	"github.com/beanbocchi/ossclient/internal/transport"
	"github.com/beanbocchi/ossclient/pkg/objectstore/local"
)

// PublicURL is the public base of every object served by a Server.
const PublicURL = "https://test-bucket.oss.local"

type Server struct {
	*httptest.Server
	Service *service.Service
	Store   *local.ClientImpl
}

// NewServer starts an OSS API backed by a temporary directory. It is
// closed when the test ends.
func NewServer(tb testing.TB) *Server {
	tb.Helper()

	store, err := local.NewClient(local.LocalConfig{
		Root:      tb.TempDir(),
		PublicURL: PublicURL,
		Secret:    "transporttest",
	})
	if err != nil {
		tb.Fatalf("create store: %v", err)
	}

	svc := service.NewService(store, store)
	e, err := transport.NewEcho(svc)
	if err != nil {
		tb.Fatalf("create echo: %v", err)
	}

	srv := httptest.NewUnstartedServer(e)
	srv.Start()
	store.SetSignedURL(srv.URL + transport.FilesPrefix)
	tb.Cleanup(srv.Close)

	return &Server{Server: srv, Service: svc, Store: store}
}

// EnvelopedURL is the base URL of the /v1/osss routes.
func (s *Server) EnvelopedURL() string {
	return s.URL + transport.EnvelopedPrefix
}

// PlainURL is the base URL of the /api/oss routes.
func (s *Server) PlainURL() string {
	return s.URL + transport.PlainPrefix
}

// Put stores objects given as key/content pairs.
func (s *Server) Put(tb testing.TB, objects map[string]string) {
	tb.Helper()
	for key, content := range objects {
		if err := s.Service.Put(context.Background(), key, strings.NewReader(content)); err != nil {
			tb.Fatalf("put %s: %v", key, err)
		}
	}
}
