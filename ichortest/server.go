// Package ichortest runs a fake itch.io server-side API on localhost,
// backed by an in-memory Store, for testing API clients.
package ichortest

import (
	"bytes"
	"fmt"
	"net"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
)

type Server struct {
	t        testing.TB
	opts     serverOpts
	listener net.Listener
	store    *Store

	mu        sync.Mutex
	requests  []Request
	overrides map[string]override
	closed    bool
}

// Request is what the server saw of a call, with the API key
// stripped from the path
type Request struct {
	Method  string
	Version string
	Key     string
	// Path is relative to the key, e.g. "/game/12"
	Path      string
	RawQuery  string
	UserAgent string
}

type override struct {
	status int
	body   string
}

type serverOpts struct {
	version string
}

type ServerOpt func(opts *serverOpts)

// WithAPIVersion changes the API version the server answers to
// (other versions get a 404). Defaults to "1".
func WithAPIVersion(version string) ServerOpt {
	return func(opts *serverOpts) {
		opts.version = version
	}
}

// NewServer starts a server on a random port. It is shut down
// when the test completes.
func NewServer(t testing.TB, options ...ServerOpt) *Server {
	t.Helper()

	opts := serverOpts{
		version: "1",
	}
	for _, o := range options {
		o(&opts)
	}

	s := &Server{
		t:         t,
		opts:      opts,
		store:     newStore(),
		overrides: make(map[string]override),
	}

	err := s.start()
	if err != nil {
		t.Fatalf("starting fake itch.io server: %+v", err)
	}
	t.Cleanup(func() {
		s.mu.Lock()
		s.closed = true
		s.mu.Unlock()
		s.listener.Close()
	})
	return s
}

func (s *Server) start() error {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return errors.WithStack(err)
	}
	s.listener = listener

	go http.Serve(listener, s.handler())
	return nil
}

// BaseURL is what clients should use as their base, it doesn't
// include the version or key.
func (s *Server) BaseURL() string {
	return fmt.Sprintf("http://%s/api", s.listener.Addr().String())
}

func (s *Server) Store() *Store {
	return s.store
}

// Requests returns every API request received so far, in order
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request{}, s.requests...)
}

// LastRequest returns the most recent API request, or nil
func (s *Server) LastRequest() *Request {
	reqs := s.Requests()
	if len(reqs) == 0 {
		return nil
	}
	return &reqs[len(reqs)-1]
}

// Override makes the server answer requests to path (relative to
// the key, no query string) with a fixed status and body, bypassing
// the store and the key check.
func (s *Server) Override(path string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overrides[path] = override{status: status, body: body}
}

func (s *Server) recordRequest(req Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, req)
}

func (s *Server) findOverride(path string) (override, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.overrides[path]
	return o, ok
}

type coolHandler func(r *response)

func (s *Server) handler() http.Handler {
	m := mux.NewRouter()
	api := m.PathPrefix("/api/{version}/{key}").Subrouter()

	handler := func(ch coolHandler) http.HandlerFunc {
		return func(w http.ResponseWriter, req *http.Request) {
			vars := mux.Vars(req)
			prefix := fmt.Sprintf("/api/%s/%s", vars["version"], vars["key"])
			path := strings.TrimPrefix(req.URL.Path, prefix)
			s.recordRequest(Request{
				Method:    req.Method,
				Version:   vars["version"],
				Key:       vars["key"],
				Path:      path,
				RawQuery:  req.URL.RawQuery,
				UserAgent: req.UserAgent(),
			})

			res := &response{
				s:     s,
				w:     w,
				req:   req,
				store: s.store,
			}

			if o, ok := s.findOverride(path); ok {
				res.status = o.status
				res.Header().Set("content-type", "application/json")
				res.WriteHeader()
				res.Write([]byte(o.body))
				return
			}

			err := func() (retErr error) {
				defer func() {
					if r := recover(); r != nil {
						if rErr, ok := r.(error); ok {
							if ae, ok := errors.Cause(rErr).(APIError); ok {
								res.WriteError(ae.status, ae.messages...)
								return
							}
							retErr = rErr
						} else {
							retErr = errors.Errorf("panic: %+v", r)
						}
					}
				}()
				if vars["version"] != s.opts.version {
					Throw(404, "invalid api version")
				}
				ch(res)
				return nil
			}()
			if err != nil {
				res.WriteError(500, fmt.Sprintf("internal error: %+v", err))
			}
		}
	}
	route := func(route string, ch coolHandler) {
		api.HandleFunc(route, handler(ch)).Methods("GET")
	}

	route("/credentials/info", func(r *response) {
		r.CheckAPIKey()
		r.WriteJSON(FormatCredentials(r.currentKey))
	})

	route("/me", func(r *response) {
		r.CheckAPIKey()
		r.WriteJSON(Any{
			"user": FormatUser(r.currentUser),
		})
	})

	route("/my-games", func(r *response) {
		r.CheckAPIKey()
		r.WriteJSON(Any{
			"games": FormatGames(r.store.ListGamesByUser(r.currentUser.ID)),
		})
	})

	route("/game/{id}", func(r *response) {
		r.CheckAPIKey()
		game := r.FindGame(r.Int64Var("id"))
		r.AssertAuthorization(game.UserID == r.currentUser.ID)
		r.WriteJSON(Any{
			"game": FormatGame(game),
		})
	})

	route("/game/{id}/download_keys", func(r *response) {
		r.CheckAPIKey()
		game := r.FindGame(r.Int64Var("id"))
		r.AssertAuthorization(game.UserID == r.currentUser.ID)

		var match func(dk *DownloadKey) bool
		q := r.req.URL.Query()
		switch {
		case q.Get("download_key") != "":
			key := q.Get("download_key")
			match = func(dk *DownloadKey) bool { return dk.Key == key }
		case q.Get("user_id") != "":
			userID := r.Int64Query("user_id")
			match = func(dk *DownloadKey) bool { return dk.OwnerID == userID }
		case q.Get("email") != "":
			email := q.Get("email")
			match = func(dk *DownloadKey) bool { return dk.Email == email }
		default:
			Throw(400, "missing download_key, user_id or email")
		}

		dk := r.store.FindDownloadKey(game.ID, match)
		if dk == nil {
			Throw(404, "download key not found")
		}
		r.WriteJSON(Any{
			"download_key": FormatDownloadKey(dk),
		})
	})

	route("/game/{id}/purchases", func(r *response) {
		r.CheckAPIKey()
		game := r.FindGame(r.Int64Var("id"))
		r.AssertAuthorization(game.UserID == r.currentUser.ID)

		var match func(p *Purchase) bool
		q := r.req.URL.Query()
		switch {
		case q.Get("user_id") != "":
			userID := r.Int64Query("user_id")
			match = func(p *Purchase) bool { return p.UserID == userID }
		case q.Get("email") != "":
			email := q.Get("email")
			match = func(p *Purchase) bool { return p.Email == email }
		default:
			Throw(400, "missing user_id or email")
		}

		r.WriteJSON(Any{
			"purchases": FormatPurchases(r.store.ListPurchases(game.ID, match)),
		})
	})

	api.PathPrefix("/").Handler(handler(func(r *response) {
		Throw(404, "invalid api endpoint")
	}))

	return handlers.LoggingHandler(&testLogWriter{s: s}, m)
}

// testLogWriter forwards access log lines to the test log, until
// the server is closed: testing panics on logs after a test ends.
type testLogWriter struct {
	s *Server
}

func (w *testLogWriter) Write(p []byte) (int, error) {
	w.s.mu.Lock()
	defer w.s.mu.Unlock()
	if !w.s.closed {
		w.s.t.Logf("[ichortest] %s", string(bytes.TrimRight(p, "\n")))
	}
	return len(p), nil
}
