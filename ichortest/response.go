package ichortest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

type response struct {
	s      *Server
	w      http.ResponseWriter
	req    *http.Request
	status int
	store  *Store

	currentKey  *APIKey
	currentUser *User
}

type APIError struct {
	status   int
	messages []string
}

func Error(status int, messages ...string) APIError {
	return APIError{
		status:   status,
		messages: messages,
	}
}

func Throw(status int, messages ...string) APIError {
	panic(Error(status, messages...))
}

func (ae APIError) Error() string {
	return fmt.Sprintf("api error (%d): %v", ae.status, ae.messages)
}

func (r *response) WriteError(status int, errors ...string) {
	r.status = status
	payload := map[string]interface{}{
		"errors": errors,
	}
	r.WriteJSON(payload)
}

func (r *response) WriteJSON(payload interface{}) {
	r.Header().Set("content-type", "application/json")
	r.WriteHeader()

	bs, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		panic(err)
	}

	r.Write(bs)
}

func (r *response) Header() http.Header {
	return r.w.Header()
}

func (r *response) WriteHeader() {
	status := r.status
	if r.status == 0 {
		status = 200
	}
	r.w.WriteHeader(status)
}

func (r *response) Write(p []byte) {
	r.w.Write(p)
}

func (r *response) Var(name string) string {
	return mux.Vars(r.req)[name]
}

func (r *response) Int64Var(name string) int64 {
	res, err := strconv.ParseInt(r.Var(name), 10, 64)
	if err != nil {
		Throw(404, fmt.Sprintf("invalid %s", name))
	}
	return res
}

func (r *response) Int64Query(name string) int64 {
	res, err := strconv.ParseInt(r.req.URL.Query().Get(name), 10, 64)
	if err != nil {
		Throw(400, fmt.Sprintf("invalid %s", name))
	}
	return res
}

// CheckAPIKey looks up the key from the URL path. The upstream API
// answers unknown keys with a 403 and a JSON error list.
func (r *response) CheckAPIKey() {
	keyString := r.Var("key")
	if keyString == "" {
		Throw(401, "authentication required")
	}

	apiKey := r.store.FindAPIKeysByKey(keyString)
	if apiKey == nil {
		Throw(403, "invalid key")
	}

	r.currentKey = apiKey
	r.currentUser = r.store.FindUser(apiKey.UserID)
	if r.currentUser == nil {
		Throw(500, "api key has no user")
	}
}

func (r *response) AssertAuthorization(authorized bool) {
	if !authorized {
		Throw(403, "forbidden")
	}
}

func (r *response) FindGame(gameID int64) *Game {
	game := r.store.FindGame(gameID)
	if game == nil {
		Throw(404, "game not found")
	}
	return game
}
