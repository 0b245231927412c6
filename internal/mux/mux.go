package mux

import (
	"context"
	"net/http"

	gmux "github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"holdem-server/pkg/playable/poker/texasholdem"
	"holdem-server/pkg/room"
)

type ctxKey int

const (
	ctxTableKey ctxKey = iota
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string
	pitBoss *room.PitBoss
}

// NewMux returns a new HTTP mux
// Every table opened through it uses opts
func NewMux(version string, opts texasholdem.Options) *Mux {
	pitBoss := room.NewPitBoss(logrus.StandardLogger(), opts)
	pitBoss.StartShift()

	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		pitBoss: pitBoss,
	}

	r := this.Router
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSONError(w, http.StatusNotFound, nil)
	})

	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())

	tr := r.PathPrefix("/table/{id:[A-Za-z0-9_-]{1,64}}").Subrouter()
	tr.Use(this.tableMiddleware)
	tr.Methods(http.MethodGet).Path("/ws").Handler(this.getTableIDWS())

	return this
}

func (m *Mux) tableMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := gmux.Vars(r)["id"]
		newCtx := context.WithValue(r.Context(), ctxTableKey, id)
		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}
