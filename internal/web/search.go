package web

import (
	"errors"
	"net/http"

	"railsearch/internal/upstream"
)

const unreachableMessage = "Could not reach the schedule service. The server may be down, please try again later."

// serves the blank form. URL: GET /
func (s *Server) indexHandler(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, SearchPageVM{State: StateIdle})
}

// runs one search and renders exactly one of results/empty/error.
// URL: GET /search?sourceCode={CODE}&destinationCode={CODE}
func (s *Server) searchHandler(w http.ResponseWriter, r *http.Request) {
	query := ParseSearchQuery(r.URL.Query())
	vm := SearchPageVM{
		Source:      query.Source,
		Destination: query.Destination,
	}

	// Validation failures never reach the dispatcher.
	if msg := query.Validate(); msg != "" {
		vm.State = StateError
		vm.Error = msg
		s.renderPage(w, vm)
		return
	}

	trips, err := s.searcher.Search(r.Context(), query.Source, query.Destination)
	switch {
	case errors.Is(err, upstream.ErrUnreachable):
		vm.State = StateError
		vm.Error = unreachableMessage
	case err != nil:
		vm.State = StateError
		vm.Error = userMessage(err)
	case len(trips) == 0:
		vm.State = StateEmpty
	default:
		vm.State = StateResults
		vm.Route = RouteSummary(trips)
		vm.Cards = BuildTripCards(trips)
	}

	s.renderPage(w, vm)
}

// userMessage keeps the numeric status and status text verbatim for server
// errors and falls back to the raw error for anything else.
func userMessage(err error) string {
	var statusErr *upstream.StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Error()
	}
	return err.Error()
}

func (s *Server) renderPage(w http.ResponseWriter, vm SearchPageVM) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.renderer.Render(w, "search.html", vm); err != nil {
		s.logger.Printf("web: failed to render page: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
