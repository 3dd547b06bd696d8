package note

import (
	"net/http"

	"notes-api/internal/common/pagination"
	noteUC "notes-api/internal/usecase/note"
)

// Register mounts the /notes routes on mux. Reads are open; writes pass
// through guard, which applies authentication and rate limiting.
func Register(mux *http.ServeMux, svc *noteUC.Service, paginationCfg pagination.Config, guard func(http.Handler) http.Handler) {
	if guard == nil {
		guard = func(h http.Handler) http.Handler { return h }
	}

	mux.Handle("GET    /notes", ListHandler{Svc: svc, PaginationCfg: paginationCfg})
	mux.Handle("GET    /notes/{id}", GetHandler{svc})

	mux.Handle("POST   /notes", guard(CreateHandler{svc}))
	mux.Handle("PATCH  /notes/{id}", guard(UpdateHandler{svc}))
	mux.Handle("DELETE /notes/{id}", guard(DeleteHandler{svc}))
}
