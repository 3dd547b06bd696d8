package note

import (
	"log/slog"
	"net/http"
	"time"

	"notes-api/internal/common/pagination"
	"notes-api/internal/handler/http/respond"
	"notes-api/internal/observability/logging"
	noteUC "notes-api/internal/usecase/note"
)

type ListHandler struct {
	Svc           *noteUC.Service
	PaginationCfg pagination.Config
}

// ServeHTTP lists notes
// @Summary      List notes
// @Description  Returns one page of notes ordered by id.
// @Tags         notes
// @Produce      json
// @Param        page   query    int  false  "Page number (1-based)" default(1) minimum(1)
// @Param        limit  query    int  false  "Notes per page" default(10) minimum(1) maximum(100)
// @Success      200 {object} ListResponse
// @Failure      400 {object} respond.ErrorBody "Invalid query parameters"
// @Failure      500 {object} respond.ErrorBody "Database error"
// @Router       /notes [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()
	logger := logging.FromContext(ctx)

	params, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		logger.Warn("invalid pagination parameters", slog.String("error", err.Error()))
		pagination.RecordError("validation")
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.Svc.ListPaginated(ctx, params)
	if err != nil {
		pagination.LogError(logger, params, err, "database")
		pagination.RecordError("database")
		writeError(w, err)
		return
	}

	notes := make([]DTO, 0, len(result.Data))
	for _, n := range result.Data {
		notes = append(notes, toDTO(n))
	}

	pagination.RecordRequest(http.StatusOK, params.Page)
	pagination.LogResponse(logger, params, len(notes), time.Since(start), http.StatusOK)

	respond.JSON(w, http.StatusOK, ListResponse{
		Status:     "ok",
		Count:      len(notes),
		Notes:      notes,
		Pagination: result.Pagination,
	})
}
