package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/gestor-tareas-api/internal/api/shared"
	"github.com/phrazzld/gestor-tareas-api/internal/domain"
	"github.com/phrazzld/gestor-tareas-api/internal/service/auth"
	"github.com/phrazzld/gestor-tareas-api/internal/store"
)

var errNoDBInContext = errors.New("no database connection in request context")

// requestDB returns the request-scoped database handle, writing a 500 if missing.
func requestDB(w http.ResponseWriter, r *http.Request) (store.DBTX, bool) {
	db, ok := shared.DBFromContext(r.Context())
	if !ok {
		HandleAPIError(w, r, errNoDBInContext)
		return nil, false
	}
	return db, true
}

// requestUserAndDB returns the authenticated user and the request-scoped
// database handle, writing an error response if either is missing.
func requestUserAndDB(w http.ResponseWriter, r *http.Request) (*domain.User, store.DBTX, bool) {
	user, ok := shared.UserFromContext(r.Context())
	if !ok {
		HandleAPIError(w, r, auth.ErrUnauthorized)
		return nil, nil, false
	}
	db, ok := requestDB(w, r)
	if !ok {
		return nil, nil, false
	}
	return user, db, true
}

// pathTaskID parses the {id} path parameter. An id that is not a positive
// integer cannot name a task, so it is reported as store.ErrTaskNotFound.
func pathTaskID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, store.ErrTaskNotFound
	}
	return id, nil
}

// decodeAndValidate decodes the JSON body into v and validates it.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := shared.DecodeJSON(r, v); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, shared.MsgInvalidRequest, err)
		return false
	}
	if err := shared.ValidateRequest(v); err != nil {
		HandleAPIError(w, r, err)
		return false
	}
	return true
}
