package usecase

import (
	"context"
	"fmt"
	"kerjabantu-service/src/internal/store"
	httpError "kerjabantu-service/src/pkg/http-error"
	"kerjabantu-service/src/pkg/log"
)

// openSession returns the store behind a session id.
func openSession(ctx context.Context, sessions *store.Manager, logger log.Log, scope, sessionID string) (*store.Store, *httpError.HttpError) {
	st, err := sessions.Get(ctx, sessionID)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("cannot open session: %v", err)
		logger.Error(scope, errObj.Message, "openSession", sessionID)
		return nil, errObj
	}
	return st, nil
}

// saveSession persists the session blob. A failure is logged and otherwise
// ignored; the in-memory state stays authoritative.
func saveSession(ctx context.Context, sessions *store.Manager, logger log.Log, scope, sessionID string, st *store.Store) {
	if err := sessions.Save(ctx, sessionID, st); err != nil {
		logger.Warn(scope, fmt.Sprintf("failed to save session: %v", err), "saveSession", sessionID)
	}
}

func noCurrentUser() *httpError.HttpError {
	errObj := httpError.NewUnauthorized()
	errObj.Message = "no user signed in for this session"
	return errObj
}

func validationError(err error) *httpError.HttpError {
	errObj := httpError.NewBadRequest()
	errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
	return errObj
}
