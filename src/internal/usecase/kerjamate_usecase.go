package usecase

import (
	"context"
	"fmt"
	"kerjabantu-service/src/internal/model"
	"kerjabantu-service/src/internal/store"
	httpError "kerjabantu-service/src/pkg/http-error"
	"kerjabantu-service/src/pkg/log"
	"kerjabantu-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
)

type KerjaMateUseCase struct {
	Log      log.Log
	Validate *validator.Validate
	Sessions *store.Manager
}

func NewKerjaMateUseCase(logger log.Log, validate *validator.Validate, sessions *store.Manager) *KerjaMateUseCase {
	return &KerjaMateUseCase{
		Log:      logger,
		Validate: validate,
		Sessions: sessions,
	}
}

// List applies the filter named by the query, if any, and returns the
// session's filtered view.
func (c *KerjaMateUseCase) List(ctx context.Context, request *model.ListKerjaMatesRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		result.Error = validationError(err)
		return result
	}
	if request.Skill != "" && request.Available != "" {
		errObj := httpError.NewBadRequest()
		errObj.Message = "filter by skill or by availability, not both"
		result.Error = errObj
		return result
	}
	st, errObj := openSession(ctx, c.Sessions, c.Log, "kerjamate-usecase", request.SessionID)
	if errObj != nil {
		result.Error = errObj
		return result
	}

	switch {
	case request.Skill != "":
		st.FilterKerjaMatesBySkill(request.Skill)
	case request.Available != "":
		st.FilterKerjaMatesByAvailability(request.Available == "true")
	}

	kerjaMates := st.FilteredKerjaMates()
	result.Data = model.KerjaMateListResponse{
		KerjaMates: kerjaMates,
		Total:      len(kerjaMates),
	}
	return result
}

func (c *KerjaMateUseCase) ResetFilter(ctx context.Context, request *model.SessionRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		result.Error = validationError(err)
		return result
	}
	st, errObj := openSession(ctx, c.Sessions, c.Log, "kerjamate-usecase", request.SessionID)
	if errObj != nil {
		result.Error = errObj
		return result
	}
	st.ResetKerjaMatesFilter()

	kerjaMates := st.FilteredKerjaMates()
	result.Data = model.KerjaMateListResponse{
		KerjaMates: kerjaMates,
		Total:      len(kerjaMates),
	}
	return result
}

func (c *KerjaMateUseCase) Get(ctx context.Context, request *model.GetKerjaMateRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		result.Error = validationError(err)
		return result
	}
	st, errObj := openSession(ctx, c.Sessions, c.Log, "kerjamate-usecase", request.SessionID)
	if errObj != nil {
		result.Error = errObj
		return result
	}

	kerjaMate, ok := st.GetKerjaMateByID(request.ID)
	if !ok {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("kerjamate with id %s not found", request.ID)
		result.Error = errObj
		return result
	}
	result.Data = kerjaMate
	return result
}
