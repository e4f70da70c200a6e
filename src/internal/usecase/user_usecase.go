package usecase

import (
	"context"
	"errors"
	"fmt"
	"kerjabantu-service/src/internal/entity"
	"kerjabantu-service/src/internal/gateway/messaging"
	"kerjabantu-service/src/internal/model"
	"kerjabantu-service/src/internal/model/converter"
	"kerjabantu-service/src/internal/store"
	httpError "kerjabantu-service/src/pkg/http-error"
	"kerjabantu-service/src/pkg/log"
	"kerjabantu-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	walletTopUp    = "topup"
	walletWithdraw = "withdraw"
)

type UserUseCase struct {
	Log            log.Log
	Validate       *validator.Validate
	Sessions       *store.Manager
	WalletProducer *messaging.WalletProducer
}

func NewUserUseCase(
	logger log.Log,
	validate *validator.Validate,
	sessions *store.Manager,
	walletProducer *messaging.WalletProducer,
) *UserUseCase {
	return &UserUseCase{
		Log:            logger,
		Validate:       validate,
		Sessions:       sessions,
		WalletProducer: walletProducer,
	}
}

func profileOf(st *store.Store) *model.ProfileResponse {
	profile := &model.ProfileResponse{
		Persona:                st.Persona(),
		HasCompletedOnboarding: st.HasCompletedOnboarding(),
	}
	if user, ok := st.CurrentUser(); ok {
		profile.User = converter.UserToResponse(&user)
	}
	return profile
}

func (c *UserUseCase) Login(ctx context.Context, request *model.LoginUserRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		result.Error = validationError(err)
		c.Log.Error("Login-validation", err.Error(), "request", request.Email)
		return result
	}
	user, ok := c.Sessions.FindCatalogUserByEmail(request.Email)
	if !ok {
		errObj := httpError.NewUnauthorized()
		errObj.Message = "invalid email or password"
		result.Error = errObj
		c.Log.Info("user-usecase", errObj.Message, "Login", request.Email)
		return result
	}

	st, errObj := openSession(ctx, c.Sessions, c.Log, "user-usecase", request.SessionID)
	if errObj != nil {
		result.Error = errObj
		return result
	}
	st.SetCurrentUser(&user)
	saveSession(ctx, c.Sessions, c.Log, "user-usecase", request.SessionID, st)

	c.Log.Info("user-usecase", "user signed in", "Login", user.ID)
	result.Data = profileOf(st)
	return result
}

func (c *UserUseCase) Register(ctx context.Context, request *model.RegisterUserRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		result.Error = validationError(err)
		c.Log.Error("Register-validation", err.Error(), "request", request.Email)
		return result
	}
	if _, taken := c.Sessions.FindCatalogUserByEmail(request.Email); taken {
		errObj := httpError.NewConflict()
		errObj.Message = "email already in use"
		result.Error = errObj
		c.Log.Info("user-usecase", errObj.Message, "Register", request.Email)
		return result
	}

	st, errObj := openSession(ctx, c.Sessions, c.Log, "user-usecase", request.SessionID)
	if errObj != nil {
		result.Error = errObj
		return result
	}

	id := uuid.New()
	user := entity.User{
		ID:                 "user-" + id.String(),
		Name:               request.Name,
		Email:              request.Email,
		Phone:              request.Phone,
		Address:            request.Address,
		Avatar:             avatarFor(id),
		WalletBalance:      0,
		Subscription:       entity.SubscriptionNone,
		JobsPosted:         []string{},
		FavoriteKerjaMates: []string{},
	}
	st.SetCurrentUser(&user)
	st.SetHasCompletedOnboarding(false)
	saveSession(ctx, c.Sessions, c.Log, "user-usecase", request.SessionID, st)

	c.Log.Info("user-usecase", "user registered", "Register", user.ID)
	result.Data = profileOf(st)
	return result
}

// avatarFor picks a stock portrait from the id bytes.
func avatarFor(id uuid.UUID) string {
	folder := "women"
	if id[0]%2 == 0 {
		folder = "men"
	}
	return fmt.Sprintf("https://randomuser.me/api/portraits/%s/%d.jpg", folder, int(id[1])%100)
}

func (c *UserUseCase) Logout(ctx context.Context, request *model.LogoutUserRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		result.Error = validationError(err)
		return result
	}
	st, errObj := openSession(ctx, c.Sessions, c.Log, "user-usecase", request.SessionID)
	if errObj != nil {
		result.Error = errObj
		return result
	}
	st.SetCurrentUser(nil)
	saveSession(ctx, c.Sessions, c.Log, "user-usecase", request.SessionID, st)

	result.Data = profileOf(st)
	return result
}

func (c *UserUseCase) GetProfile(ctx context.Context, request *model.GetUserRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		result.Error = validationError(err)
		return result
	}
	st, errObj := openSession(ctx, c.Sessions, c.Log, "user-usecase", request.SessionID)
	if errObj != nil {
		result.Error = errObj
		return result
	}
	result.Data = profileOf(st)
	return result
}

func (c *UserUseCase) SetPersona(ctx context.Context, request *model.SetPersonaRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		result.Error = validationError(err)
		return result
	}
	st, errObj := openSession(ctx, c.Sessions, c.Log, "user-usecase", request.SessionID)
	if errObj != nil {
		result.Error = errObj
		return result
	}
	st.SetUserPersona(entity.UserPersona{
		DailyWork:  request.DailyWork,
		FormalJobs: request.FormalJobs,
		Training:   request.Training,
		NeedHelp:   request.NeedHelp,
	})
	saveSession(ctx, c.Sessions, c.Log, "user-usecase", request.SessionID, st)

	result.Data = profileOf(st)
	return result
}

func (c *UserUseCase) UpdatePersona(ctx context.Context, request *model.UpdatePersonaRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		result.Error = validationError(err)
		c.Log.Error("UpdatePersona-validation", err.Error(), "request", request.Key)
		return result
	}
	st, errObj := openSession(ctx, c.Sessions, c.Log, "user-usecase", request.SessionID)
	if errObj != nil {
		result.Error = errObj
		return result
	}
	if err := st.UpdateUserPersona(entity.PersonaKey(request.Key), request.Value); err != nil {
		result.Error = validationError(err)
		return result
	}
	saveSession(ctx, c.Sessions, c.Log, "user-usecase", request.SessionID, st)

	result.Data = profileOf(st)
	return result
}

func (c *UserUseCase) CompleteOnboarding(ctx context.Context, request *model.CompleteOnboardingRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		result.Error = validationError(err)
		return result
	}
	st, errObj := openSession(ctx, c.Sessions, c.Log, "user-usecase", request.SessionID)
	if errObj != nil {
		result.Error = errObj
		return result
	}
	st.SetHasCompletedOnboarding(true)
	saveSession(ctx, c.Sessions, c.Log, "user-usecase", request.SessionID, st)

	result.Data = profileOf(st)
	return result
}

func (c *UserUseCase) ToggleFavorite(ctx context.Context, request *model.ToggleFavoriteRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		result.Error = validationError(err)
		return result
	}
	st, errObj := openSession(ctx, c.Sessions, c.Log, "user-usecase", request.SessionID)
	if errObj != nil {
		result.Error = errObj
		return result
	}

	favorite, err := st.ToggleFavoriteKerjaMate(request.KerjaMateID)
	switch {
	case errors.Is(err, store.ErrNoCurrentUser):
		result.Error = noCurrentUser()
		return result
	case errors.Is(err, store.ErrKerjaMateNotFound):
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("kerjamate with id %s not found", request.KerjaMateID)
		result.Error = errObj
		return result
	case err != nil:
		errObj := httpError.NewInternalServerError()
		errObj.Message = err.Error()
		result.Error = errObj
		c.Log.Error("user-usecase", errObj.Message, "ToggleFavorite", request.KerjaMateID)
		return result
	}
	saveSession(ctx, c.Sessions, c.Log, "user-usecase", request.SessionID, st)

	result.Data = model.ToggleFavoriteResponse{
		KerjaMateID: request.KerjaMateID,
		Favorite:    favorite,
	}
	return result
}
