package converter

import (
	"kerjabantu-service/src/internal/entity"
	"kerjabantu-service/src/internal/model"
)

func UserToResponse(user *entity.User) *model.UserResponse {
	if user == nil {
		return nil
	}
	return &model.UserResponse{
		ID:                 user.ID,
		Name:               user.Name,
		Email:              user.Email,
		Phone:              user.Phone,
		Avatar:             user.Avatar,
		Address:            user.Address,
		WalletBalance:      user.WalletBalance,
		Subscription:       string(user.Subscription),
		JobsPosted:         append([]string{}, user.JobsPosted...),
		FavoriteKerjaMates: append([]string{}, user.FavoriteKerjaMates...),
	}
}

func WalletToEvent(eventID, sessionID string, user *entity.User, txType string, amount int64) *model.WalletEvent {
	return &model.WalletEvent{
		ID: eventID,
		Message: model.WalletPayload{
			SessionID: sessionID,
			UserID:    user.ID,
			Type:      txType,
			Amount:    amount,
			Balance:   user.WalletBalance,
		},
	}
}
