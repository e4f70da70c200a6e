package usecase_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kerjabantu-service/src/internal/gateway/messaging"
	"kerjabantu-service/src/internal/model"
)

var ctx = context.Background()

func TestLogin(t *testing.T) {
	h := newHarness(t)

	requireCode(t, h.users.Login(ctx, &model.LoginUserRequest{SessionID: sessionID, Email: "nobody@example.com", Password: "secret"}), 401)
	requireCode(t, h.users.Login(ctx, &model.LoginUserRequest{SessionID: sessionID, Email: "not-an-email", Password: "secret"}), 400)

	result := h.users.Login(ctx, &model.LoginUserRequest{SessionID: sessionID, Email: "Budi.Santoso@example.com", Password: "secret"})
	requireOK(t, result)
	profile := result.Data.(*model.ProfileResponse)
	assert.Equal(t, "user-002", profile.User.ID)

	state, err := h.repo.Load(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, "user-002", state.CurrentUser.ID)
}

func TestRegister(t *testing.T) {
	h := newHarness(t)
	req := &model.RegisterUserRequest{
		SessionID: sessionID,
		Name:      "Rani Putri",
		Email:     "rani@example.com",
		Phone:     "+62811111111",
		Password:  "rahasia1",
		Confirm:   "rahasia1",
	}

	result := h.users.Register(ctx, req)
	requireOK(t, result)
	profile := result.Data.(*model.ProfileResponse)
	assert.True(t, strings.HasPrefix(profile.User.ID, "user-"))
	assert.Zero(t, profile.User.WalletBalance)
	assert.Equal(t, "none", profile.User.Subscription)
	assert.Empty(t, profile.User.JobsPosted)
	assert.False(t, profile.HasCompletedOnboarding)
	assert.Contains(t, profile.User.Avatar, "randomuser.me")
}

func TestRegister_Rejections(t *testing.T) {
	h := newHarness(t)

	taken := &model.RegisterUserRequest{SessionID: sessionID, Name: "Siti", Email: "siti.nuraini@example.com", Password: "rahasia1", Confirm: "rahasia1"}
	requireCode(t, h.users.Register(ctx, taken), 409)

	mismatch := &model.RegisterUserRequest{SessionID: sessionID, Name: "Rani", Email: "rani@example.com", Password: "rahasia1", Confirm: "rahasia2"}
	requireCode(t, h.users.Register(ctx, mismatch), 400)
}

func TestLogoutThenWalletNeedsUser(t *testing.T) {
	h := newHarness(t)

	result := h.users.Logout(ctx, &model.LogoutUserRequest{SessionID: sessionID})
	requireOK(t, result)
	assert.Nil(t, result.Data.(*model.ProfileResponse).User)

	requireCode(t, h.users.TopUp(ctx, &model.TopUpRequest{SessionID: sessionID, Amount: 1000}), 401)
	requireCode(t, h.users.Withdraw(ctx, &model.WithdrawRequest{
		SessionID: sessionID, Amount: 1000, BankName: "BCA", AccountNumber: "1234567890", AccountHolder: "Siti",
	}), 401)
}

func TestPersonaAndOnboarding(t *testing.T) {
	h := newHarness(t)

	requireOK(t, h.users.SetPersona(ctx, &model.SetPersonaRequest{SessionID: sessionID, DailyWork: true}))
	requireOK(t, h.users.UpdatePersona(ctx, &model.UpdatePersonaRequest{SessionID: sessionID, Key: "needHelp", Value: true}))
	requireCode(t, h.users.UpdatePersona(ctx, &model.UpdatePersonaRequest{SessionID: sessionID, Key: "nightOwl", Value: true}), 400)

	result := h.users.CompleteOnboarding(ctx, &model.CompleteOnboardingRequest{SessionID: sessionID})
	requireOK(t, result)
	profile := result.Data.(*model.ProfileResponse)
	assert.True(t, profile.Persona.DailyWork)
	assert.True(t, profile.Persona.NeedHelp)
	assert.True(t, profile.HasCompletedOnboarding)

	state, err := h.repo.Load(ctx, sessionID)
	require.NoError(t, err)
	assert.True(t, state.HasCompletedOnboarding)
	assert.True(t, state.UserPersona.NeedHelp)
}

func TestTopUpPublishesEvent(t *testing.T) {
	h := newHarness(t)

	result := h.users.TopUp(ctx, &model.TopUpRequest{SessionID: sessionID, Amount: 250000})
	requireOK(t, result)
	wallet := result.Data.(model.WalletResponse)
	assert.EqualValues(t, 750000, wallet.Balance)

	msgs := h.publisher.Topic(messaging.TopicWalletTopUp)
	require.Len(t, msgs, 1)
	assert.Equal(t, wallet.TransactionID, msgs[0].Key)
	var event model.WalletEvent
	require.NoError(t, json.Unmarshal(msgs[0].Value, &event))
	assert.EqualValues(t, 750000, event.Message.Balance)
	assert.Equal(t, "user-001", event.Message.UserID)

	requireCode(t, h.users.TopUp(ctx, &model.TopUpRequest{SessionID: sessionID, Amount: -5}), 400)
}

func TestWithdraw(t *testing.T) {
	h := newHarness(t)
	req := &model.WithdrawRequest{SessionID: sessionID, Amount: 600000, BankName: "BCA", AccountNumber: "1234567890", AccountHolder: "Siti Nuraini"}

	requireCode(t, h.users.Withdraw(ctx, req), 409)
	assert.Empty(t, h.publisher.Topic(messaging.TopicWalletWithdraw))

	req.Amount = 200000
	result := h.users.Withdraw(ctx, req)
	requireOK(t, result)
	assert.EqualValues(t, 300000, result.Data.(model.WalletResponse).Balance)
	assert.Len(t, h.publisher.Topic(messaging.TopicWalletWithdraw), 1)

	req.AccountNumber = "abc"
	requireCode(t, h.users.Withdraw(ctx, req), 400)
}

func TestToggleFavorite(t *testing.T) {
	h := newHarness(t)

	result := h.users.ToggleFavorite(ctx, &model.ToggleFavoriteRequest{SessionID: sessionID, KerjaMateID: "km-002"})
	requireOK(t, result)
	assert.True(t, result.Data.(model.ToggleFavoriteResponse).Favorite)

	requireCode(t, h.users.ToggleFavorite(ctx, &model.ToggleFavoriteRequest{SessionID: sessionID, KerjaMateID: "km-999"}), 404)
}
