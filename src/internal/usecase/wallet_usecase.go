package usecase

import (
	"context"
	"fmt"
	"kerjabantu-service/src/internal/model"
	"kerjabantu-service/src/internal/model/converter"
	httpError "kerjabantu-service/src/pkg/http-error"
	"kerjabantu-service/src/pkg/utils"

	"github.com/google/uuid"
)

func (c *UserUseCase) TopUp(ctx context.Context, request *model.TopUpRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		result.Error = validationError(err)
		c.Log.Error("TopUp-validation", err.Error(), "request", utils.ConvertString(request.Amount))
		return result
	}
	st, errObj := openSession(ctx, c.Sessions, c.Log, "wallet-usecase", request.SessionID)
	if errObj != nil {
		result.Error = errObj
		return result
	}
	if !st.TopUpWallet(request.Amount) {
		result.Error = noCurrentUser()
		return result
	}
	saveSession(ctx, c.Sessions, c.Log, "wallet-usecase", request.SessionID, st)

	user, _ := st.CurrentUser()
	txID := uuid.NewString()
	event := converter.WalletToEvent(txID, request.SessionID, &user, walletTopUp, request.Amount)
	if err := c.WalletProducer.SendTopUp(event); err != nil {
		c.Log.Error("wallet-usecase", fmt.Sprintf("Failed publish wallet topup event : %+v", err), "TopUp", txID)
	}

	c.Log.Info("wallet-usecase", "wallet topped up", "TopUp", utils.ConvertString(event.Message))
	result.Data = model.WalletResponse{
		TransactionID: txID,
		Type:          walletTopUp,
		Amount:        request.Amount,
		Balance:       user.WalletBalance,
	}
	return result
}

func (c *UserUseCase) Withdraw(ctx context.Context, request *model.WithdrawRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		result.Error = validationError(err)
		c.Log.Error("Withdraw-validation", err.Error(), "request", utils.ConvertString(request.Amount))
		return result
	}
	st, errObj := openSession(ctx, c.Sessions, c.Log, "wallet-usecase", request.SessionID)
	if errObj != nil {
		result.Error = errObj
		return result
	}
	if _, ok := st.CurrentUser(); !ok {
		result.Error = noCurrentUser()
		return result
	}
	if !st.DeductFromWallet(request.Amount) {
		errObj := httpError.NewConflict()
		errObj.Message = "insufficient balance"
		result.Error = errObj
		c.Log.Info("wallet-usecase", errObj.Message, "Withdraw", utils.ConvertString(request.Amount))
		return result
	}
	saveSession(ctx, c.Sessions, c.Log, "wallet-usecase", request.SessionID, st)

	user, _ := st.CurrentUser()
	txID := uuid.NewString()
	event := converter.WalletToEvent(txID, request.SessionID, &user, walletWithdraw, request.Amount)
	event.Message.BankName = request.BankName
	event.Message.AccountNumber = request.AccountNumber
	if err := c.WalletProducer.SendWithdraw(event); err != nil {
		c.Log.Error("wallet-usecase", fmt.Sprintf("Failed publish wallet withdraw event : %+v", err), "Withdraw", txID)
	}

	result.Data = model.WalletResponse{
		TransactionID: txID,
		Type:          walletWithdraw,
		Amount:        request.Amount,
		Balance:       user.WalletBalance,
	}
	return result
}
