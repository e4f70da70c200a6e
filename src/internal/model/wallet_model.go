package model

type TopUpRequest struct {
	SessionID string `json:"-" validate:"required"`
	Amount    int64  `json:"amount" validate:"required,gt=0,max=10000000"`
}

type WithdrawRequest struct {
	SessionID     string `json:"-" validate:"required"`
	Amount        int64  `json:"amount" validate:"required,gt=0"`
	BankName      string `json:"bankName" validate:"required,max=64"`
	AccountNumber string `json:"accountNumber" validate:"required,numeric,min=6,max=20"`
	AccountHolder string `json:"accountHolder" validate:"required,max=120"`
}

type WalletResponse struct {
	TransactionID string `json:"transactionId"`
	Type          string `json:"type"`
	Amount        int64  `json:"amount"`
	Balance       int64  `json:"balance"`
}
