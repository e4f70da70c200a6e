package model

type WalletPayload struct {
	SessionID     string `json:"session_id"`
	UserID        string `json:"user_id"`
	Type          string `json:"type"`
	Amount        int64  `json:"amount"`
	Balance       int64  `json:"balance"`
	BankName      string `json:"bank_name,omitempty"`
	AccountNumber string `json:"account_number,omitempty"`
}

type WalletEvent struct {
	ID      string        `json:"id,omitempty"`
	Message WalletPayload `json:"message,omitempty"`
}

func (e *WalletEvent) GetId() string {
	return e.ID
}
