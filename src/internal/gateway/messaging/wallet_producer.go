package messaging

import (
	"kerjabantu-service/src/internal/model"
	"kerjabantu-service/src/pkg/log"
)

const (
	TopicWalletTopUp    = "wallet-topup"
	TopicWalletWithdraw = "wallet-withdraw"
)

type WalletProducer struct {
	TopUpProducer    Producer[*model.WalletEvent]
	WithdrawProducer Producer[*model.WalletEvent]
}

func NewWalletProducer(publisher Publisher, log log.Log) *WalletProducer {
	return &WalletProducer{
		TopUpProducer: Producer[*model.WalletEvent]{
			Publisher: publisher,
			Topic:     TopicWalletTopUp,
			Log:       log,
		},
		WithdrawProducer: Producer[*model.WalletEvent]{
			Publisher: publisher,
			Topic:     TopicWalletWithdraw,
			Log:       log,
		},
	}
}

func (p *WalletProducer) SendTopUp(event *model.WalletEvent) error {
	return p.TopUpProducer.Send(event)
}

func (p *WalletProducer) SendWithdraw(event *model.WalletEvent) error {
	return p.WithdrawProducer.Send(event)
}
