// file: internals/features/finance/payments/service/gateway.go
package service

import (
	"fmt"
	"time"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

var snapClient snap.Client

// InitGateway initializes the Midtrans Snap client with the server key.
func InitGateway(serverKey string) {
	snapClient.New(serverKey, midtrans.Sandbox)
}

// GatewayOrder is the opaque order handed back to the frontend checkout.
type GatewayOrder struct {
	OrderID   string  `json:"order_id"`
	Token     string  `json:"token"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	CreatedAt string  `json:"created_at"`
}

// CreateGatewayOrder asks the gateway for a checkout order. Best-effort from
// the ledger's perspective: nothing here touches payment rows.
func CreateGatewayOrder(amount float64, currency, customerName, customerEmail string) (*GatewayOrder, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("amount must be greater than 0")
	}
	if currency == "" {
		currency = "IDR"
	}

	orderID := fmt.Sprintf("order_%d", time.Now().UnixNano())
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: int64(amount),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: customerName,
			Email: customerEmail,
		},
	}

	resp, err := snapClient.CreateTransaction(req)
	if err != nil {
		return nil, err
	}

	return &GatewayOrder{
		OrderID:   orderID,
		Token:     resp.Token,
		Amount:    amount,
		Currency:  currency,
		CreatedAt: time.Now().Format(time.RFC3339),
	}, nil
}
