package coins

import "github.com/shopspring/decimal"

// NOTE ~> Amounts are decimals so that they serialize as exact strings ("0.0105") rather than
//  floats. Field order below is the order in which fields are signed and sent.

// TransferRequest is the body of CreateTransferRequest.
type TransferRequest struct {
	Account       string          `json:"account"`
	TargetAddress string          `json:"target_address"`
	Amount        decimal.Decimal `json:"amount"`
	Message       string          `json:"message,omitempty"`
}

// PaymentRequest is the body of CreatePaymentRequest.
type PaymentRequest struct {
	PayerContactInfo           string          `json:"payer_contact_info"`
	ReceivingAccount           string          `json:"receiving_account"`
	Amount                     decimal.Decimal `json:"amount"`
	Message                    string          `json:"message"`
	SupportedPaymentCollectors []string        `json:"supported_payment_collectors,omitempty"`
	ExpiresAt                  string          `json:"expires_at,omitempty"`
}

// ConvertFundsRequest is the body of ConvertFunds.
type ConvertFundsRequest struct {
	SourceAccount string          `json:"source_account"`
	TargetAccount string          `json:"target_account"`
	Amount        decimal.Decimal `json:"amount"`
}
