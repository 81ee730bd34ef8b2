package coins

import "context"

// CreateBuyOrder creates a new buy order.
func (o *Client) CreateBuyOrder(ctx context.Context, body interface{}) (*Response, error) {
	return o.Call(ctx, "createBuyorder", nil, body)
}

// MarkBuyOrderPaid marks the buy order with the provided id as paid.
func (o *Client) MarkBuyOrderPaid(ctx context.Context, id string) (*Response, error) {
	return o.Call(ctx, "markBuyorderPaid", Params{"id": id}, nil)
}

// BuyOrder retrieves a buy order. A "buyorder_id" parameter addresses a single order.
func (o *Client) BuyOrder(ctx context.Context, params Params) (*Response, error) {
	return o.Call(ctx, "buyorder", params, nil)
}

func (o *Client) CreateSellOrder(ctx context.Context, body interface{}) (*Response, error) {
	return o.Call(ctx, "createSellorder", nil, body)
}

// ValidateField validates field values (e.g. a payout account number) ahead of an order.
func (o *Client) ValidateField(ctx context.Context, body interface{}) (*Response, error) {
	return o.Call(ctx, "validateField", nil, body)
}

// SellOrder retrieves a sell order. A "sellorder_id" parameter addresses a single order.
func (o *Client) SellOrder(ctx context.Context, params Params) (*Response, error) {
	return o.Call(ctx, "sellorder", params, nil)
}

// TransactionHistory lists past buy orders.
func (o *Client) TransactionHistory(ctx context.Context) (*Response, error) {
	return o.Call(ctx, "transactionHistory", nil, nil)
}

func (o *Client) PayinOutlets(ctx context.Context, params Params) (*Response, error) {
	return o.Call(ctx, "payinOutlets", params, nil)
}

func (o *Client) PayinOutletFees(ctx context.Context, params Params) (*Response, error) {
	return o.Call(ctx, "payinOutletFees", params, nil)
}

func (o *Client) PayinOutletCategories(ctx context.Context, params Params) (*Response, error) {
	return o.Call(ctx, "payinOutletCategories", params, nil)
}

// CreatePaymentRequest creates a payment request. See PaymentRequest for a typed body.
func (o *Client) CreatePaymentRequest(ctx context.Context, body interface{}) (*Response, error) {
	return o.Call(ctx, "createPaymentRequest", nil, body)
}

// PaymentRequests lists payment requests, or retrieves one when params carries an "id".
func (o *Client) PaymentRequests(ctx context.Context, params Params) (*Response, error) {
	return o.Call(ctx, "paymentRequests", params, nil)
}

// CreateTransferRequest transfers funds between two accounts. See TransferRequest for a typed body.
func (o *Client) CreateTransferRequest(ctx context.Context, body interface{}) (*Response, error) {
	return o.Call(ctx, "createTransferRequest", nil, body)
}

// Transfers lists transfers, or retrieves one when params carries an "id".
func (o *Client) Transfers(ctx context.Context, params Params) (*Response, error) {
	return o.Call(ctx, "transfers", params, nil)
}

func (o *Client) CryptoAccounts(ctx context.Context, params Params) (*Response, error) {
	return o.Call(ctx, "cryptoAccounts", params, nil)
}

// ConvertFunds converts funds between the user's own accounts. See ConvertFundsRequest for a typed
// body.
func (o *Client) ConvertFunds(ctx context.Context, body interface{}) (*Response, error) {
	return o.Call(ctx, "convertFunds", nil, body)
}

// CryptoExchanges lists conversions, or retrieves one when params carries an "id".
func (o *Client) CryptoExchanges(ctx context.Context, params Params) (*Response, error) {
	return o.Call(ctx, "cryptoExchanges", params, nil)
}

func (o *Client) CryptoRoutes(ctx context.Context) (*Response, error) {
	return o.Call(ctx, "cryptoRoutes", nil, nil)
}

// CryptoPayments lists crypto payments, or retrieves one when params carries an "id".
func (o *Client) CryptoPayments(ctx context.Context, params Params) (*Response, error) {
	return o.Call(ctx, "cryptoPayments", params, nil)
}
