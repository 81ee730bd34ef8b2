package coins

import (
	"context"
	"net/url"
	"sort"

	"github.com/ardeearam/coins-ph-go/exchange"
	"github.com/pkg/errors"
)

// Params holds the query parameters of a call. Keys are sent form-encoded in sorted order.
type Params map[string]string

func (o Params) values() url.Values {
	if len(o) == 0 {
		return nil
	}

	values := make(url.Values, len(o))

	for k, v := range o {
		values.Set(k, v)
	}

	return values
}

// Route is the static description of one coins.ph operation. Routes are turned into fresh
// exchange.Endpoint values for every call.
type Route struct {
	Name          string
	Path          string
	Method        exchange.Method
	Version       string
	ResponseField string

	// IDParam names the parameter that, when present, is appended to the path to address a
	// single resource. It stays in the query string as well unless PathOnlyID is set.
	IDParam string

	// RequireID makes IDParam mandatory.
	RequireID bool

	// PathOnlyID removes IDParam from the query string once it is in the path.
	PathOnlyID bool
}

// Endpoint builds the descriptor for a call of the route with the provided parameters and body. The
// body is dropped for GET routes.
func (r Route) Endpoint(params Params, body interface{}) (*exchange.Endpoint, error) {
	path := r.Path
	query := make(Params, len(params))

	for k, v := range params {
		query[k] = v
	}

	if r.IDParam != "" {
		id, ok := query[r.IDParam]

		switch {
		case ok && id != "":
			path += "/" + url.PathEscape(id)

			if r.PathOnlyID {
				delete(query, r.IDParam)
			}
		case r.RequireID:
			return nil, errors.Errorf("%s requires the %q parameter", r.Name, r.IDParam)
		}
	}

	if r.Method == exchange.GET {
		body = nil
	}

	return &exchange.Endpoint{
		Path:          path,
		Method:        r.Method,
		Version:       r.Version,
		Query:         query.values(),
		Body:          body,
		ResponseField: r.ResponseField,
	}, nil
}

// Routes is the registry of every supported coins.ph operation, keyed by operation name.
var Routes = map[string]Route{}

func register(r Route) {
	Routes[r.Name] = r
}

func init() {
	register(Route{Name: "createBuyorder", Path: "buyorder", Method: exchange.POST, Version: V2, ResponseField: "order"})
	register(Route{Name: "markBuyorderPaid", Path: "buyorder", Method: exchange.PUT, Version: LegacyVersion, ResponseField: "order", IDParam: "id", RequireID: true, PathOnlyID: true})
	register(Route{Name: "buyorder", Path: "buyorder", Method: exchange.GET, Version: LegacyVersion, ResponseField: "order", IDParam: "buyorder_id"})
	register(Route{Name: "createSellorder", Path: "sellorder", Method: exchange.POST, Version: V2, ResponseField: "order"})
	register(Route{Name: "validateField", Path: "validate-field", Method: exchange.POST, Version: V3, ResponseField: "is_valid"})
	register(Route{Name: "sellorder", Path: "sellorder", Method: exchange.GET, Version: V2, ResponseField: "order", IDParam: "sellorder_id"})
	register(Route{Name: "transactionHistory", Path: "buyorder", Method: exchange.GET, Version: V2, ResponseField: "orders"})
	register(Route{Name: "payinOutlets", Path: "payin-outlets", Method: exchange.GET, Version: LegacyVersion, ResponseField: "payin-outlets"})
	register(Route{Name: "payinOutletFees", Path: "payin-outlet-fees", Method: exchange.GET, Version: LegacyVersion, ResponseField: "payin-outlet-fees"})
	register(Route{Name: "payinOutletCategories", Path: "payin-outlet-categories", Method: exchange.GET, Version: LegacyVersion, ResponseField: "payin-outlet-categories"})
	register(Route{Name: "createPaymentRequest", Path: "payment-requests", Method: exchange.POST, Version: V3, ResponseField: "payment-request"})
	register(Route{Name: "paymentRequests", Path: "payment-requests", Method: exchange.GET, Version: V3, ResponseField: "payment-request", IDParam: "id"})
	register(Route{Name: "createTransferRequest", Path: "transfers", Method: exchange.POST, Version: V3, ResponseField: "transfer"})
	register(Route{Name: "transfers", Path: "transfers", Method: exchange.GET, Version: V3, ResponseField: "transfer", IDParam: "id"})
	register(Route{Name: "cryptoAccounts", Path: "crypto-accounts", Method: exchange.GET, Version: V3, ResponseField: "crypto-accounts"})
	register(Route{Name: "convertFunds", Path: "crypto-exchanges", Method: exchange.POST, Version: V3, ResponseField: "crypto-exchanges"})
	register(Route{Name: "cryptoExchanges", Path: "crypto-exchanges", Method: exchange.GET, Version: V3, ResponseField: "crypto-exchanges", IDParam: "id"})
	register(Route{Name: "cryptoRoutes", Path: "crypto-routes", Method: exchange.GET, Version: V3, ResponseField: "crypto-routes"})
	register(Route{Name: "cryptoPayments", Path: "crypto-payments", Method: exchange.GET, Version: V3, ResponseField: "crypto-payments", IDParam: "id"})
}

// RouteNames returns the names of every registered route in sorted order.
func RouteNames() []string {
	names := make([]string, 0, len(Routes))

	for name := range Routes {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Call runs the named route with the provided parameters and body.
func (o *Client) Call(ctx context.Context, name string, params Params, body interface{}) (*Response, error) {
	route, ok := Routes[name]
	if !ok {
		return nil, errors.Errorf("unknown coins.ph operation %q", name)
	}

	endpoint, err := route.Endpoint(params, body)
	if err != nil {
		return nil, err
	}

	return o.Execute(ctx, endpoint)
}
