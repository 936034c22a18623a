// Package client talks to the fintrack REST API.
//
// HTTPClient keeps the bearer token returned by Register or Login and sends
// it with every protected call until Logout. Amounts travel as JSON numbers
// and are decoded into decimal.Decimal.
//
// # Error Handling
//
// Transport failures are reported as ErrUnavailable. Non-2xx responses come
// back as *APIError carrying the server message; 401 and 404 also match
// ErrUnauthorized and ErrNotFound under errors.Is. Protected calls made
// before logging in fail with ErrNotLoggedIn without touching the network.
package client
