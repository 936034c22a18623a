package common

// AuthorizationHeaderName is the HTTP header carrying the bearer token.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix precedes the token inside the Authorization header.
const BearerPrefix = "Bearer "

// MsgFillAllFields is the generic message returned for missing input fields.
const MsgFillAllFields = "Please fill in all fields"
