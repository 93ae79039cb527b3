// Package gateway wraps every call to the remote REST API. It attaches the
// bearer token and, on a single 401, performs exactly one token refresh and
// reissues the original request once.
package gateway
