// Package api adapts HTTP requests to the photo album services. Handlers
// return errors instead of writing failure responses themselves; Handle maps
// every returned error to a status code and a JSON body carrying the stable
// error code and the request's trace ID.
package api
