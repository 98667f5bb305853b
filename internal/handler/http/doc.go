// Package http implements the HTTP transport layer of the feed service.
//
// Every request runs through one declared pipeline (see [Handler.Init]):
// request id, token extraction and validation, access log, panic recovery
// and route authorization, in that order. Handlers then delegate to the
// service layer and map its errors to small JSON bodies.
package http
