// Package http contains the HTTP handlers for the language dataset API.
//
// Handlers are thin: they parse and validate the request, call the data
// service, and render JSON via chi/render. All error responses go through
// the shared ErrorHandler so the whole API fails in one shape.
package http
