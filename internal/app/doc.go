// Package app wires configuration, logging, the data service and the HTTP
// transport into a runnable application with graceful shutdown.
package app
