// Package driven defines the outbound ports: interfaces the core services
// require from infrastructure adapters (the workspace connector and the
// config store).
package driven
