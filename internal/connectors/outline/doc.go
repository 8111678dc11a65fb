// Package outline implements the Outline workspace connector: an
// authenticated API client with retry and rate-limit handling, page
// enumeration across collections and documents, content extraction, and
// credential validation.
//
// All Outline API calls are POST requests to {workspace}/api/{endpoint}
// with a JSON body; responses carry an "ok" flag and an endpoint-specific
// "data" payload.
package outline
