// Package api contains the HTTP handlers, request/response models, and error
// mapping for the public REST surface. Handlers stay thin: they decode and
// validate requests, delegate to stores and services, and translate internal
// errors into sanitized client responses.
package api
