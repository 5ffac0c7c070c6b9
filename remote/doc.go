// Package remote defines the structured error schemas reported by remote
// services: the Microsoft Graph response envelope and the Azure-style
// recursive error body, plus human-readable labels for HTTP status codes.
//
// These types are plain serialization structs; classification and wrapping
// into the unified taxonomy happens in the errors package.
package remote
