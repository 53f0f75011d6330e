// Package google provides shared plumbing for the Google API
// collaborators: service construction, service-account credentials,
// rate limiting and error classification. The Drive and Docs
// sub-packages build on it to implement the core's listing and fetch
// ports.
package google
