// Package petfinder provides the pet source backed by the Petfinder v2 API.
//
// A Source runs in one of two modes, fixed at construction. With both client
// credentials it is live: it exchanges them for a bearer token, lists animals
// and maps the payload into domain.Pet records. Without them it is offline and
// serves a small built-in sample catalog.
//
// Search never fails. Any error on the live path (network, token exchange,
// status, decoding, throttling) is logged at debug level and answered from
// the sample catalog, so callers always receive a well-formed page.
package petfinder
