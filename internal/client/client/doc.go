// Package client contains the SecureVault remote collaborators.
//
// # Overview
//
// The package provides:
//  1. Transport-agnostic contracts for the backend: Auth (sign up/in/out,
//     password change, current session, auth state notifications), Records
//     (list, get, insert, update and delete of security keys) and Profiles
//     (profile and vault export).
//  2. A concrete gRPC implementation (see GRPCClient) that manages a
//     connection, injects an access token via an interceptor, transparently
//     refreshes expired tokens and maps gRPC status codes to sentinel errors.
//
// # Error Handling
//
// Failed calls return a *RemoteError whose message is the server's and which
// matches common sentinels with errors.Is (common.ErrorNotFound,
// ErrUnauthorized, ErrUnavailable, ...). Calls that need a session return
// ErrNoSession when nobody is signed in.
//
// # Concurrency & Contexts
//
// GRPCClient is safe for concurrent use. All operations accept
// context.Context and honor cancellation; each call is additionally bounded by
// the configured request timeout.
package client
