// Package common contains shared constants and sentinel errors used across
// SecureVault components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// SecurityKeysTable names the relational table holding security keys. It is
// also the logical resource name used for request sequencing on the client.
const SecurityKeysTable = "security_keys"
