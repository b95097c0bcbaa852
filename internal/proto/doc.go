// Package proto holds the SecureVault wire API generated from vault.proto:
// the securevault.v1 messages and the VaultService client and server
// bindings.
//
// Regenerate after editing vault.proto:
//
//	protoc --go_out=. --go_opt=paths=source_relative \
//	    --go-grpc_out=. --go-grpc_opt=paths=source_relative vault.proto
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative vault.proto
