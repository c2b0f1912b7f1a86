// Package proto contains the gRPC contract between the Conductor server and
// its agents. The Go bindings are generated into this directory by protoc —
// run `go generate ./proto` after editing agent.proto.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative agent.proto
