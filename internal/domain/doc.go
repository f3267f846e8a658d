// Package domain contains shared domain types used across entity sub-packages.
// Entity records live in domain/catalog, soft-link attribute sets in
// domain/link and the hierarchical tree builder in domain/tree. This root
// package holds the sentinel errors and the validation error type shared by
// all of them.
package domain
