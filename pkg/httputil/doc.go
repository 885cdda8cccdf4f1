// Package httputil provides the HTTP plumbing shared by catalog clients:
// a JSON file cache with TTL and retry with exponential backoff.
//
// Cached entries live under ~/.cache/stylewheel/ by default, one file per key
// named by the SHA-256 of the key. [Retry] only retries errors wrapped in
// [RetryableError], which clients use for network failures and 5xx responses.
package httputil
