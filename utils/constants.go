// File: utils/constants.go
package utils

// RoleCachePrefix is the prefix used for Redis role cache keys.
const RoleCachePrefix = "role:"

// ContextEmailKey is the gin context key holding the verified requester email.
const ContextEmailKey = "email"
