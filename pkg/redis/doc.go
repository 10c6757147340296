// Package redis bootstraps the Redis client behind the pageview usage
// source: connection with retry and a health probe.
package redis
