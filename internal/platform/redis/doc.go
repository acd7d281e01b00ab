// Package redis connects to Redis and implements a fixed-window rate
// limiter shared by every server instance.
package redis
