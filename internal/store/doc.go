// Package store defines the persistence interfaces the application depends
// on. Concrete implementations live under internal/platform; services and
// handlers only see these interfaces, so storage backends can be swapped
// without touching callers.
package store
