// Package store is the process-lifetime table of finalized surfaces.
// Handles start at 1, grow by one per Put and are shared by every producer
// (template promotion and builder commits alike). Nothing is ever removed
// or persisted.
package store
