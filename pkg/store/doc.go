// Package store persists panel group sizes keyed by group id.
//
// Both implementations satisfy resizable.Storage.
package store
