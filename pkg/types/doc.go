// Package types defines the diary and entry data model, the Catalog and
// EntryStore interfaces, and the standard error values shared by the
// onelogs storage system.
package types
