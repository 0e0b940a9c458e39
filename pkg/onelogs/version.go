// Package onelogs holds module-level metadata shared by the CLI and
// library consumers.
package onelogs

// Version is the onelogs release version.
const Version = "v0.1.0"
