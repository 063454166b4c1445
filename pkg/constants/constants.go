// Package constants provides shared constants used throughout the stockyard
// codebase, including the product identifier range, file permissions, and
// default paths that should stay consistent across the application.
package constants

// Product identifier constants define the fixed 5-digit id space
const (
	// MinProductID is the lowest assignable product identifier
	MinProductID = 10000

	// MaxProductID is the highest assignable product identifier
	MaxProductID = 99999
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Store format constants
const (
	// StoreFieldCount is the number of comma-separated fields per record:
	// id, name, description, price, stock, category code
	StoreFieldCount = 6

	// DefaultStoreFile is the store filename used when none is configured
	DefaultStoreFile = "products.txt"
)
