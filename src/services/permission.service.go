package services

// Permission filter: plain set membership over path-style string keys
// ("dashboard/penjualan", "reports/sales"). No hierarchy, no wildcards; a
// missing child key hides that child even when the parent key is present.

// Visible reports whether the exact key is in the permission set.
func Visible(permissions []string, key string) bool {
	for _, p := range permissions {
		if p == key {
			return true
		}
	}
	return false
}

// FirstPermitted returns the first permitted option, used to reset the active
// selection after the permission set changes. Empty when nothing is allowed.
func FirstPermitted(permissions []string, options []string) string {
	for _, opt := range options {
		if Visible(permissions, opt) {
			return opt
		}
	}
	return ""
}
