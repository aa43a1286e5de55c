package model

// Helpers for building sparse update maps from pointer-field request structs.
// A nil pointer means "do not touch"; only present values end up in the map.

func setString(m map[string]any, column string, v *string) {
	if v != nil {
		m[column] = *v
	}
}

func setInt(m map[string]any, column string, v *int) {
	if v != nil {
		m[column] = *v
	}
}

func setInt64(m map[string]any, column string, v *int64) {
	if v != nil {
		m[column] = *v
	}
}

func setBool(m map[string]any, column string, v *bool) {
	if v != nil {
		m[column] = *v
	}
}
