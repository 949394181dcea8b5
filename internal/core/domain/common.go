package domain

import "time"

// setIf assigns *src to *dst when src is non-nil.
func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func Int64Ptr(v int64) *int64 { return &v }

func IntPtr(v int) *int { return &v }

func StringPtr(v string) *string { return &v }

func BoolPtr(v bool) *bool { return &v }

func TimePtr(v time.Time) *time.Time { return &v }

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	return TimePtr(*t)
}

func cloneInt64(v *int64) *int64 {
	if v == nil {
		return nil
	}
	return Int64Ptr(*v)
}

func cloneMoney(m *Money) *Money {
	if m == nil {
		return nil
	}
	return MoneyPtr(*m)
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}
