package pricing

// RouteTable maps "ORIGIN-DEST" keys to a value. Lookups are symmetric:
// a missing A-B entry falls back to B-A, then to the table default.
type RouteTable[V int | int64] struct {
	entries  map[string]V
	fallback V
}

func NewRouteTable[V int | int64](fallback V, entries map[string]V) RouteTable[V] {
	return RouteTable[V]{entries: entries, fallback: fallback}
}

func RouteKey(origin, dest string) string {
	return origin + "-" + dest
}

func (t RouteTable[V]) Lookup(origin, dest string) V {
	if v, ok := t.entries[RouteKey(origin, dest)]; ok {
		return v
	}
	if v, ok := t.entries[RouteKey(dest, origin)]; ok {
		return v
	}
	return t.fallback
}
