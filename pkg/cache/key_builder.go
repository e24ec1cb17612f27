package cache

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// KeyBuilder derives deterministic cache keys for read endpoints.
//
// The key carries two shapes so single-entity entries can be matched by
// namespace and id without decoding the hash:
//
//	{namespace}:{id}:{hash}   point lookups
//	{namespace}:{hash}        collection reads
//
// The hash covers a canonical string of (prefix, namespace, handler name,
// path params, other request inputs), so distinct inputs produce distinct
// keys while identical requests always map to the same entry.
type KeyBuilder struct {
	prefix string
}

// NewKeyBuilder creates a key builder with a process-wide key prefix.
func NewKeyBuilder(prefix string) *KeyBuilder {
	return &KeyBuilder{prefix: prefix}
}

// Build derives the cache key for one request.
// elementID is the identifying path parameter of the endpoint, nil for
// collection reads. pathParams and extras hold the remaining request inputs.
func (b *KeyBuilder) Build(namespace string, elementID *int64, handler string, pathParams map[string]string, extras map[string]interface{}) string {
	raw := strings.Join([]string{
		b.prefix,
		namespace,
		handler,
		canonicalStringMap(pathParams),
		canonicalMap(extras),
	}, ":")

	hash := fmt.Sprintf("%016x", xxhash.Sum64String(raw))

	if elementID != nil {
		return fmt.Sprintf("%s:%d:%s", namespace, *elementID, hash)
	}
	return fmt.Sprintf("%s:%s", namespace, hash)
}

// canonicalStringMap renders a string map as "{k=v,k=v}" with sorted keys.
func canonicalStringMap(m map[string]string) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = k + "=" + m[k]
	}
	return "{" + strings.Join(pairs, ",") + "}"
}

// canonicalMap renders arbitrary request inputs deterministically.
func canonicalMap(m map[string]interface{}) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = k + "=" + canonicalValue(m[k])
	}
	return "{" + strings.Join(pairs, ",") + "}"
}

// canonicalValue reduces a value to a stable string representation.
// Primitives render directly; structured values are reduced to their JSON
// field representation; anything that cannot be serialized collapses to a
// tagged placeholder naming its type, so no input can break key derivation.
func canonicalValue(v interface{}) string {
	if v == nil {
		return "nil"
	}

	switch val := v.(type) {
	case string:
		return val
	case bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return fmt.Sprintf("%v", val)
	}

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("<obj:%T>", v)
	}
	return string(data)
}
