package sink

import "strings"

// Delimiter separates path segments in key names.
const Delimiter = '/'

// RadixKey maps one key name to its one-level listing entry under prefix,
// reproducing S3 prefix/delimiter grouping:
//
//   - key's radical (the part after prefix) holds no delimiter: the key is a
//     leaf directly under the prefix and is emitted unchanged;
//   - the radical starts with the delimiter (directory-marker-like empty
//     segment): nothing is emitted;
//   - otherwise the entry is prefix + first segment + delimiter, a rollup
//     standing for everything one level below prefix.
//
// The caller must guarantee strings.HasPrefix(key, prefix).
func RadixKey(prefix, key string) (string, bool) {
	radical := key[len(prefix):]
	i := strings.IndexByte(radical, Delimiter)
	switch {
	case i < 0:
		return key, true
	case i == 0:
		return "", false
	default:
		return prefix + radical[:i+1], true
	}
}

// Rollup applies RadixKey to every name that starts with prefix and collects
// the entries into a set. Names without the prefix are skipped.
func Rollup(prefix string, names []string) ListKeys {
	out := make(ListKeys)
	for _, name := range names {
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		if entry, ok := RadixKey(prefix, name); ok {
			out[entry] = struct{}{}
		}
	}
	return out
}
