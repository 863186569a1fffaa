package keyhash

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"sync"

	"github.com/goccy/go-reflect"
)

var (
	// encodersMutex is a mutex for the encoders.
	encodersMutex = sync.RWMutex{}

	// encoders caches the key encoder of each key type by type name.
	// A nil encoder means the type is not supported.
	encoders = map[string]func(any) []byte{}
)

// Func returns a hash function for the key type.
// It returns nil if the key type is not a number, bool or string kind.
func Func[K comparable]() func(K) int {
	var zero K
	encode := lookupEncoder(zero)
	if encode == nil {
		return nil
	}
	return func(key K) int {
		return sum(encode(key))
	}
}

// Bucket maps a hash value to an index in [0, n).
func Bucket(hash, n int) int {
	index := hash % n
	if index < 0 {
		index += n
	}
	return index
}

// lookupEncoder retrieves or creates the encoder for the type of the given value.
func lookupEncoder(v any) func(any) []byte {
	if v == nil {
		// interface key types
		return nil
	}
	name := reflect.TypeOf(v).String()

	encodersMutex.RLock()
	if f, ok := encoders[name]; ok {
		encodersMutex.RUnlock()
		return f
	}
	encodersMutex.RUnlock()

	encodersMutex.Lock()
	defer encodersMutex.Unlock()
	if f, ok := encoders[name]; ok {
		return f
	}

	f := createEncoder(v)
	encoders[name] = f
	return f
}

// createEncoder creates an encoder that turns a key into the bytes to hash.
// Numbers are widened to 8 bytes in big endian order.
func createEncoder(v any) func(any) []byte {
	switch v.(type) {
	case bool:
		return func(v any) []byte {
			if v.(bool) {
				return []byte{1}
			}
			return []byte{0}
		}
	case int:
		return uint64Encoder(func(v any) uint64 { return uint64(v.(int)) })
	case int8:
		return uint64Encoder(func(v any) uint64 { return uint64(v.(int8)) })
	case int16:
		return uint64Encoder(func(v any) uint64 { return uint64(v.(int16)) })
	case int32:
		return uint64Encoder(func(v any) uint64 { return uint64(v.(int32)) })
	case int64:
		return uint64Encoder(func(v any) uint64 { return uint64(v.(int64)) })
	case uint:
		return uint64Encoder(func(v any) uint64 { return uint64(v.(uint)) })
	case uint8:
		return uint64Encoder(func(v any) uint64 { return uint64(v.(uint8)) })
	case uint16:
		return uint64Encoder(func(v any) uint64 { return uint64(v.(uint16)) })
	case uint32:
		return uint64Encoder(func(v any) uint64 { return uint64(v.(uint32)) })
	case uint64:
		return uint64Encoder(func(v any) uint64 { return v.(uint64) })
	case float32:
		return uint64Encoder(func(v any) uint64 { return floatBits(float64(v.(float32))) })
	case float64:
		return uint64Encoder(func(v any) uint64 { return floatBits(v.(float64)) })
	case string:
		return func(v any) []byte {
			return []byte(v.(string))
		}
	}

	// named types such as `type RoomID string`
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.String:
		return func(v any) []byte {
			return []byte(reflect.ValueOf(v).String())
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return uint64Encoder(func(v any) uint64 { return uint64(reflect.ValueOf(v).Int()) })
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return uint64Encoder(func(v any) uint64 { return reflect.ValueOf(v).Uint() })
	default:
		return nil
	}
}

// floatBits returns the bits of f with -0 folded into +0, since the two compare equal.
func floatBits(f float64) uint64 {
	if f == 0 {
		f = 0
	}
	return math.Float64bits(f)
}

func uint64Encoder(f func(any) uint64) func(any) []byte {
	return func(v any) []byte {
		var b [8]byte
		binary.BigEndian.PutUint64(b[:], f(v))
		return b[:]
	}
}

// sum computes a FNV-1a hash of the given bytes.
func sum(b []byte) int {
	h := fnv.New64a()
	_, _ = h.Write(b)
	return int(h.Sum64())
}
