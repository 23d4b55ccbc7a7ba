package enum

import (
	"fmt"
	"reflect"
	"sync"
)

var (
	enumManager = map[reflect.Type]any{}
	mutex       sync.RWMutex
)

type enum[T ~string] struct {
	toEnum map[string]T
	values []T
}

// New registers value as a member of its enum type and returns it, so it can be used in var
// declarations.
func New[T ~string](value T) T {
	mutex.Lock()
	defer mutex.Unlock()

	t := reflect.TypeOf(value)
	e, ok := enumManager[t].(*enum[T])
	if !ok {
		e = &enum[T]{toEnum: make(map[string]T)}
		enumManager[t] = e
	}

	if _, ok := e.toEnum[string(value)]; !ok {
		e.values = append(e.values, value)
	}
	e.toEnum[string(value)] = value
	return value
}

func ToEnum[T ~string](s string) (T, error) {
	var defaultT T

	mutex.RLock()
	defer mutex.RUnlock()

	e, ok := enumManager[reflect.TypeOf(defaultT)].(*enum[T])
	if !ok {
		return defaultT, fmt.Errorf("not found enum type %T", defaultT)
	}

	t, ok := e.toEnum[s]
	if !ok {
		return defaultT, fmt.Errorf("not found value %s in enum %T", s, defaultT)
	}

	return t, nil
}

// Values returns all registered members of T in registration order.
func Values[T ~string]() []T {
	var defaultT T

	mutex.RLock()
	defer mutex.RUnlock()

	e, ok := enumManager[reflect.TypeOf(defaultT)].(*enum[T])
	if !ok {
		return nil
	}

	values := make([]T, len(e.values))
	copy(values, e.values)
	return values
}
