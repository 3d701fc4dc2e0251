// Package dbg turns pointer identities into short, stable, human-readable
// names for debug printing. Adapted from the teacher's dbg/readablenames.go:
// names are generated lazily and memoized by pointer identity, so a node
// gets the same name every time it's printed during a single process run,
// but a different name across runs (a reminder that names are not part of
// any serialized output).
package dbg

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

var (
	mu   sync.Mutex
	memo = map[interface{}]string{}
)

func init() {
	petname.NonDeterministicMode()
}

// Name returns a readable debug name for obj, memoized by identity. Nil
// pointers and nil interfaces print as "Ø" rather than panicking.
func Name(obj interface{}) string {
	if obj == nil {
		return "Ø"
	}
	if v := reflect.ValueOf(obj); v.Kind() == reflect.Ptr && v.IsNil() {
		return "Ø"
	}

	mu.Lock()
	defer mu.Unlock()
	if name, ok := memo[obj]; ok {
		return name
	}
	name := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = name
	return name
}
