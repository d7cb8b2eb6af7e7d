package dbg

import (
	"fmt"
	"reflect"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts arbitrary values into random readable names. It flagrantly
// leaks memory but generates the names lazily, so it's not a problem unless
// you're actually using it. This is helpful when debugging geometry: "circle
// ProperMarmot swallowed WelcomeTetra" is much easier to follow across a log
// than two centers and radii.

var memo map[interface{}]string

func init() {
	memo = make(map[interface{}]string)
	// Since the ids are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to the
	// same thing between runs.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if !keyable(obj) {
		return "Ø"
	}

	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = r
	return r
}

// The memo accepts anything hashable. Value types get names by equality, so
// two equal circles share one name, which is exactly what coordinate-equality
// geometry wants. Nil pointers and unhashable kinds get the null name rather
// than a panic.
func keyable(obj interface{}) bool {
	if obj == nil {
		return false
	}
	v := reflect.ValueOf(obj)
	if v.Kind() == reflect.Ptr {
		return !v.IsNil()
	}
	return v.Type().Comparable()
}
