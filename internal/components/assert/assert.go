// Package assert panics on programmer errors, it must not be used to check
// anything that comes from the network or the user.
package assert

import "fmt"

func NotNil(value any, name string) {
	if value == nil {
		panic(fmt.Sprintf("expected %s to be not nil", name))
	}
}
