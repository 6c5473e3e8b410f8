package redis

import "fmt"

// Key prefix for all denylist data
const keyPrefix = "passgate"

// commonPasswordsKey returns the Redis key for the common-password list
func commonPasswordsKey() string {
	return fmt.Sprintf("%s:denylist:passwords", keyPrefix)
}

// keyboardWalksKey returns the Redis key for the keyboard-walk list
func keyboardWalksKey() string {
	return fmt.Sprintf("%s:denylist:walks", keyPrefix)
}
