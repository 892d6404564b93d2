package utils

import "strings"

// Lookup returns the last value of key in env, a list of "key=value"
// entries. Keys compare case-insensitively when goos is "windows".
func Lookup(goos string, env []string, key string) (string, bool) {
	for n := len(env); n > 0; n-- {
		if v, ok := match(goos, env[n-1], key); ok {
			return v, true
		}
	}
	return "", false
}

// Getenv is Lookup without the presence bit.
func Getenv(goos string, env []string, key string) string {
	v, _ := Lookup(goos, env, key)
	return v
}

func match(goos, kv, key string) (string, bool) {
	if len(kv) <= len(key) || kv[len(key)] != '=' {
		return "", false
	}
	if goos == "windows" {
		if !strings.EqualFold(kv[:len(key)], key) {
			return "", false
		}
	} else if kv[:len(key)] != key {
		return "", false
	}
	return kv[len(key)+1:], true
}
