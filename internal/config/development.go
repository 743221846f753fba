package config

import "os"

// Development reports whether DEVELOPMENT is set to anything but "0".
// Development mode logs at debug level.
func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}
