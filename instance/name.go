package instance

import "fastcat.org/go/relkit/internal"

// AppName is what the app will call itself, both in help output and in
// messages that mention the binary by name.
func AppName() string {
	return internal.AppName()
}

// SetAppName renames the app. When customizing, call it before Main().
func SetAppName(name string) {
	internal.SetAppName(name)
}
