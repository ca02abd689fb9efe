// Package config resolves process-wide settings once at startup.
package config

import (
	"os"
	"runtime"
	"strings"
)

const defaultUser = "user"

// Environment is the part of the process environment the scanner depends on.
// It is read once by Load and passed around by value.
type Environment struct {
	GOOS     string
	Platform string
	User     string
	Home     string
}

func Load() Environment {
	return resolve(runtime.GOOS, os.Getenv)
}

func resolve(goos string, getenv func(string) string) Environment {
	env := Environment{
		GOOS:     goos,
		Platform: PlatformName(goos),
	}

	if goos == "windows" {
		env.User = valueOr(getenv("USERNAME"), defaultUser)
		env.Home = valueOr(getenv("USERPROFILE"), `C:\Users\`+env.User)
		return env
	}

	env.User = valueOr(getenv("USER"), defaultUser)
	env.Home = valueOr(getenv("HOME"), "/home/"+env.User)
	return env
}

// PlatformName maps a GOOS value to the name shown in reports.
func PlatformName(goos string) string {
	switch goos {
	case "linux":
		return "Linux"
	case "windows":
		return "Windows"
	case "darwin":
		return "Darwin"
	case "freebsd":
		return "FreeBSD"
	case "openbsd":
		return "OpenBSD"
	case "netbsd":
		return "NetBSD"
	case "":
		return "Unknown"
	}
	return strings.ToUpper(goos[:1]) + goos[1:]
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
