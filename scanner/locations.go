package scanner

import "github.com/riadafridishibly/dotscan/config"

// CommonLocations lists the platform's usual temp, config and user
// directories that currently exist, in a fixed order.
func CommonLocations(env config.Environment) []string {
	return existingLocations(candidateLocations(env), pathExists)
}

func candidateLocations(env config.Environment) []string {
	if env.GOOS == "windows" {
		userDir := `C:\Users\` + env.User
		return []string{
			userDir,
			userDir + `\Desktop`,
			userDir + `\Documents`,
			`C:\Temp`,
			`C:\Windows\Temp`,
			`C:\ProgramData`,
		}
	}
	return []string{
		env.Home,
		"/tmp",
		"/var/tmp",
		"/var/log",
		"/etc",
		"/opt",
		"/usr/local",
	}
}

func existingLocations(paths []string, exists func(string) bool) []string {
	found := make([]string, 0, len(paths))
	for _, p := range paths {
		if p != "" && exists(p) {
			found = append(found, p)
		}
	}
	return found
}
