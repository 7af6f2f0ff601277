// Package pkgmanager identifies the package manager that launched the CLI
// and renders the commands to run next.
package pkgmanager

import (
	"os"
	"strings"
)

// UserAgentEnv is set by npm, pnpm and yarn for the processes they spawn.
const UserAgentEnv = "npm_config_user_agent"

// DefaultManager is used when no manager can be detected.
const DefaultManager = "npm"

// Info identifies a package manager.
type Info struct {
	Name    string
	Version string
}

// Detect parses a user agent such as "pnpm/8.6.0 node/v18.0.0 darwin x64".
// It returns nil for an empty user agent.
func Detect(userAgent string) *Info {
	if userAgent == "" {
		return nil
	}
	token := strings.SplitN(userAgent, " ", 2)[0]
	name, version, _ := strings.Cut(token, "/")
	return &Info{Name: name, Version: version}
}

// FromEnv detects the manager from the process environment.
func FromEnv() *Info {
	return Detect(os.Getenv(UserAgentEnv))
}

// Name returns the detected manager name, fallback when info is nil, or
// DefaultManager when both are empty.
func Name(info *Info, fallback string) string {
	if info != nil && info.Name != "" {
		return info.Name
	}
	if fallback != "" {
		return fallback
	}
	return DefaultManager
}

// NextSteps returns the commands that finish setting up a project. relDir
// is the project path relative to the working directory; empty or "."
// means no cd is needed.
func NextSteps(info *Info, relDir, fallback string) []string {
	var steps []string
	if relDir != "" && relDir != "." {
		steps = append(steps, "cd "+relDir)
	}

	switch pm := Name(info, fallback); pm {
	case "yarn":
		steps = append(steps, "yarn", "yarn dev")
	default:
		steps = append(steps, pm+" install or yarn", pm+" run dev or yarn run dev")
	}
	return steps
}
