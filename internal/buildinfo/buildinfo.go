package buildinfo

import "runtime/debug"

// Version is set at build time via -ldflags.
var Version = "dev"

// Commit is set at build time via -ldflags.
var Commit = "unknown"

// Date is set at build time via -ldflags.
var Date = "unknown"

// Short returns a compact build identifier for logs and the window title.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if c := commit(); c != "unknown" {
		return c
	}
	return "dev"
}

// String is Version followed by the commit and date when they are known.
func String() string {
	s := Version
	if c := commit(); c != "unknown" {
		s += " (" + c
		if Date != "" && Date != "unknown" {
			s += ", " + Date
		}
		s += ")"
	}
	return s
}

// commit falls back to the VCS stamp go build embeds when -ldflags left it unset.
func commit() string {
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			if len(s.Value) > 12 {
				return s.Value[:12]
			}
			return s.Value
		}
	}
	return "unknown"
}
