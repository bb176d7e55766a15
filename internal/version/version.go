package version

import (
	"fmt"
	"runtime/debug"
	"time"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	if info.Main.Version != "(devel)" && info.Main.Version != "" {
		version = info.Main.Version
	}

	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			commit = shortRevision(setting.Value, commit)
		case "vcs.time":
			if t, err := time.Parse(time.RFC3339, setting.Value); err == nil {
				date = t.Format("02/01/2006")
			}
		}
	}
}

func shortRevision(rev, fallback string) string {
	switch {
	case len(rev) > 7:
		return rev[:7]
	case rev != "":
		return rev
	default:
		return fallback
	}
}

func Version() string {
	return version
}

func Commit() string {
	return commit
}

func Date() string {
	return date
}

// String is the one-line summary printed by `sift version`.
func String() string {
	return fmt.Sprintf("sift %s (%s, built %s)", version, commit, date)
}
