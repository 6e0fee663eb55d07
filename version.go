package hodl

import "fmt"

// Release numbers of the node software.
const (
	Maj = 0
	Min = 1
	Fix = 0
	// Suffix marks untagged builds.
	Suffix = "-dev"
)

// GitCommit is injected at link time with -ldflags "-X".
var GitCommit = ""

// Version returns the release string, followed by the commit when known.
func Version() string {
	v := fmt.Sprintf("v%d.%d.%d%s", Maj, Min, Fix, Suffix)
	if GitCommit == "" {
		return v
	}
	return v + " " + GitCommit
}
