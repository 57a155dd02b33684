package version

import "fmt"

const (
	Name    = "cparse"
	VERSION = "0.1.0"
	COMMIT  = "dev"
	BUILT   = ""
)

func Version() string {
	return fmt.Sprintf("%s %s (%s)", Name, VERSION, BUILT)
}
