package local

import "github.com/gobeaver/iokit"

func init() {
	iokit.RegisterDriver(iokit.LocalScheme, Driver{})
}
