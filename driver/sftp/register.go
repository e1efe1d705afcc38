package sftp

import "github.com/gobeaver/iokit"

func init() {
	iokit.RegisterDriver(Scheme, Driver{})
}
