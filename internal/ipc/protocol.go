package ipc

const (
	ObjectPath    = "/io/github/soracht/focuspulse"
	InterfaceName = "io.github.soracht.focuspulse.Timer"
	ServiceName   = "io.github.soracht.focuspulse"
)
