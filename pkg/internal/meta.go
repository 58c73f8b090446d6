package internal

const (
	AppName    = "Quill"
	AppVersion = "1.0.0"
)
