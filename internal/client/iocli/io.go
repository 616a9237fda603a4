package iocli

//go:generate moq -out io_mock.go . IO

// IO is the console seam the CLI commands talk through, so tests can
// script prompts and capture output.
type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)
	ReadInput(prompt string) (string, error)
	ReadPassword(prompt string) (string, error)
	Confirm(prompt string) (bool, error)
}
