package display

// Display handles terminal output for sweep.
type Display interface {
	// Print adds a primary output message to the display.
	Print(msg string)
	// Log adds a diagnostic message to the display.
	Log(msg string)
	// Confirm prints a prompt, reads one line of input and reports
	// whether the user answered yes.
	Confirm(prompt string) bool
	// Close cleans up any resources and ensures final output is rendered.
	Close()
}
