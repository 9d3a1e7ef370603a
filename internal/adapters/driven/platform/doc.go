// Package platform shells out to operating system tools: native file
// dialogs (zenity, kdialog, osascript, PowerShell) and the default file
// browser (open, xdg-open, explorer).
package platform

// Operating system identifiers.
const (
	osDarwin  = "darwin"
	osLinux   = "linux"
	osWindows = "windows"
)
