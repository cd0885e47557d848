package tui

// Color constants for the gymlog TUI theme
const (
	// Base Colors
	ColorAppBackground  = ""        // Use terminal default background
	ColorCardBackground = "#101D16" // Dark green
	ColorBorder         = "#3A554A" // Grey-green

	// Text Colors
	ColorPrimaryText   = "#E8F2EC" // Primary text (field labels, user input, titles)
	ColorSecondaryText = "#AEC7B8" // Secondary text - muted green-grey
	ColorDisabledText  = "#6D8379" // Disabled/muted text
	ColorPlaceholder   = "#AEC7B8" // Same as secondary
	ColorHelpText      = "240"     // Dark grey for help text

	// Accent Colors (Green theme)
	ColorAccentMain   = "#16A34A" // Logo, accent elements, active borders
	ColorAccentBright = "#4ADE80" // Hover, highlights, current step

	// State Colors
	ColorError   = "#EF4444" // Validation errors
	ColorSuccess = "#22C55E" // Success, confirmations
	ColorWarning = "#F59E0B" // Warnings
)
