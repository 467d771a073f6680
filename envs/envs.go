package envs

const (
	// TZ is used to change the timezone for the program
	TZ = "TZ"

	// CustomHome to use instead of $HOME
	CustomHome = "READMEGEN_CUSTOM_HOME"

	// Verbose enables verbose mode
	Verbose = "READMEGEN_VERBOSE"

	// MachineFriendly is used for returning more consistent output
	MachineFriendly = "READMEGEN_MACHINE_FRIENDLY"

	// SkipTerminalVerification makes isTerm.Check() return true always
	SkipTerminalVerification = "READMEGEN_SKIP_TERMINAL_VERIFICATION"
)
