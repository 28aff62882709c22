package models

type Flags struct {
	Mode   string `short:"m" long:"mode" env:"MODE" required:"true" description:"The mode Digidex is running in: cli/docker" default:"cli"`
	Config string `short:"c" long:"config" env:"CONFIG" description:"Path to the configuration file" default:"config.json"`
	Print  bool   `short:"p" long:"print" description:"Print the (filtered) catalog as a table and exit"`
	Search string `short:"s" long:"search" description:"Name filter used with --print (case-insensitive substring)"`
	Level  string `short:"l" long:"level" description:"Level filter used with --print" default:"all"`
}
