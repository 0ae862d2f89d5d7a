package cmd

import "github.com/google/subcommands"

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, g := range Groups {
		for _, cmd := range g.Commands {
			c.Register(cmd, g.Name)
		}
	}
}

// Group is a help section.
type Group struct {
	Name     string
	Commands []subcommands.Command
}

// Groups lists the commands by help section.
var Groups = []Group{
	{"deals", []subcommands.Command{&dealCmd{}, &deleteCmd{}, &fmtCmd{}}},
	{"reports", []subcommands.Command{&weekCmd{}, &monthCmd{}, &reportCmd{}, &bydateCmd{}}},
	{"services", []subcommands.Command{&serveCmd{}, &AssistCmd{}}},
	{"help", []subcommands.Command{&topicCmd{}}},
}
