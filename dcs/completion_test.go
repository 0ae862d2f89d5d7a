package main

import (
	"flag"
	"testing"

	"github.com/etnz/deals/cmd"
	"github.com/google/subcommands"
)

func TestCompletion(t *testing.T) {
	commander := subcommands.NewCommander(flag.NewFlagSet("dcs", flag.ContinueOnError), "dcs")
	cmd.Register(commander)

	c := completion(commander)
	for _, name := range []string{"deal", "week", "bydate", "report", "month", "delete", "fmt", "topic", "serve", "assist"} {
		if _, ok := c.Sub[name]; !ok {
			t.Errorf("completion misses command %q", name)
		}
	}
	if _, ok := c.Sub["deal"].Flags["m"]; !ok {
		t.Errorf("completion misses the deal -m flag")
	}
	if c.Sub["topic"].Args == nil {
		t.Errorf("topic arguments are not predicted")
	}
	if !registered(commander, "week") || registered(commander, "hello") {
		t.Errorf("registered() does not match the commands")
	}
}
