//-----------------------------------------------------------------------------
// Copyright (c) 2024-present the Fungrim authors
//
// This file is part of Fungrim.
//
// Fungrim is licensed under the MIT license. Please see file LICENSE.txt for
// your rights and obligations under this license.
//
// SPDX-License-Identifier: MIT
//-----------------------------------------------------------------------------

package cmd

import (
	"flag"
	"maps"
	"slices"
)

// Command stores information about commands / sub-commands.
type Command struct {
	Name     string // command name as it appears on the command line
	Func     CommandFunc
	Header   bool // print a version header before running the command
	SetFlags func(*flag.FlagSet)
	flags    *flag.FlagSet
}

// CommandFunc is the function that executes the command.
type CommandFunc func(*flag.FlagSet) (int, error)

// GetFlags return the flag.FlagSet defined for the command.
func (c *Command) GetFlags() *flag.FlagSet { return c.flags }

var commands = make(map[string]Command)

// RegisterCommand registers the given command.
func RegisterCommand(cmd Command) {
	if cmd.Name == "" || cmd.Func == nil {
		panic("command registered with no name or no function")
	}
	if _, ok := commands[cmd.Name]; ok {
		panic("command '" + cmd.Name + "' registered twice")
	}
	fs := flag.NewFlagSet(cmd.Name, flag.ExitOnError)
	fs.String("l", "", "global log level")
	if cmd.SetFlags != nil {
		cmd.SetFlags(fs)
	}
	cmd.flags = fs
	commands[cmd.Name] = cmd
}

// Get returns the command identified by the given name and a bool to
// signal success.
func Get(name string) (Command, bool) {
	cmd, ok := commands[name]
	return cmd, ok
}

// List returns the sorted list of all registered command names.
func List() []string {
	return slices.Sorted(maps.Keys(commands))
}
