// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/fishfry/internal/command"
	"github.com/staranto/fishfry/internal/config"
	mylog "github.com/staranto/fishfry/internal/log"
	"github.com/staranto/fishfry/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain(os.Args, os.Stdout))
}

func realMain(args []string, stdout io.Writer) int {
	mylog.InitLogger()

	if len(args) < 2 {
		fmt.Fprintln(stdout, "No command specified.")
		args = append(args, "--help")
	} else {
		args = mangleArguments(args)
	}

	// Short-circuit --version/-v.
	for _, a := range args[1:] {
		if a == "--version" || a == "-v" {
			fmt.Fprintln(stdout, version.Version)
			return 0
		}
	}

	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	return exitCode(app.Run(ctx, args), stdout)
}

// exitCode maps a command result onto the two exit codes fishfry uses.
// Commands print their own explanation before exiting 1; any other error is
// a usage problem and is reported here.
func exitCode(err error, stdout io.Writer) int {
	if err == nil {
		return 0
	}

	var ec cli.ExitCoder
	if errors.As(err, &ec) {
		if msg := ec.Error(); msg != "" {
			fmt.Fprintln(stdout, msg)
		}
		if ec.ExitCode() == 0 {
			return 0
		}
		return 1
	}

	fmt.Fprintln(stdout, err)
	return 1
}

// mangleArguments expands an argument set from the config file. A bare
// "@name" anywhere after the subcommand selects <subcommand>.<name>;
// otherwise <subcommand>.defaults is used when present. The set's entries
// are inserted right after the subcommand so explicit arguments win.
func mangleArguments(args []string) []string {
	// Flags before the subcommand, or help, mean there is nothing to expand.
	if strings.HasPrefix(args[1], "-") {
		return args
	}
	for _, a := range args {
		if a == "--help" || a == "-h" {
			return append(args[:2:2], "--help")
		}
	}

	set := "defaults"
	explicit := false
	rest := make([]string, 0, len(args)-2)
	for _, a := range args[2:] {
		if strings.HasPrefix(a, "@") && len(a) > 1 && !explicit {
			set = a[1:]
			explicit = true
			continue
		}
		rest = append(rest, a)
	}

	setArgs, err := config.GetStringSlice(args[1] + "." + set)
	if err != nil && explicit {
		log.Warnf("argument set %s.%s not found in config", args[1], set)
	}

	var expanded []string
	for _, arg := range setArgs {
		expanded = append(expanded, strings.Fields(arg)...)
	}

	out := make([]string, 0, len(args)+len(expanded))
	out = append(out, args[:2]...)
	out = append(out, expanded...)
	out = append(out, rest...)

	log.Debugf("set=%s, args=%v", set, out)
	return out
}
