package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/treedb/treedb/internal/ui"
)

// shellCmd runs an interactive REPL against the already-open database
// handle, so the current working directory set by `cd` carries over
// between commands within the session (unlike separate CLI invocations,
// each of which opens its own FS rooted at "/").
var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start an interactive session that keeps the current directory between commands",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runShell()
	},
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

func runShell() {
	scanner := bufio.NewScanner(os.Stdin)
	interactive := ui.IsTerminal()

	for {
		if interactive {
			pwd, err := fs.Pwd()
			if err != nil {
				pwd = "?"
			}
			fmt.Printf("%s %s ", ui.RenderAccent(pwd), ui.RenderMuted(">"))
		}
		if !scanner.Scan() {
			fmt.Println()
			return
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		verb, rest := fields[0], fields[1:]
		switch verb {
		case "exit", "quit":
			return
		case "help":
			fmt.Println("commands: mkdir cd ls rm mv cp read write pwd vacuum exit")
		default:
			if err := runShellCommand(verb, rest); err != nil {
				fmt.Fprintf(os.Stderr, "%s %v\n", ui.RenderFail("error:"), err)
			}
		}
	}
}

func runShellCommand(verb string, args []string) error {
	switch verb {
	case "pwd":
		p, err := fs.Pwd()
		if err != nil {
			return err
		}
		fmt.Println(p)
	case "cd":
		if len(args) != 1 {
			return fmt.Errorf("usage: cd <path>")
		}
		return fs.Cd(args[0])
	case "mkdir":
		if len(args) != 1 {
			return fmt.Errorf("usage: mkdir <path>")
		}
		return fs.Mkdir(args[0])
	case "ls":
		path := ""
		if len(args) == 1 {
			path = args[0]
		}
		children, err := fs.Ls(path)
		if err != nil {
			return err
		}
		printListing(children)
	case "rm":
		if len(args) != 1 {
			return fmt.Errorf("usage: rm <path>")
		}
		return fs.Rm(args[0])
	case "mv":
		if len(args) != 2 {
			return fmt.Errorf("usage: mv <src> <dst>")
		}
		return fs.Mv(args[0], args[1])
	case "cp":
		if len(args) != 2 {
			return fmt.Errorf("usage: cp <src> <dst>")
		}
		return fs.Cp(args[0], args[1])
	case "write":
		if len(args) < 1 {
			return fmt.Errorf("usage: write <path> [text...]")
		}
		payload := []byte(strings.Join(args[1:], " "))
		return fs.Write(args[0], payload, "raw")
	case "read":
		if len(args) != 1 {
			return fmt.Errorf("usage: read <path>")
		}
		payload, err := fs.Read(args[0])
		if err != nil {
			return err
		}
		os.Stdout.Write(payload)
		fmt.Println()
	case "vacuum":
		return fs.Vacuum()
	default:
		return fmt.Errorf("unknown command %q (try \"help\")", verb)
	}
	return nil
}
