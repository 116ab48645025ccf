package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/todolists/todolists/internal/todo"
	"github.com/todolists/todolists/internal/todo/service"
)

// Indexer creates store indexes; nil when the store has none.
type Indexer interface {
	EnsureIndexes(ctx context.Context) error
}

// Env carries the services a subcommand may touch.
type Env struct {
	Lists   *service.Router
	Indexes Indexer
	Out     io.Writer
	Err     io.Writer
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(ctx context.Context, args []string, env Env) int {
	if len(args) == 0 {
		PrintHelp(env.Err)
		return 2
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(env.Out)
		return 0

	case "indexes":
		if env.Indexes == nil {
			fmt.Fprintln(env.Out, "no indexes for this store")
			return 0
		}
		if err := env.Indexes.EnsureIndexes(ctx); err != nil {
			return fail(env, "indexes", err)
		}
		fmt.Fprintln(env.Out, "indexes ensured")
		return 0

	case "seed":
		res, err := env.Lists.Items.SeedDefaultIfEmpty(ctx)
		if err != nil {
			return fail(env, "seed", err)
		}
		fmt.Fprintf(env.Out, "%s: %s\n", todo.DefaultListName, res)
		return 0

	case "show":
		name := strings.Join(a, " ")
		l, err := env.Lists.Load(ctx, name)
		if err != nil {
			return fail(env, "show", err)
		}
		printList(env.Out, l)
		return 0

	case "add":
		if len(a) < 2 {
			fmt.Fprintln(env.Err, "usage: todoctl add <list> <item...>")
			return 2
		}
		l, err := env.Lists.Add(ctx, a[0], strings.Join(a[1:], " "))
		if err != nil {
			return fail(env, "add", err)
		}
		printList(env.Out, l)
		return 0

	case "rm":
		if len(a) != 2 {
			fmt.Fprintln(env.Err, "usage: todoctl rm <list> <item-id>")
			return 2
		}
		l, err := env.Lists.Remove(ctx, a[0], a[1])
		if err != nil {
			return fail(env, "rm", err)
		}
		printList(env.Out, l)
		return 0
	}

	fmt.Fprintln(env.Err, "unknown subcommand: "+cmd)
	PrintHelp(env.Err)
	return 2
}

func PrintHelp(w io.Writer) {
	fmt.Fprintf(w, `todoctl - operate on the to-do lists store

Usage:
  todoctl <subcommand> [args]

Subcommands:
  indexes              Create the unique list-name index
  seed                 Seed the %[1]s list if it is empty
  show [list]          Print a list (default: %[1]s); creates custom lists on first use
  add <list> <item...> Add an item to a list
  rm <list> <item-id>  Remove an item from a list
`, todo.DefaultListName)
}

func printList(w io.Writer, l todo.List) {
	fmt.Fprintf(w, "%s (%d)\n", l.Name, len(l.Items))
	for _, it := range l.Items {
		fmt.Fprintf(w, "  %s  %s\n", it.ID, it.Name)
	}
}

func fail(env Env, op string, err error) int {
	fmt.Fprintf(env.Err, "%s: %v\n", op, err)
	return 1
}
