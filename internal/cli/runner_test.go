package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/todolists/todolists/internal/todo/repository"
	"github.com/todolists/todolists/internal/todo/service"
)

type fakeIndexer struct {
	calls int
	err   error
}

func (f *fakeIndexer) EnsureIndexes(ctx context.Context) error {
	f.calls++
	return f.err
}

func newEnv() (Env, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return Env{
		Lists: service.NewRouter(
			service.NewItemService(repository.NewMemoryItemRepo()),
			service.NewListService(repository.NewMemoryListRepo()),
		),
		Out: &out,
		Err: &errOut,
	}, &out, &errOut
}

func TestRun_Usage(t *testing.T) {
	env, out, errOut := newEnv()
	require.Equal(t, 2, Run(context.Background(), nil, env))
	require.Contains(t, errOut.String(), "Usage:")

	require.Equal(t, 0, Run(context.Background(), []string{"help"}, env))
	require.Contains(t, out.String(), "seed")

	require.Equal(t, 2, Run(context.Background(), []string{"bogus"}, env))
	require.Contains(t, errOut.String(), "unknown subcommand: bogus")

	require.Equal(t, 2, Run(context.Background(), []string{"add", "Home"}, env))
	require.Equal(t, 2, Run(context.Background(), []string{"rm", "Home"}, env))
}

func TestRun_SeedTwice(t *testing.T) {
	env, out, _ := newEnv()
	require.Equal(t, 0, Run(context.Background(), []string{"seed"}, env))
	require.Equal(t, 0, Run(context.Background(), []string{"seed"}, env))
	require.Equal(t, "Today: seeded\nToday: already populated\n", out.String())
}

func TestRun_AddShowRemove(t *testing.T) {
	env, out, _ := newEnv()
	ctx := context.Background()

	require.Equal(t, 0, Run(ctx, []string{"add", "groceries", "oat", "milk"}, env))
	require.Contains(t, out.String(), "Groceries (1)")
	require.Contains(t, out.String(), "oat milk")

	l, err := env.Lists.Lists.GetOrCreate(ctx, "Groceries")
	require.NoError(t, err)
	out.Reset()
	require.Equal(t, 0, Run(ctx, []string{"rm", "groceries", l.Items[0].ID}, env))
	require.Contains(t, out.String(), "Groceries (0)")

	out.Reset()
	require.Equal(t, 0, Run(ctx, []string{"show"}, env))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Equal(t, "Today (3)", lines[0])
}

func TestRun_Indexes(t *testing.T) {
	env, out, errOut := newEnv()
	require.Equal(t, 0, Run(context.Background(), []string{"indexes"}, env))
	require.Contains(t, out.String(), "no indexes")

	idx := &fakeIndexer{}
	env.Indexes = idx
	require.Equal(t, 0, Run(context.Background(), []string{"indexes"}, env))
	require.Equal(t, 1, idx.calls)

	idx.err = errors.New("not primary")
	require.Equal(t, 1, Run(context.Background(), []string{"indexes"}, env))
	require.Contains(t, errOut.String(), "indexes: not primary")
}

func TestRun_ValidationFailure(t *testing.T) {
	env, _, errOut := newEnv()
	require.Equal(t, 1, Run(context.Background(), []string{"add", "Today", " "}, env))
	require.Contains(t, errOut.String(), "item name is required")
}
