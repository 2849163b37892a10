package cmd

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeCommand struct {
	name    string
	aliases []string
	ran     bool
}

func (f *fakeCommand) Name() string        { return f.name }
func (f *fakeCommand) Description() string { return "fake" }
func (f *fakeCommand) Aliases() []string   { return f.aliases }
func (f *fakeCommand) Run(ctx context.Context, inv *Invocation) error {
	f.ran = true
	return nil
}

func TestRegistry_GetByNameAndAlias(t *testing.T) {
	req := require.New(t)
	r := NewRegistry()
	c := &fakeCommand{name: "raids", aliases: []string{"events"}}

	// When the command is registered
	r.Register(c)

	// Then it resolves by name and by alias
	req.Equal(c, Root(r.Get("raids")))
	req.Equal(c, Root(r.Get("events")))
	req.Nil(r.Get("missing"))
}

func TestRegistry_AliasSurvivesWrapping(t *testing.T) {
	req := require.New(t)
	r := NewRegistry()
	c := &fakeCommand{name: "raids", aliases: []string{"events"}}

	wrapped := Apply(c, func(inner Command) Command {
		return Wrap(inner, func(ctx context.Context, inv *Invocation) error {
			return inner.Run(ctx, inv)
		})
	})
	r.Register(wrapped)

	got := r.Get("events")
	req.NotNil(got)
	req.Equal(c, Root(got))
}

func TestRegistry_GetAllSorted(t *testing.T) {
	req := require.New(t)
	r := NewRegistry()
	r.Register(&fakeCommand{name: "wipe"})
	r.Register(&fakeCommand{name: "raid"})
	r.Register(&fakeCommand{name: "susa"})

	all := r.GetAll()
	req.Len(all, 3)
	req.Equal("raid", all[0].Name())
	req.Equal("susa", all[1].Name())
	req.Equal("wipe", all[2].Name())
}

func TestWrap_RunsOuterFirst(t *testing.T) {
	req := require.New(t)
	c := &fakeCommand{name: "raid"}
	var order []string

	wrapped := Apply(c,
		func(inner Command) Command {
			return Wrap(inner, func(ctx context.Context, inv *Invocation) error {
				order = append(order, "inner")
				return inner.Run(ctx, inv)
			})
		},
		func(inner Command) Command {
			return Wrap(inner, func(ctx context.Context, inv *Invocation) error {
				order = append(order, "outer")
				return inner.Run(ctx, inv)
			})
		},
	)

	err := wrapped.Run(context.Background(), &Invocation{})
	req.NoError(err)
	req.Equal([]string{"outer", "inner"}, order)
	req.True(c.ran)
}
