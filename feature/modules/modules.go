package modules

import (
	"context"
	"fmt"

	"feature-catalog/core/loader"
)

type entry struct {
	id      string
	factory func(id string) loader.Factory
}

// groups lists every category's entries, in catalogue order.
var groups = [][]entry{
	aiGeneration,
	editing,
	navigation,
	collaboration,
	fileManagement,
	performance,
	quality,
}

// Register adds every module to t.
func Register(t *loader.Table) error {
	for _, group := range groups {
		for _, e := range group {
			if err := t.Register(e.id, e.factory(e.id)); err != nil {
				return fmt.Errorf("failed to register module: %w", err)
			}
		}
	}
	return nil
}

// Table builds a fresh table holding every module.
func Table() (*loader.Table, error) {
	t := loader.NewTable()
	if err := Register(t); err != nil {
		return nil, err
	}
	return t, nil
}

// stub is a module without start-up work.
type stub struct {
	id string
}

func (s stub) Name() string { return s.id }

// hooked is a module with an Init hook.
type hooked struct {
	stub
}

// Init succeeds unless start-up has already been cancelled.
func (h hooked) Init(ctx context.Context) error {
	return ctx.Err()
}

func plain(id string) loader.Factory {
	return func() (loader.Module, error) { return stub{id: id}, nil }
}

func withInit(id string) loader.Factory {
	return func() (loader.Module, error) { return hooked{stub{id: id}}, nil }
}
