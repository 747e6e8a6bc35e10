package cmd

import (
	"embed"
	"io/fs"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/go-drift/weft/pkg/component"
	"github.com/go-drift/weft/pkg/events"
	"github.com/go-drift/weft/pkg/runtime"
	"github.com/go-drift/weft/pkg/state"
	"github.com/go-drift/weft/pkg/widgets"
)

//go:embed demo/*.yaml
var demoFS embed.FS

func insertDemoTemplates(rt *runtime.Runtime) error {
	entries, err := fs.ReadDir(demoFS, "demo")
	if err != nil {
		return err
	}
	for _, e := range entries {
		data, err := demoFS.ReadFile(path.Join("demo", e.Name()))
		if err != nil {
			return err
		}
		rt.Templates().Insert(strings.TrimSuffix(e.Name(), ".yaml"), string(data))
	}
	return nil
}

func registerDemo(rt *runtime.Runtime) {
	runtime.AddComponent[appState, struct{}](rt, "main", app{}, appState{})
	runtime.AddPrototype[counterState, int](rt, "counter",
		func() component.Component[counterState, int] { return counter{} },
		func() counterState { return counterState{Count: state.NewValue(0)} },
	)
	runtime.AddComponent[uptimeState, struct{}](rt, "uptime", uptime{}, uptimeState{})
}

func setText[S any](ctx *component.Context[S], id, text string) {
	for _, el := range ctx.Elements.Query("id", id) {
		ctx.Elements.Set(el.ID(), widgets.TextAttribute, text)
	}
}

type appState struct {
	Changes int
}

// app shows the last value published by any counter.
type app struct {
	component.Base[appState, struct{}]
}

func (app) AcceptFocus() bool { return false }

func (app) Receive(name string, value any, s *appState, ctx *component.Context[appState]) {
	if name != "counter_changed" {
		return
	}
	s.Changes++
	if n, ok := value.(int); ok {
		setText(ctx, "last", strconv.Itoa(n))
	}
}

type counterState struct {
	Count *state.Value[int]
}

// counter changes its count with + and - while focused.
type counter struct {
	component.Base[counterState, int]
}

func (counter) OnKey(k events.Key, s *counterState, ctx *component.Context[counterState]) {
	switch k.Char() {
	case '+':
		s.Count.Set(s.Count.Get() + 1)
	case '-':
		s.Count.Set(s.Count.Get() - 1)
	default:
		return
	}
	setText(ctx, "count", strconv.Itoa(s.Count.Get()))
	component.Publish(ctx, "changed", func(s *counterState) *state.Value[int] { return s.Count })
}

func (counter) Message(n int, s *counterState, ctx *component.Context[counterState]) {
	s.Count.Set(n)
	setText(ctx, "count", strconv.Itoa(n))
}

func (counter) OnFocus(_ *counterState, ctx *component.Context[counterState]) {
	for _, el := range ctx.Elements.Query("id", "count") {
		ctx.Elements.Set(el.ID(), "underline", true)
	}
}

func (counter) OnBlur(_ *counterState, ctx *component.Context[counterState]) {
	for _, el := range ctx.Elements.Query("id", "count") {
		ctx.Elements.Set(el.ID(), "underline", false)
	}
}

type uptimeState struct {
	Elapsed time.Duration
	Shown   int
}

// uptime shows the whole seconds since start.
type uptime struct {
	component.Base[uptimeState, struct{}]
}

func (uptime) AcceptFocus() bool { return false }

func (uptime) Tick(dt time.Duration, s *uptimeState, ctx *component.Context[uptimeState]) {
	s.Elapsed += dt
	if secs := int(s.Elapsed / time.Second); secs != s.Shown {
		s.Shown = secs
		setText(ctx, "uptime", strconv.Itoa(secs)+"s")
	}
}
