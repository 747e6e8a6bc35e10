package testing

import (
	"strconv"
	"time"

	"github.com/go-drift/weft/pkg/component"
	"github.com/go-drift/weft/pkg/events"
	"github.com/go-drift/weft/pkg/geometry"
	"github.com/go-drift/weft/pkg/runtime"
	"github.com/go-drift/weft/pkg/widgets"
)

type counterState struct {
	Count   int
	Elapsed time.Duration
	Clicks  []geometry.Pos
}

type counter struct {
	component.Base[counterState, int]
}

func (counter) OnKey(k events.Key, s *counterState, ctx *component.Context[counterState]) {
	switch k.Char() {
	case '+':
		s.Count++
	case '-':
		s.Count--
	default:
		return
	}
	render(s, ctx)
}

func (counter) OnMouse(m events.Mouse, s *counterState, _ *component.Context[counterState]) {
	if m.Action == events.MouseRelease {
		s.Clicks = append(s.Clicks, m.Pos)
	}
}

func (counter) Message(n int, s *counterState, ctx *component.Context[counterState]) {
	s.Count = n
	render(s, ctx)
}

func (counter) Tick(dt time.Duration, s *counterState, _ *component.Context[counterState]) {
	s.Elapsed += dt
}

func render(s *counterState, ctx *component.Context[counterState]) {
	for _, el := range ctx.Elements.Query("id", "count") {
		ctx.Elements.Set(el.ID(), widgets.TextAttribute, strconv.Itoa(s.Count))
	}
}

const counterTemplate = `
- kind: vstack
  children:
    - kind: text
      attributes: {text: "count"}
    - kind: text
      attributes: {id: count, text: "0"}
`

func loadCounter(tester *Tester) component.ID[int] {
	id := runtime.AddComponent[counterState, int](tester.Runtime(), "main", counter{}, counterState{})
	tester.Templates().Insert("main", counterTemplate)
	if err := tester.Load("main"); err != nil {
		panic(err)
	}
	return id
}
