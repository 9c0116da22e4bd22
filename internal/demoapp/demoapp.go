// Package demoapp is a miniature component runtime that stands in for a
// real framework. It renders a small fixed application (function
// components with hook cells, a class-style component with instance state,
// host and text nodes) and announces each frame through the devtools
// hook, exactly the way a framework's commit phase would. It exists so the
// binary has something live to inspect and so end-to-end tests have a
// producer; nothing in the core depends on it.
package demoapp

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/lilactown/react-repl/internal/devtools"
	"github.com/lilactown/react-repl/internal/fiber"
)

// Component is a demo component identity. Queries match the pointer, the
// UI shows the name.
type Component struct{ name string }

// Name returns the component's display name.
func (c *Component) Name() string { return c.name }

// The demo application's component identities.
var (
	App     = &Component{name: "App"}
	Counter = &Component{name: "Counter"}
	Clock   = &Component{name: "Clock"}
	Item    = &Component{name: "Item"}
)

// ClockInstance is the class-style instance behind a Clock node. It keeps
// its state bag on the instance and accepts imperative updates through
// EnqueueSetState, applied at the next render.
type ClockInstance struct {
	mu    sync.Mutex
	state clockState
}

type clockState struct {
	Now    time.Time
	Frozen bool
}

// EnqueueSetState merges a partial update into the instance state. The
// updater may be a clockState or a func(clockState) clockState; anything
// else is ignored, mirroring a framework swallowing a malformed update.
func (c *ClockInstance) EnqueueSetState(updater any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch u := updater.(type) {
	case clockState:
		c.state = u
	case func(clockState) clockState:
		c.state = u(c.state)
	}
}

func (c *ClockInstance) snapshot() clockState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *ClockInstance) tick(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Now = now
}

// Producer renders the demo application and commits a fresh tree on every
// tick. One Producer models one application root.
type Producer struct {
	RootID   fiber.RootID
	Interval time.Duration

	mu    sync.Mutex
	count int
	clock *ClockInstance
	items []string
}

// NewProducer returns a producer for the default root with sample content.
func NewProducer() *Producer {
	return &Producer{
		RootID:   fiber.DefaultRoot,
		Interval: time.Second,
		clock:    &ClockInstance{},
		items:    []string{"alpha", "beta", "gamma"},
	}
}

// Start renders once immediately, then re-renders and commits on every
// tick until ctx is cancelled. It returns immediately.
func (p *Producer) Start(ctx context.Context, hook *devtools.Hook) {
	interval := p.Interval
	if interval <= 0 {
		interval = time.Second
	}
	p.CommitNow(hook)
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				p.CommitNow(hook)
			}
		}
	}()
}

// CommitNow renders the current frame and pushes it through the hook.
func (p *Producer) CommitNow(hook *devtools.Hook) {
	hook.Commit(int(p.RootID), p.render(), 0, false)
}

// render builds the whole tree for the current frame. Like a framework
// commit, every frame is a fresh object graph; previously committed nodes
// are never touched again.
func (p *Producer) render() *fiber.Node {
	p.clock.tick(time.Now())
	p.mu.Lock()
	count := p.count
	items := p.items
	p.mu.Unlock()

	root := &fiber.Node{
		ElementType: App,
		Props:       map[string]any{"title": "react-repl demo"},
	}

	counter := p.renderCounter(count)
	clock := p.renderClock()
	list := p.renderList(items)

	link(root, counter, clock, list)
	return root
}

func (p *Producer) renderCounter(count int) *fiber.Node {
	dispatch := func(args ...any) any {
		p.mu.Lock()
		defer p.mu.Unlock()
		if len(args) == 1 {
			if n, ok := args[0].(int); ok {
				p.count = n
				return n
			}
		}
		p.count++
		return p.count
	}

	cells := &fiber.StateCell{
		Memoized: count,
		Queue:    &fiber.UpdateQueue{Dispatch: dispatch},
		Next:     &fiber.StateCell{Memoized: "counter-ref"},
	}
	n := &fiber.Node{
		ElementType:   Counter,
		Props:         map[string]any{"step": 1},
		HookKinds:     []fiber.HookKind{fiber.KindState, fiber.KindRef},
		MemoizedState: cells,
	}
	link(n, textNode(fmt.Sprintf("count: %d", count), n))
	return n
}

func (p *Producer) renderClock() *fiber.Node {
	st := p.clock.snapshot()
	n := &fiber.Node{
		ElementType:   Clock,
		Props:         map[string]any{"format": time.Kitchen},
		MemoizedState: st,
		StateNode:     p.clock,
	}
	link(n, textNode(st.Now.Format(time.Kitchen), n))
	return n
}

func (p *Producer) renderList(items []string) *fiber.Node {
	n := &fiber.Node{ElementType: "ul", Props: map[string]any{"class": "items"}}
	children := make([]*fiber.Node, len(items))
	for i, it := range items {
		item := &fiber.Node{
			ElementType: Item,
			Props:       map[string]any{"label": it, "index": i},
		}
		link(item, textNode(it, item))
		children[i] = item
	}
	link(n, children...)
	return n
}

func textNode(s string, parent *fiber.Node) *fiber.Node {
	return &fiber.Node{Props: s, Return: parent}
}

// link attaches children to parent in order, wiring Return and Sibling.
func link(parent *fiber.Node, children ...*fiber.Node) {
	var prev *fiber.Node
	for _, c := range children {
		if c == nil {
			continue
		}
		c.Return = parent
		if prev == nil {
			parent.Child = c
		} else {
			prev.Sibling = c
		}
		prev = c
	}
}
