package debounce

import (
	"sync"
	"time"
)

type pending struct {
	timer *time.Timer
	fn    func()
	gen   uint64
}

// Group откладывает выполнение функций по ключу
// Каждый новый Trigger для ключа отменяет ранее запланированный вызов и запускает таймер заново
type Group struct {
	delay time.Duration

	mu      sync.Mutex
	gen     uint64
	pending map[string]*pending
	stopped bool
}

// New создает группу с фиксированной задержкой
func New(delay time.Duration) *Group {
	return &Group{
		delay:   delay,
		pending: make(map[string]*pending),
	}
}

// Trigger планирует fn для ключа через delay, отменяя предыдущий вызов для этого ключа
func (g *Group) Trigger(key string, fn func()) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.stopped {
		return
	}

	if p, ok := g.pending[key]; ok {
		p.timer.Stop()
	}

	g.gen++
	gen := g.gen
	p := &pending{fn: fn, gen: gen}
	p.timer = time.AfterFunc(g.delay, func() { g.fire(key, gen) })
	g.pending[key] = p
}

func (g *Group) fire(key string, gen uint64) {
	g.mu.Lock()
	p, ok := g.pending[key]
	if !ok || p.gen != gen {
		// вызов уже отменен или выполнен через Flush
		g.mu.Unlock()
		return
	}
	delete(g.pending, key)
	g.mu.Unlock()

	p.fn()
}

// Flush немедленно выполняет отложенный вызов для ключа (если он есть)
// Возвращает true, если вызов был выполнен
func (g *Group) Flush(key string) bool {
	g.mu.Lock()
	p, ok := g.pending[key]
	if ok {
		p.timer.Stop()
		delete(g.pending, key)
	}
	g.mu.Unlock()

	if !ok {
		return false
	}
	p.fn()
	return true
}

// FlushAll немедленно выполняет все отложенные вызовы
func (g *Group) FlushAll() {
	g.mu.Lock()
	fns := make([]func(), 0, len(g.pending))
	for key, p := range g.pending {
		p.timer.Stop()
		fns = append(fns, p.fn)
		delete(g.pending, key)
	}
	g.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Pending возвращает true, если для ключа есть запланированный вызов
func (g *Group) Pending(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, ok := g.pending[key]
	return ok
}

// Stop отменяет все запланированные вызовы без выполнения
// После Stop новые Trigger игнорируются
func (g *Group) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for key, p := range g.pending {
		p.timer.Stop()
		delete(g.pending, key)
	}
	g.stopped = true
}
