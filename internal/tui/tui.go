// Package tui implements the terminal view of the running cat.
package tui

import (
	"context"
	"errors"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/watchfire-io/runcat/internal/logger"
	"github.com/watchfire-io/runcat/internal/models"
)

// programRef is a shared reference to the tea.Program for goroutine sends.
// It's set after tea.NewProgram but before p.Run().
type programRef struct {
	mu sync.Mutex
	p  *tea.Program
}

func (r *programRef) Set(p *tea.Program) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.p = p
}

func (r *programRef) Send(msg tea.Msg) {
	r.mu.Lock()
	p := r.p
	r.mu.Unlock()
	if p != nil {
		p.Send(msg)
	}
}

// Clear nils out the program reference, preventing post-exit sends.
func (r *programRef) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.p = nil
}

// Engine is the animation engine driven by the TUI.
type Engine interface {
	Controller
	Run(ctx context.Context) error
	Preferences() models.Preferences
	EffectiveTheme() models.Theme
}

// Options configures Run.
type Options struct {
	// NewEngine builds the engine around the TUI's sink.
	NewEngine func(sink *Sink) (Engine, error)
	Logger    logger.Logger
}

// Run starts the engine and the TUI and returns when the user quits or ctx
// is cancelled.
func Run(ctx context.Context, opts Options) error {
	log := opts.Logger
	if log == nil {
		log = logger.New("[tui]")
	}

	ref := &programRef{}
	sink := NewSink(ref)
	eng, err := opts.NewEngine(sink)
	if err != nil {
		return err
	}

	model := NewModel(eng, eng.Preferences(), eng.EffectiveTheme())
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	ref.Set(p)

	engCtx, cancel := context.WithCancel(ctx)
	engErr := make(chan error, 1)
	go func() {
		engErr <- eng.Run(engCtx)
	}()

	_, err = p.Run()
	ref.Clear()
	cancel()
	if runErr := <-engErr; runErr != nil {
		log.Error("engine stopped with error: %v", runErr)
		err = errors.Join(err, runErr)
	}
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
