package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/watchfire-io/runcat/internal/engine"
	"github.com/watchfire-io/runcat/internal/frames"
	"github.com/watchfire-io/runcat/internal/models"
)

type sender interface {
	Send(msg tea.Msg)
}

// Sink turns engine callbacks into program messages.
type Sink struct {
	out sender
}

var (
	_ engine.DisplaySink  = (*Sink)(nil)
	_ engine.LoadSink     = (*Sink)(nil)
	_ engine.MenuNotifier = (*Sink)(nil)
)

// NewSink creates a sink that forwards to ref.
func NewSink(ref *programRef) *Sink {
	return &Sink{out: ref}
}

func (s *Sink) SetIcon(frame frames.Frame)       { s.out.Send(FrameMsg{Frame: frame}) }
func (s *Sink) SetTooltip(text string)           { s.out.Send(TooltipMsg{Text: text}) }
func (s *Sink) SetLoad(sample models.LoadSample) { s.out.Send(LoadMsg{Sample: sample}) }
func (s *Sink) Notify(n engine.Notification)     { s.out.Send(PreferencesMsg{Notification: n}) }
