// Package ui is the terminal host for the pet simulator. It plays the
// role the device firmware's main loop plays: tick at a fixed cadence,
// funnel every input through the event queue, hand save requests to
// the store off the tick path, and render the pet each frame.
package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"pocketpet/internal/pet"
	"pocketpet/internal/store"
)

const (
	// frameInterval drives the face animation only; the simulation
	// ticks on its own interval.
	frameInterval = 200 * time.Millisecond

	messageDuration = 3 * time.Second
)

// Model is the bubbletea host around one Simulator.
type Model struct {
	sim    *pet.Simulator
	queue  *pet.Queue
	st     store.Store
	logger *log.Logger

	tickInterval time.Duration
	frame        int
	quitting     bool
	shuttingDown bool

	message        string
	messageExpires time.Time
}

type tickMsg time.Time
type frameMsg time.Time
type savedMsg struct{ err error }

// NewModel wires the host around an already-loaded simulator.
func NewModel(sim *pet.Simulator, queue *pet.Queue, st store.Store,
	logger *log.Logger, tickInterval time.Duration) Model {
	if tickInterval <= 0 {
		tickInterval = pet.DefaultTickInterval
	}
	return Model{
		sim:          sim,
		queue:        queue,
		st:           st,
		logger:       logger,
		tickInterval: tickInterval,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.tick(), frameTick())
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		case "f":
			m.queue.Push(pet.Event{Type: pet.EventFeed})
		case "p":
			m.queue.Push(pet.Event{Type: pet.EventPet})
		case "l":
			m.queue.Push(pet.Event{Type: pet.EventLongPress})
		case "o":
			// Manual presence toggle for terminals without focus
			// reporting.
			present := !m.sim.State().OwnerPresent
			m.queue.Push(pet.Event{Type: pet.EventPresenceChanged, Present: present})
		}

	// Terminal focus stands in for the device's presence camera.
	case tea.FocusMsg:
		m.queue.Push(pet.Event{Type: pet.EventPresenceChanged, Present: true})
	case tea.BlurMsg:
		m.queue.Push(pet.Event{Type: pet.EventPresenceChanged, Present: false})

	case tickMsg:
		// Drain inputs in arrival order, then advance the simulation.
		for {
			ev, ok := m.queue.Pop()
			if !ok {
				break
			}
			switch m.sim.Apply(ev) {
			case pet.OutcomeRejected:
				m.setMessage("Zzz... not while sleeping")
			case pet.OutcomeShutdown:
				m.shuttingDown = true
			}
		}

		if m.shuttingDown {
			// The shutdown save is the one that blocks: nothing runs
			// after it.
			if err := m.st.Save(m.sim.Snapshot()); err != nil {
				m.logger.Warn("shutdown save failed", "err", err)
			}
			m.quitting = true
			return m, tea.Quit
		}

		res := m.sim.Tick()
		cmds := []tea.Cmd{m.tick()}
		if res.SaveDue {
			cmds = append(cmds, m.saveCmd())
		}
		return m, tea.Batch(cmds...)

	case frameMsg:
		m.frame++
		return m, frameTick()

	case savedMsg:
		if msg.err != nil {
			m.logger.Warn("save failed, retrying next cycle", "err", msg.err)
		}
	}

	return m, nil
}

// saveCmd snapshots now and writes in the background so a slow disk
// can't stall the tick cadence.
func (m Model) saveCmd() tea.Cmd {
	rec := m.sim.Snapshot()
	st := m.st
	return func() tea.Msg {
		return savedMsg{err: st.Save(rec)}
	}
}

func (m *Model) setMessage(s string) {
	m.message = s
	m.messageExpires = time.Now().Add(messageDuration)
}
