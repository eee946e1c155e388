// Package tui provides a live terminal view of a simulated path.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/quantsim/internal/mc"
)

const (
	graphWidth      = 70
	graphHeight     = 10
	historyCapacity = 600
	stepsPerTick    = 1
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model steps a path forward on every tick and plots the price trace,
// plus the variance trace for two-factor processes.
type Model struct {
	stepper   *mc.Stepper
	modelName string
	running   bool
	err       error
	prices    []float64
	variances []float64
}

func NewModel(stepper *mc.Stepper, modelName string) Model {
	m := Model{
		stepper:   stepper,
		modelName: modelName,
		running:   true,
		prices:    make([]float64, 0, historyCapacity),
	}
	if len(stepper.State()) > 1 {
		m.variances = make([]float64, 0, historyCapacity)
	}
	m.capture()
	return m
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		}
	case TickMsg:
		if m.running && m.err == nil && !m.stepper.Done() {
			for i := 0; i < stepsPerTick; i++ {
				if err := m.stepper.Next(); err != nil {
					m.err = err
					break
				}
				m.capture()
			}
		}
		return m, tick()
	}
	return m, nil
}

func (m *Model) reset() {
	if err := m.stepper.Reset(); err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.prices = m.prices[:0]
	if m.variances != nil {
		m.variances = m.variances[:0]
	}
	m.capture()
}

func (m *Model) capture() {
	x := m.stepper.State()
	if len(m.prices) >= historyCapacity {
		m.prices = m.prices[1:]
	}
	m.prices = append(m.prices, x[0])

	if m.variances != nil && len(x) > 1 {
		if len(m.variances) >= historyCapacity {
			m.variances = m.variances[1:]
		}
		m.variances = append(m.variances, x[1])
	}
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("quantsim live — %s", m.modelName)))
	b.WriteString("\n")

	if len(m.prices) > 1 {
		plot := asciigraph.Plot(m.prices,
			asciigraph.Height(graphHeight),
			asciigraph.Width(graphWidth),
			asciigraph.Caption("price"))
		b.WriteString(graphStyle.Render(plot))
		b.WriteString("\n")
	}
	if len(m.variances) > 1 {
		plot := asciigraph.Plot(m.variances,
			asciigraph.Height(graphHeight),
			asciigraph.Width(graphWidth),
			asciigraph.Caption("variance"))
		b.WriteString(graphStyle.Render(plot))
		b.WriteString("\n")
	}

	x := m.stepper.State()
	b.WriteString(labelStyle.Render("t"))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%.4f", m.stepper.Time())))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("price"))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%.4f", x[0])))
	b.WriteString("\n")
	if len(x) > 1 {
		b.WriteString(labelStyle.Render("variance"))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%.6f", x[1])))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(errStyle.Render(fmt.Sprintf("error: %v", m.err)))
		b.WriteString("\n")
	} else if m.stepper.Done() {
		b.WriteString(valueStyle.Render("horizon reached"))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("space pause · r reset · q quit"))
	b.WriteString("\n")
	return b.String()
}
