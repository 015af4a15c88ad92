package board

import (
	"math"
	"time"
)

type (
	// Alerts is the list of messages currently shown to the user. Named
	// alerts replace an earlier alert with the same name instead of piling up.
	Alerts struct {
		alerts []Alert
	}

	Alert struct {
		Name      string
		Priority  AlertPriority
		Message   string
		Duration  time.Duration
		FadeLevel float64
	}

	AlertPriority int
)

const (
	None AlertPriority = iota
	Info
	Warning
	Error
)

const alertFadeTime = 250 * time.Millisecond

func (m *Alerts) Items() []Alert {
	return append([]Alert(nil), m.alerts...)
}

func (m *Alerts) Len() int { return len(m.alerts) }

// Update advances the alerts by d, removing the ones that have expired. It
// returns true if some alert is still animating.
func (m *Alerts) Update(d time.Duration) (animating bool) {
	for i := len(m.alerts) - 1; i >= 0; i-- {
		if m.alerts[i].Duration >= d {
			m.alerts[i].Duration -= d
			if m.alerts[i].FadeLevel < 1 {
				animating = true
				m.alerts[i].FadeLevel = math.Min(m.alerts[i].FadeLevel+float64(d)/float64(alertFadeTime), 1)
			}
		} else {
			m.alerts[i].Duration = 0
			m.alerts[i].FadeLevel = math.Max(m.alerts[i].FadeLevel-float64(d)/float64(alertFadeTime), 0)
			if m.alerts[i].FadeLevel > 0 {
				animating = true
			} else {
				m.alerts = append(m.alerts[:i], m.alerts[i+1:]...)
			}
		}
	}
	return
}

func (m *Alerts) AddNamed(name, message string, priority AlertPriority) {
	m.AddAlert(Alert{
		Name:     name,
		Priority: priority,
		Message:  message,
		Duration: 3 * time.Second,
	})
}

func (m *Alerts) AddAlert(a Alert) {
	for i := range m.alerts {
		if n := m.alerts[i].Name; n != "" && n == a.Name {
			a.FadeLevel = m.alerts[i].FadeLevel
			m.alerts[i] = a
			return
		}
	}
	m.alerts = append(m.alerts, a)
}
