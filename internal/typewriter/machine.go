// Package typewriter types and deletes a rotating list of phrases one
// character at a time.
package typewriter

import "time"

const (
	TypeDelay    = 60 * time.Millisecond
	DeleteDelay  = 35 * time.Millisecond
	PauseAtFull  = 2000 * time.Millisecond
	PauseAtEmpty = 400 * time.Millisecond
	InitialDelay = 1200 * time.Millisecond
	RestartDelay = 300 * time.Millisecond
)

// Machine holds the typing position. It is not safe for concurrent use.
type Machine struct {
	phrases  [][]rune
	phrase   int
	chars    int
	deleting bool
}

// NewMachine starts at the beginning of the first phrase.
func NewMachine(phrases []string) *Machine {
	m := &Machine{}
	m.Reset(phrases)
	return m
}

// Reset loads a new phrase list and rewinds to its first phrase.
func (m *Machine) Reset(phrases []string) {
	m.phrases = make([][]rune, len(phrases))
	for i, p := range phrases {
		m.phrases[i] = []rune(p)
	}
	m.phrase, m.chars, m.deleting = 0, 0, false
}

// Step performs one tick and returns the visible text together with how long
// to wait before the next tick.
func (m *Machine) Step() (string, time.Duration) {
	if len(m.phrases) == 0 {
		return "", PauseAtEmpty
	}
	if m.phrase >= len(m.phrases) {
		m.phrase = 0
	}
	cur := m.phrases[m.phrase]

	if !m.deleting {
		if m.chars < len(cur) {
			m.chars++
		}
		text := string(cur[:m.chars])
		if m.chars >= len(cur) {
			m.deleting = true
			return text, PauseAtFull
		}
		return text, TypeDelay
	}

	if m.chars > 0 {
		m.chars--
	}
	text := string(cur[:m.chars])
	if m.chars == 0 {
		m.deleting = false
		m.phrase = (m.phrase + 1) % len(m.phrases)
		return text, PauseAtEmpty
	}
	return text, DeleteDelay
}
