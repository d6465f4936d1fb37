package kiosk

import (
	"fmt"

	"reminder-app/reminder/models"
)

// Mode selects which slice of the open tasks the kiosk shows.
type Mode int

const (
	ModeMixed  Mode = 1
	ModeHigh   Mode = 2
	ModeNormal Mode = 3
	ModeLow    Mode = 4
)

// ParseMode maps anything outside 1..4 to ModeMixed.
func ParseMode(v int) Mode {
	m := Mode(v)
	if m < ModeMixed || m > ModeLow {
		return ModeMixed
	}
	return m
}

// Next cycles 1→2→3→4→1.
func (m Mode) Next() Mode {
	if m >= ModeLow || m < ModeMixed {
		return ModeMixed
	}
	return m + 1
}

func (m Mode) String() string {
	return fmt.Sprintf("%d", int(m))
}

// ModeStore holds per-name integers, typically the user's session.
type ModeStore interface {
	GetInt(key string) (int, bool)
	SetInt(key string, value int)
}

// ModeKey is the store key of the rotation mode for a kiosk user name.
func ModeKey(name string) string {
	return "mode_" + models.NormalizeName(name)
}

// LoadMode returns the stored mode for name; missing or invalid values are ModeMixed.
func LoadMode(store ModeStore, name string) Mode {
	v, ok := store.GetInt(ModeKey(name))
	if !ok {
		return ModeMixed
	}
	return ParseMode(v)
}

// AdvanceMode stores and returns the mode following the current one.
func AdvanceMode(store ModeStore, name string) Mode {
	next := LoadMode(store, name).Next()
	store.SetInt(ModeKey(name), int(next))
	return next
}
