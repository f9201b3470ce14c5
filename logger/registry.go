package logger

import (
	"sync"
)

// components holds the loggers pinned to a component name.
var components = struct {
	sync.RWMutex
	byName map[string]*Logger
}{byName: make(map[string]*Logger)}

// Register pins l as the logger returned by Get(name).
func Register(name string, l *Logger) {
	components.Lock()
	defer components.Unlock()
	components.byName[name] = l
}

// RegisterComponents pins a component logger derived from the current global
// logger for every name, replacing earlier registrations. Call it after Init
// so each component carries the configured level and format.
func RegisterComponents(names ...string) {
	global := GetGlobalLogger()
	components.Lock()
	defer components.Unlock()
	for _, name := range names {
		components.byName[name] = global.WithComponent(name)
	}
}

// Get returns the logger pinned to name, or the global logger tagged with
// name when nothing is registered.
func Get(name string) *Logger {
	components.RLock()
	l, ok := components.byName[name]
	components.RUnlock()
	if ok {
		return l
	}
	return GetGlobalLogger().WithComponent(name)
}

func unregister(names ...string) {
	components.Lock()
	defer components.Unlock()
	for _, name := range names {
		delete(components.byName, name)
	}
}
