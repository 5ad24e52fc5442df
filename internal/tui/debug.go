package tui

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/eclipsereads/eclipse/internal/nav"
	"github.com/eclipsereads/eclipse/internal/screen"
)

// DebugLogger logs TUI state, keystrokes, and events to a file.
type DebugLogger struct {
	mu      sync.Mutex
	file    *os.File
	enabled bool
	seq     int
}

// Global debug logger instance
var debugLog *DebugLogger

// DebugLogPath is the fixed path for debug logs
const DebugLogPath = "eclipse-debug.log"

// InitDebugLogger initializes the debug logger if debug mode is enabled.
func InitDebugLogger(enabled bool) error {
	if !enabled {
		debugLog = &DebugLogger{enabled: false}
		return nil
	}

	logPath := DebugLogPath
	f, err := os.Create(logPath)
	if err != nil {
		return fmt.Errorf("creating debug log: %w", err)
	}

	debugLog = &DebugLogger{
		file:    f,
		enabled: true,
	}

	debugLog.log("DEBUG_START", map[string]any{
		"log_file": logPath,
		"time":     time.Now().Format(time.RFC3339),
	})

	return nil
}

// CloseDebugLogger closes the debug log file.
func CloseDebugLogger() {
	if debugLog != nil && debugLog.file != nil {
		debugLog.log("DEBUG_END", map[string]any{
			"time": time.Now().Format(time.RFC3339),
		})
		_ = debugLog.file.Close()
	}
}

// log writes a structured log entry.
func (d *DebugLogger) log(event string, data map[string]any) {
	if d == nil || !d.enabled || d.file == nil {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	entry := map[string]any{
		"seq":   d.seq,
		"ts":    time.Now().Format("15:04:05.000"),
		"event": event,
	}
	for k, v := range data {
		entry[k] = v
	}

	b, _ := json.Marshal(entry)
	_, _ = fmt.Fprintf(d.file, "%s\n", b)
}

func debugEnabled() bool {
	return debugLog != nil && debugLog.enabled
}

// LogKeyPress logs a key press event.
func LogKeyPress(msg tea.KeyMsg) {
	if !debugEnabled() {
		return
	}
	debugLog.log("KEY_PRESS", map[string]any{
		"key":  msg.String(),
		"type": fmt.Sprintf("%d", msg.Type),
	})
}

// LogEvent logs an event delivered to a screen.
func LogEvent(id nav.ScreenID, ev screen.Event) {
	if !debugEnabled() {
		return
	}
	data := map[string]any{
		"screen": string(id),
		"kind":   ev.Kind.String(),
		"target": ev.Target,
	}
	if ev.Kind == screen.EventTextChanged {
		data["value_len"] = len(ev.Value)
	}
	debugLog.log("SCREEN_EVENT", data)
}

// LogRouteChange logs an app-level route change.
func LogRouteChange(from, to nav.ScreenID, routes []nav.ScreenID) {
	if !debugEnabled() {
		return
	}
	stack := make([]string, 0, len(routes))
	for _, r := range routes {
		stack = append(stack, string(r))
	}
	debugLog.log("ROUTE_CHANGE", map[string]any{
		"from":  string(from),
		"to":    string(to),
		"stack": stack,
	})
}

// LogModalChange logs a screen's presentation state change.
func LogModalChange(owner nav.ScreenID, from, to nav.State) {
	if !debugEnabled() {
		return
	}
	debugLog.log("MODAL_CHANGE", map[string]any{
		"owner": string(owner),
		"from":  from.String(),
		"to":    to.String(),
	})
}

// LogFocus logs focus movement.
func LogFocus(index int, target, reason string) {
	if !debugEnabled() {
		return
	}
	debugLog.log("FOCUS", map[string]any{
		"index":  index,
		"target": truncateStr(target, 60),
		"reason": reason,
	})
}

// LogError logs an error.
func LogError(context string, err error) {
	if !debugEnabled() {
		return
	}
	debugLog.log("ERROR", map[string]any{
		"context": context,
		"error":   err.Error(),
	})
}

// truncateStr truncates a string to max length.
func truncateStr(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
