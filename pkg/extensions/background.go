package extensions

import (
	"encoding/json"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/adhocore/gronx"
	"github.com/google/uuid"
)

// PowerState is the device's current power source, used to throttle
// background execution while on battery.
type PowerState int

const (
	PowerUnknown PowerState = iota
	PowerAC
	PowerBattery
)

// BackgroundSchedulerConfig configures a BackgroundScheduler.
type BackgroundSchedulerConfig struct {
	SettingsDir               string
	MinInterval               time.Duration
	BatteryThrottleMultiplier float64
	PauseOnBattery            bool
	PowerCheckInterval        time.Duration
}

func (c BackgroundSchedulerConfig) withDefaults() BackgroundSchedulerConfig {
	if c.MinInterval <= 0 {
		c.MinInterval = 60 * time.Second
	}
	if c.BatteryThrottleMultiplier <= 0 {
		c.BatteryThrottleMultiplier = 2.0
	}
	if c.PowerCheckInterval <= 0 {
		c.PowerCheckInterval = 60 * time.Second
	}
	return c
}

// backgroundTaskState tracks one extension's background execution history.
type backgroundTaskState struct {
	config       BackgroundConfig
	userEnabled  bool
	lastRun      time.Time
	hasRun       bool
	failureCount int
	isCritical   bool
}

func newBackgroundTaskState(config BackgroundConfig) *backgroundTaskState {
	return &backgroundTaskState{config: config, userEnabled: true}
}

// effectiveInterval is the task's configured interval, stretched by
// exponential failure backoff (capped at 8x, i.e. 3 consecutive
// failures) and by a battery throttle multiplier.
func (s *backgroundTaskState) effectiveInterval(power PowerState, batteryMultiplier float64) time.Duration {
	base := time.Duration(s.config.Interval) * time.Second

	failures := s.failureCount
	if failures > 3 {
		failures = 3
	}
	failureMultiplier := math.Pow(2, float64(failures))

	powerMultiplier := 1.0
	if power == PowerBattery {
		powerMultiplier = batteryMultiplier
	}

	return time.Duration(float64(base) * failureMultiplier * powerMultiplier)
}

func (s *backgroundTaskState) shouldRun(power PowerState, config BackgroundSchedulerConfig) bool {
	if !s.userEnabled {
		return false
	}
	if config.PauseOnBattery && power == PowerBattery && !s.isCritical {
		return false
	}
	if !s.hasRun {
		return s.config.RunOnLoad
	}
	if s.config.Schedule != "" {
		return s.cronDue()
	}
	return time.Since(s.lastRun) >= s.effectiveInterval(power, config.BatteryThrottleMultiplier)
}

// cronDue reports whether the task's cron-style schedule has a tick due
// since it last ran, overriding the flat interval entirely when set.
// Ticks within the same minute as lastRun are suppressed so a scheduler
// loop period shorter than a minute can't fire a cron task twice.
func (s *backgroundTaskState) cronDue() bool {
	if time.Since(s.lastRun) < time.Minute {
		return false
	}
	due, err := gronx.IsDue(s.config.Schedule)
	if err != nil {
		slog.Warn("invalid background schedule expression", "schedule", s.config.Schedule, "error", err)
		return false
	}
	return due
}

// BackgroundCallback runs one extension's background tick. A non-nil
// error counts as a failure for backoff purposes.
type BackgroundCallback func(extensionID string) error

type schedulerMessage struct {
	id          string // uuid, carried through for correlating log lines
	kind        string // register, unregister, set_enabled, set_critical, force_tick, shutdown
	extensionID string
	config      BackgroundConfig
	enabled     bool
	critical    bool
}

// BackgroundScheduler periodically ticks registered extensions'
// background handlers, throttling on battery and backing off after
// repeated failures. It runs its loop in its own goroutine. The
// mutating methods send a message onto its buffered channel (capacity
// 64) and block only while it is full; the getters read shared state
// under a mutex.
type BackgroundScheduler struct {
	config   BackgroundSchedulerConfig
	callback BackgroundCallback

	messages chan schedulerMessage
	done     chan struct{}

	mu             sync.Mutex
	extensions     map[string]*backgroundTaskState
	pendingEnabled map[string]bool // user settings loaded before any extension registered
	power          PowerState
}

// NewBackgroundScheduler starts the scheduler loop and returns a handle
// to it. The loop runs until Shutdown is called.
func NewBackgroundScheduler(config BackgroundSchedulerConfig, callback BackgroundCallback) *BackgroundScheduler {
	config = config.withDefaults()

	s := &BackgroundScheduler{
		config:         config,
		callback:       callback,
		messages:       make(chan schedulerMessage, 64),
		done:           make(chan struct{}),
		extensions:     map[string]*backgroundTaskState{},
		pendingEnabled: map[string]bool{},
		power:          PowerUnknown,
	}

	s.loadUserSettings()
	go s.loop()
	return s
}

func (s *BackgroundScheduler) loop() {
	tickInterval := s.config.MinInterval
	if tickInterval < 10*time.Second {
		tickInterval = 10 * time.Second
	}

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	powerCheck := time.NewTicker(s.config.PowerCheckInterval)
	defer powerCheck.Stop()

	for {
		select {
		case msg := <-s.messages:
			if msg.kind == "shutdown" {
				s.saveUserSettings()
				close(s.done)
				return
			}
			s.handleMessage(msg)

		case <-powerCheck.C:
			s.mu.Lock()
			s.power = detectPowerState()
			s.mu.Unlock()

		case <-ticker.C:
			s.runDueTasks()
		}
	}
}

func (s *BackgroundScheduler) handleMessage(msg schedulerMessage) {
	slog.Debug("background scheduler message", "id", msg.id, "kind", msg.kind, "extension", msg.extensionID)

	s.mu.Lock()
	defer s.mu.Unlock()

	switch msg.kind {
	case "register":
		state := newBackgroundTaskState(msg.config)
		if enabled, ok := s.pendingEnabled[msg.extensionID]; ok {
			state.userEnabled = enabled
		}
		s.extensions[msg.extensionID] = state

	case "unregister":
		delete(s.extensions, msg.extensionID)

	case "set_enabled":
		if state, ok := s.extensions[msg.extensionID]; ok {
			state.userEnabled = msg.enabled
		}

	case "set_critical":
		if state, ok := s.extensions[msg.extensionID]; ok {
			state.isCritical = msg.critical
		}

	case "force_tick":
		if state, ok := s.extensions[msg.extensionID]; ok {
			state.hasRun = true
			state.lastRun = time.Time{}
		}
	}
}

func (s *BackgroundScheduler) runDueTasks() {
	s.mu.Lock()
	power := s.power
	var due []string
	for id, state := range s.extensions {
		if state.shouldRun(power, s.config) {
			due = append(due, id)
		}
	}
	s.mu.Unlock()

	for _, id := range due {
		err := s.callback(id)

		s.mu.Lock()
		if state, ok := s.extensions[id]; ok {
			state.lastRun = time.Now()
			state.hasRun = true
			if err != nil {
				state.failureCount++
				slog.Warn("background task failed", "extension", id, "error", err, "failures", state.failureCount)
			} else {
				state.failureCount = 0
			}
		}
		s.mu.Unlock()
	}
}

// Register adds an extension to the schedule.
func (s *BackgroundScheduler) Register(extensionID string, config BackgroundConfig) {
	s.messages <- schedulerMessage{id: uuid.NewString(), kind: "register", extensionID: extensionID, config: config}
}

// Unregister removes an extension from the schedule.
func (s *BackgroundScheduler) Unregister(extensionID string) {
	s.messages <- schedulerMessage{id: uuid.NewString(), kind: "unregister", extensionID: extensionID}
}

// SetEnabled toggles an extension's background execution (user override).
func (s *BackgroundScheduler) SetEnabled(extensionID string, enabled bool) {
	s.messages <- schedulerMessage{id: uuid.NewString(), kind: "set_enabled", extensionID: extensionID, enabled: enabled}
}

// SetCritical marks whether an extension's background task should run
// even while pause-on-battery would otherwise skip it.
func (s *BackgroundScheduler) SetCritical(extensionID string, critical bool) {
	s.messages <- schedulerMessage{id: uuid.NewString(), kind: "set_critical", extensionID: extensionID, critical: critical}
}

// ForceTick clears an extension's last-run timestamp so it executes on
// the next tick regardless of its interval. A task with a cron Schedule
// still runs only in a minute its expression matches.
func (s *BackgroundScheduler) ForceTick(extensionID string) {
	s.messages <- schedulerMessage{id: uuid.NewString(), kind: "force_tick", extensionID: extensionID}
}

// PowerState returns the most recently detected power source.
func (s *BackgroundScheduler) PowerState() PowerState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.power
}

// IsEnabled reports whether extensionID is currently user-enabled.
func (s *BackgroundScheduler) IsEnabled(extensionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.extensions[extensionID]
	return ok && state.userEnabled
}

// RegisteredExtensions lists every extension with a background registration.
func (s *BackgroundScheduler) RegisteredExtensions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.extensions))
	for id := range s.extensions {
		out = append(out, id)
	}
	return out
}

// Shutdown stops the scheduler loop and blocks until it exits,
// persisting user settings first.
func (s *BackgroundScheduler) Shutdown() {
	s.messages <- schedulerMessage{id: uuid.NewString(), kind: "shutdown"}
	<-s.done
}

type backgroundUserSettings struct {
	Enabled map[string]bool `json:"enabled"`
}

func (s *BackgroundScheduler) settingsPath() string {
	return filepath.Join(s.config.SettingsDir, "settings.json")
}

// loadUserSettings reads persisted per-extension toggles into
// pendingEnabled. Extensions usually register after the scheduler
// starts, so settings are applied lazily at register time rather than
// against an extensions map that is still empty here.
func (s *BackgroundScheduler) loadUserSettings() {
	data, err := os.ReadFile(s.settingsPath())
	if err != nil {
		return
	}
	var settings backgroundUserSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		slog.Warn("failed to parse background settings", "error", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for id, enabled := range settings.Enabled {
		s.pendingEnabled[id] = enabled
	}
}

func (s *BackgroundScheduler) saveUserSettings() {
	s.mu.Lock()
	settings := backgroundUserSettings{Enabled: map[string]bool{}}
	for id, state := range s.extensions {
		settings.Enabled[id] = state.userEnabled
	}
	s.mu.Unlock()

	if err := os.MkdirAll(s.config.SettingsDir, 0o755); err != nil {
		slog.Warn("failed to create background settings dir", "error", err)
		return
	}
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		slog.Warn("failed to encode background settings", "error", err)
		return
	}
	if err := os.WriteFile(s.settingsPath(), data, 0o644); err != nil {
		slog.Warn("failed to write background settings", "error", err)
	}
}

// detectPowerState inspects /sys/class/power_supply on Linux. It
// returns PowerUnknown on any other platform or if the sysfs tree is
// absent or unreadable.
func detectPowerState() PowerState {
	const dir = "/sys/class/power_supply"
	entries, err := os.ReadDir(dir)
	if err != nil {
		return PowerUnknown
	}

	for _, entry := range entries {
		typePath := filepath.Join(dir, entry.Name(), "type")
		kind, err := os.ReadFile(typePath)
		if err != nil {
			continue
		}

		switch strings.TrimSpace(string(kind)) {
		case "Mains":
			online, err := os.ReadFile(filepath.Join(dir, entry.Name(), "online"))
			if err == nil && strings.TrimSpace(string(online)) == "1" {
				return PowerAC
			}
		case "Battery":
			status, err := os.ReadFile(filepath.Join(dir, entry.Name(), "status"))
			if err != nil {
				continue
			}
			switch strings.ToLower(strings.TrimSpace(string(status))) {
			case "discharging":
				return PowerBattery
			case "charging", "full":
				return PowerAC
			}
		}
	}

	return PowerUnknown
}
