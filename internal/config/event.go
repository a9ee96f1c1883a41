package config

import (
	"fmt"
	"time"
)

// EventStartLayout is the layout of EVENT_START, a wall-clock time without zone.
const EventStartLayout = "2006-01-02T15:04:05"

// EventConfig holds hackathon event configuration.
type EventConfig struct {
	// Name is the public event name shown on every page.
	Name string
	// Start is the event start as wall-clock time in Timezone.
	Start string
	// Timezone is the IANA zone Start is interpreted in.
	Timezone string
	// CountdownInterval is the period between countdown updates.
	CountdownInterval time.Duration
}

// LoadEventConfigFromEnv loads event configuration from environment variables.
func LoadEventConfigFromEnv() EventConfig {
	return EventConfig{
		Name:              GetEnv("EVENT_NAME", "Innov8X"),
		Start:             GetEnv("EVENT_START", "2024-10-19T09:00:00"),
		Timezone:          GetEnv("EVENT_TIMEZONE", "Asia/Kolkata"),
		CountdownInterval: GetEnvDuration("COUNTDOWN_INTERVAL", time.Second),
	}
}

// Target returns the event start as an absolute time.
func (c EventConfig) Target() (time.Time, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid EVENT_TIMEZONE %q: %w", c.Timezone, err)
	}
	target, err := time.ParseInLocation(EventStartLayout, c.Start, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid EVENT_START %q: %w", c.Start, err)
	}
	return target, nil
}

// Validate validates event configuration.
func (c EventConfig) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("EVENT_NAME is required")
	}
	if c.CountdownInterval <= 0 {
		return fmt.Errorf("CountdownInterval must be greater than 0")
	}
	if _, err := c.Target(); err != nil {
		return err
	}
	return nil
}
