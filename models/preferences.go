package models

// Preferences is the lightweight user-preference blob persisted next to the
// pending-write queue. It is not part of the sync correctness contract.
type Preferences struct {
	RestTimerSound string `json:"rest_timer_sound"`
	AlertsEnabled  bool   `json:"alerts_enabled"`
}
