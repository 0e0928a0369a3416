package app

import "time"

// TickMsg triggers one step of the session and a redraw.
type TickMsg time.Time
