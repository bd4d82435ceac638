// Package interactions records and serves the access audit log for the
// protected content resource groups.
package interactions

import "time"

// Entry is one recorded access to a protected resource group.
type Entry struct {
	ID            int64     `json:"id"`
	URL           string    `json:"url"`
	HTTPMethod    string    `json:"httpMethod"`
	Username      string    `json:"username"`
	RemoteAddress string    `json:"remoteAddress"`
	OccurredAt    time.Time `json:"timestamp"`
}
