package statuschecks

import "time"

// StatusCheck is a heartbeat-style record logged by API clients.
type StatusCheck struct {
	ID         string    `json:"id" bson:"id"`
	ClientName string    `json:"client_name" bson:"client_name"`
	Timestamp  time.Time `json:"timestamp" bson:"timestamp"`
}
