package models

import "time"

type BookingRecord struct {
	ID             string    `json:"id" bson:"_id"`
	RequestID      string    `json:"requestId" bson:"requestId"`
	SessionID      string    `json:"sessionId" bson:"sessionId"`
	UserID         string    `json:"userId" bson:"userId"`
	StorageKey     string    `json:"storageKey" bson:"storageKey"`
	Start          time.Time `json:"start" bson:"start"`
	End            time.Time `json:"end" bson:"end"`
	Timezone       string    `json:"timezone" bson:"timezone"`
	Title          string    `json:"title" bson:"title"`
	RequesterName  string    `json:"requesterName" bson:"requesterName"`
	RequesterEmail string    `json:"requesterEmail" bson:"requesterEmail"`
	Recipients     []string  `json:"recipients" bson:"recipients"`
	EmailSent      bool      `json:"emailSent" bson:"emailSent"`
	TimeModel      `bson:",inline"`
}
