package domain

import "time"

// User mirrors an identity-provider account. The id is the provider uid;
// the record is created lazily on the first authenticated call.
type User struct {
	ID        string    `bson:"_id" json:"id"`
	Email     string    `bson:"email" json:"email"`
	Name      string    `bson:"name,omitempty" json:"name,omitempty"`
	Admin     bool      `bson:"admin" json:"admin"`
	Theme     string    `bson:"theme,omitempty" json:"theme,omitempty"`
	Language  string    `bson:"language,omitempty" json:"language,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
