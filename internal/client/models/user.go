// Package models defines the client-side data types exchanged with the
// style-assistant backend. All entities are owned by the backend; local
// copies are caches only.
package models

// User is the identity record returned by login and persisted in the
// session store.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
