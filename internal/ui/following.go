// Package ui provides the Bubble Tea views for realtube: the vertical
// shorts feed and the long-form watch page.
package ui

import "github.com/abelbrown/realtube/internal/channel"

// Following is the subscription surface the views need.
// *subscriptions.Store satisfies it.
type Following interface {
	IsSubscribed(id string) bool
	Toggle(c channel.Channel) (bool, error)
}
