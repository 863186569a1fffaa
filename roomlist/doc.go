// Package roomlist models the room list of a hotel page.
//
// The room list is fetched once. Every room card owns a progressive loader for
// its prices, observing the card's region in a visibility.Viewport, so prices
// are fetched only for the cards a user scrolls to.
package roomlist
