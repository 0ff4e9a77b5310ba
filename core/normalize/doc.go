// Package normalize applies caller-side defaults to a validated review.
//
// Validation never fills in data; Normalize does, on a copy: blank
// categories become [DefaultCategory] and free text is trimmed. [LevelOf]
// maps severities to the levels a UI shows, with suggestions as info.
package normalize
