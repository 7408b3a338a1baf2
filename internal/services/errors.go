// Package services defines the business logic for horoscopes, tarot
// readings, compatibility, birth charts, the shop, and the blog. This file
// centralizes common service-level error values so that they can be
// consistently returned by service methods and checked by callers.
//
// These errors are intended for internal use by the service layer and
// translation into user-facing messages or HTTP status codes should be
// performed at the handler/controller layer.
package services

import "errors"

// Reading-related errors.
var (
	// ErrUnknownSign indicates the requested zodiac sign slug does not exist.
	ErrUnknownSign = errors.New("unknown zodiac sign")

	// ErrUnknownSpread indicates the requested tarot spread does not exist.
	ErrUnknownSpread = errors.New("unknown tarot spread")

	// ErrEmptyQuestion is returned when a tarot reading request contains an
	// empty question.
	ErrEmptyQuestion = errors.New("question is empty")

	// ErrTooLong is returned when a question or topic exceeds the maximum
	// configured length limit.
	ErrTooLong = errors.New("input too long")

	// ErrReadingNotFound indicates that the requested reading does not exist
	// or is not accessible to the current user.
	ErrReadingNotFound = errors.New("reading not found")

	// ErrInvalidFeedback is returned when a feedback value is outside the
	// allowed set (currently -1 or 1).
	ErrInvalidFeedback = errors.New("feedback value must be -1 or 1")

	// ErrDuplicateFeedback is returned when a user attempts to rate a reading
	// they have already rated.
	ErrDuplicateFeedback = errors.New("feedback already exists")

	// ErrChartNotFound indicates that no birth chart exists for the user yet.
	ErrChartNotFound = errors.New("birth chart not found")

	// ErrInvalidBirthDate is returned when a birth chart request carries a
	// zero or future birth date.
	ErrInvalidBirthDate = errors.New("invalid birth date")
)

// Shop-related errors.
var (
	// ErrProductNotFound indicates the requested product does not exist or is
	// not purchasable.
	ErrProductNotFound = errors.New("product not found")

	// ErrInsufficientStock is returned at checkout when a product has fewer
	// units than requested.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrEmptyOrder is returned when a checkout carries no items.
	ErrEmptyOrder = errors.New("order has no items")

	// ErrInvalidQuantity is returned when an order line requests a
	// non-positive quantity.
	ErrInvalidQuantity = errors.New("quantity must be positive")

	// ErrInvalidPayment is returned when the payment method is not one of the
	// accepted values.
	ErrInvalidPayment = errors.New("unsupported payment method")

	// ErrOrderNotFound indicates that the requested order does not exist or
	// is not accessible to the current user.
	ErrOrderNotFound = errors.New("order not found")

	// ErrInvalidTransition is returned when an order status change is not in
	// the allowed transition table.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrOrderTerminal is returned when attempting to change an order that is
	// already delivered or cancelled.
	ErrOrderTerminal = errors.New("order is in a terminal state")
)

// Blog- and settings-related errors.
var (
	// ErrEmptyTopic is returned when a blog draft request has no topic.
	ErrEmptyTopic = errors.New("topic is empty")

	// ErrPostNotFound indicates that the requested blog post does not exist
	// or is not visible.
	ErrPostNotFound = errors.New("post not found")

	// ErrAlreadyPublished is returned when publishing a post that is not a
	// draft.
	ErrAlreadyPublished = errors.New("post already published")

	// ErrInvalidRate is returned when a settings update carries a
	// non-positive exchange rate.
	ErrInvalidRate = errors.New("exchange rate must be positive")
)
