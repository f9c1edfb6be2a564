package types

// ConfirmationRequest represents a request for user confirmation before
// a destructive step, such as replacing an existing path with a link.
type ConfirmationRequest struct {
	// ID is a unique identifier for this confirmation within the run
	ID string

	// Title is a brief, user-friendly title describing what needs confirmation
	Title string

	// Description provides detailed information about what will happen
	Description string

	// Items lists specific paths that will be affected
	Items []string

	// Default indicates the default response if user just presses enter
	Default bool
}

// ConfirmFunc decides a single confirmation. A false answer with a nil
// error means "skip"; a non-nil error aborts the whole run.
type ConfirmFunc func(req ConfirmationRequest) (bool, error)
