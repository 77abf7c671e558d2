package campaign

import "errors"

// ErrNoRecipients indicates the campaign was started with an empty
// recipient list.
var ErrNoRecipients = errors.New("recipient list cannot be empty")
