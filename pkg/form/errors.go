package form

import "errors"

var ErrSendFailed = errors.New("form: failed to send message")

// NoticeSendFailed is shown to the user when sending fails.
const NoticeSendFailed = "Failed to send message. Please try again."
