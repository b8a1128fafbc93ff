package form

import "github.com/dmitrymomot/contactform/pkg/contact"

// Element ids of the contact page.
const (
	FormID         = "contactForm"
	SubmitID       = "submitBtn"
	SpinnerID      = "loadingSpinner"
	LabelID        = "btnText"
	SuccessID      = "successMessage"
	StatsID        = "formStats"
	StatsContentID = "statsContent"
	CounterID      = "charCounter"
)

// CSS classes toggled by the controller.
const (
	ClassError   = "error"
	ClassSuccess = "success"
	ClassShow    = "show"
)

// Button labels.
const (
	LabelIdle    = "Send Message"
	LabelSending = "Sending..."
)

const shakeAnimation = "shake 0.5s ease-in-out"

// InputID returns the id of the input bound to f.
func InputID(f contact.Field) string { return f.String() }

// ErrorRegionID returns the id of the element shown when f is invalid.
func ErrorRegionID(f contact.Field) string { return f.String() + "Error" }

// ErrorTextID returns the id of the element holding the message for f.
func ErrorTextID(f contact.Field) string { return f.String() + "ErrorText" }
