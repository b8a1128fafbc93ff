// Package contact holds the validation rules of the contact form.
//
// Every field has an ordered list of checks. The first failing check decides
// the message and later checks are skipped, so a blank name reports
// "Name is required" rather than a pattern mismatch. Validators are pure:
//
//	if msg := contact.ValidateEmail(input); msg != "" {
//	    // reject with msg
//	}
//
// An empty string always means the value was accepted. The package also
// derives the message character counter shown under the textarea.
package contact
