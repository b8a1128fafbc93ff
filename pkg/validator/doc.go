// Package validator provides small, composable validation rules for string input.
//
// A Rule couples a lazy Check function with the ValidationError reported when
// the check fails. Rules are evaluated either with Apply, which collects every
// failure into ValidationErrors, or with First, which stops at the first
// failing rule. First is what form fields use: each field reports exactly one
// message, and later rules may assume earlier ones passed.
//
// # Usage
//
//	err := validator.First(
//	    validator.Required("name", v).WithMessage("Name is required"),
//	    validator.MinLen("name", v, 2),
//	    validator.Matches("name", v, namePattern, "name"),
//	)
//	if msg := validator.Message(err); msg != "" {
//	    // show msg next to the field
//	}
//
// # Error Handling
//
// ValidationErrors implements error, so results travel through ordinary error
// returns. Use ExtractValidationErrors or IsValidationError to tell them apart
// from other failures, and Message to read the first message.
//
// Lengths are measured in characters (runes), not bytes.
//
// The package is stateless and goroutine-safe.
package validator
