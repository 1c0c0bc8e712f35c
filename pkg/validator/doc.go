// Package validator provides rule-based validation with per-field error
// accumulation.
//
// A schema composes Rule values and executes them with Apply, which returns
// ValidationErrors carrying every failed rule's field and message in order.
// Rules never panic; any input shape maps to either success or a recorded
// failure.
//
//	err := validator.Apply(
//		validator.RequiredString("name", name),
//		validator.MinLenString("name", name, 2),
//		validator.ValidEmail("email", email),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//		for _, field := range verrs.Fields() { ... }
//	}
package validator
