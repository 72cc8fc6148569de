// Package validator classifies text values.
//
// The predicates IsValidEmail and IsNumeric answer a single yes/no question
// about a string and never fail:
//
//	validator.IsValidEmail("user@mail.co.uk") // true
//	validator.IsNumeric("123.456")            // false
//
// Both are anchored, full-string pattern checks. IsValidEmail is a shape
// check (local@domain.tld) and does not verify that the domain exists.
//
// # Rules
//
// For field-level validation the same predicates are exposed as Rule values
// which Apply evaluates, collecting every failure into a ValidationErrors
// slice that implements error:
//
//	err := validator.Apply(
//	    validator.Required("email", email),
//	    validator.ValidEmail("email", email),
//	    validator.NumericString("zip", zip),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, f := range verrs.Fields() {
//	        // verrs.Get(f)
//	    }
//	}
//
// errors.Is(err, ErrValidationFailed) holds for any error returned by Apply.
//
// The package has no mutable state and is safe for concurrent use.
package validator
