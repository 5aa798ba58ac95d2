package implementation

import "fmt"

// validateDocType guards the store boundary: every document must carry the
// discriminant value recognized for its record type.
func validateDocType(got, want string) error {
	if got != want {
		return fmt.Errorf("unexpected document type %q, want %q", got, want)
	}
	return nil
}
