package get_rooms

import "fmt"

// validateRequest валидирует критерии фильтрации
func validateRequest(req *Request) error {
	if req.Filter.MaxPrice < 0 {
		return fmt.Errorf("%w: maxPrice must not be negative", ErrInvalidInput)
	}

	if !req.Filter.Category.IsValid() {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidInput, req.Filter.Category)
	}

	if !req.Filter.SortOrder.IsValid() {
		return fmt.Errorf("%w: unknown sort order %q", ErrInvalidInput, req.Filter.SortOrder)
	}

	return nil
}
