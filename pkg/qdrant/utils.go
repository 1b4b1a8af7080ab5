package qdrant

import "fmt"

// validateSearchInput validates common search parameters.
func validateSearchInput(vector []float32, topK int) error {
	if len(vector) == 0 {
		return fmt.Errorf("qdrant: vector cannot be empty")
	}
	if topK <= 0 {
		return fmt.Errorf("qdrant: topK must be greater than 0")
	}
	return nil
}
