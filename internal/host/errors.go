package host

import "fmt"

// loadError signals that no loader strategy could open the model. Fatal at
// startup.
type loadError struct {
	model string
	msg   string
}

func (e loadError) Error() string {
	return fmt.Sprintf("failed to load model %s: %s", e.model, e.msg)
}

// ErrLoad constructs a loadError for the given model.
func ErrLoad(model, msg string) error { return loadError{model: model, msg: msg} }

// IsLoadError reports whether err came from a failed model load.
func IsLoadError(err error) bool {
	_, ok := err.(loadError)
	return ok
}

// generationError wraps a backend failure during generation.
type generationError struct{ cause error }

func (e generationError) Error() string { return "generation failed: " + e.cause.Error() }
func (e generationError) Unwrap() error { return e.cause }

// IsGenerationError reports whether err occurred while generating text.
func IsGenerationError(err error) bool {
	_, ok := err.(generationError)
	return ok
}

// dependencyUnavailableError signals a missing backend (e.g., a binary built
// without the llama tag) so callers can distinguish it from a bad model file.
type dependencyUnavailableError struct{ msg string }

func (e dependencyUnavailableError) Error() string { return e.msg }

// ErrDependencyUnavailable constructs a dependencyUnavailableError.
func ErrDependencyUnavailable(msg string) error { return dependencyUnavailableError{msg: msg} }

// IsDependencyUnavailable reports whether err indicates a missing backend.
func IsDependencyUnavailable(err error) bool {
	_, ok := err.(dependencyUnavailableError)
	return ok
}
