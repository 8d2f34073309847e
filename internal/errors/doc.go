// Package errors provides the structured error handling used across the
// adventurer-api service.
//
// It provides:
//   - Structured errors with codes, messages, and metadata
//   - HTTP status mapping for the handler layer
//   - Error context preservation through wrapping
//   - Validation error helpers
//   - Type-safe error checking
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("adventurer not found")
//	err := errors.InvalidArgumentf("invalid page index: %d", page)
//
// Adding metadata:
//
//	err := errors.NotFound("adventurer not found").
//	    WithMeta("token_id", tokenID)
//
// Wrapping errors:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to get adventurer")
//	}
//
// # Error Checking
//
//	if errors.IsNotFound(err) {
//	    // Handle not found case
//	}
//
//	code := errors.GetCode(err)
//	message := errors.GetMessage(err)
//
// # Validation Errors
//
// Using the validation builder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("name", input.Name, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Layer-Specific Guidelines
//
// Repository layer:
//   - Return domain-specific errors (NotFound, AlreadyExists)
//   - Include relevant IDs in metadata
//   - Wrap storage errors with context
//
// Orchestrator layer:
//   - Validate inputs and return InvalidArgument errors
//   - Wrap repository errors with business context
//
// Handler layer:
//   - Convert error codes to HTTP statuses via Code.HTTPStatus
//   - Extract user-friendly messages
//   - Log internal errors for debugging
package errors
