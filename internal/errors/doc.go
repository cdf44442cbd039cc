// Package errors provides the error model shared by the API client, the
// screen controllers and the terminal views.
//
// It provides:
//   - Structured errors with codes, messages, and metadata
//   - Mapping between HTTP statuses and codes
//   - An origin tag telling server, client and transport failures apart
//   - Error context preservation through wrapping
//   - Validation error helpers
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("boss not found")
//	err := errors.InvalidArgumentf("invalid page: %d", page)
//
// Wrapping errors:
//
//	if err := repo.Put(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to save last hp")
//	}
//
// # Origins
//
// Every error that reaches a view carries one of three origins in its
// metadata:
//
//	errors.FromResponse(status, env.Message, env.ErrorCode) // server
//	errors.Client(errors.CodeFailedPrecondition, "포인트 부족")  // client
//	errors.Transport(err, "request failed")                 // transport
//
// UserMessage shows server and client messages verbatim and replaces
// everything else with the caller's fallback text:
//
//	notices.OpenNotice(notice.KindError, "오류", errors.UserMessage(err, "잠시 후 다시 시도해주세요."))
//
// # Validation Errors
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("email", input.Email, vb)
//	errors.ValidateMinLength("password", input.Password, 8, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Layer-Specific Guidelines
//
// Repository layer:
//   - Return NotFound for missing keys
//   - Wrap storage errors with context
//
// API client:
//   - Convert non-2xx statuses and success=false envelopes with FromResponse
//   - Convert dial, timeout and cancel failures with Transport
//
// Orchestrator layer:
//   - Reject bad input with Client before any request is made
//   - Wrap client errors with business context
package errors
