package rest

import (
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// SuccessRange is the inclusive range of status codes treated as success by
// the Of factory. Pass it explicitly; there is no process-wide setting.
type SuccessRange struct {
	Min int
	Max int
}

// DefaultSuccessRange covers the standard 2xx family.
var DefaultSuccessRange = SuccessRange{Min: 200, Max: 299}

func (r SuccessRange) Contains(code int) bool {
	return code >= r.Min && code <= r.Max
}

// Call is the raw view of a completed transport call. Raw and ErrorBody are
// borrowed from the transport layer: the transport owns them and ErrorBody
// may be consumed at most once.
type Call[T any] struct {
	StatusCode int
	Headers    http.Header
	Raw        *http.Response
	Body       T
	HasBody    bool
	ErrorBody  io.ReadCloser
}

type kind uint8

const (
	kindSuccess kind = iota + 1
	kindError
	kindException
)

// Result is the outcome of a network call. Exactly one of the three variants
// (success, server-reported error, transport exception) is active; the
// variant is fixed at construction and a Result is never mutated afterwards.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	kind      kind
	status    StatusCode
	headers   http.Header
	raw       *http.Response
	data      T
	hasData   bool
	errorBody io.ReadCloser
	err       error
}

// Success wraps a completed call whose status fell inside the success range.
func Success[T any](call Call[T]) Result[T] {
	return Result[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		kind:      kindSuccess,
		status:    Classify(call.StatusCode),
		headers:   call.Headers,
		raw:       call.Raw,
		data:      call.Body,
		hasData:   call.HasBody,
	}
}

// Error wraps a completed call whose status fell outside the success range.
// The error body handle stays unread; consuming it is the caller's business
// and is valid at most once.
func Error[T any](call Call[T]) Result[T] {
	return Result[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		kind:      kindError,
		status:    Classify(call.StatusCode),
		headers:   call.Headers,
		raw:       call.Raw,
		errorBody: call.ErrorBody,
	}
}

// Exception wraps an error raised before the call completed, without
// invoking any transport call.
func Exception[T any](err error) Result[T] {
	return Result[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		kind:      kindException,
		err:       err,
	}
}

// Of runs action exactly once and converts its outcome into a Result:
// a completed call with a status inside rng becomes a success, any other
// completed call becomes an error, and a raised error becomes an exception.
// This factory is the only boundary where transport errors turn into data;
// beyond it the library never raises on its own.
func Of[T any](rng SuccessRange, action func() (Call[T], error)) Result[T] {
	call, err := action()
	if err != nil {
		return Exception[T](err)
	}
	if rng.Contains(call.StatusCode) {
		return Success(call)
	}
	return Error(call)
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

// CreatedAt time of construction (UTC)
func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) IsSuccess() bool {
	return r.kind == kindSuccess
}

func (r Result[T]) IsError() bool {
	return r.kind == kindError
}

func (r Result[T]) IsException() bool {
	return r.kind == kindException
}

// IsFailure reports whether the result is an error or an exception.
func (r Result[T]) IsFailure() bool {
	return r.kind == kindError || r.kind == kindException
}

// StatusCode is the classified status of a completed call. It is Unknown for
// exceptions and for codes outside the named table.
func (r Result[T]) StatusCode() StatusCode {
	return r.status
}

func (r Result[T]) Headers() http.Header {
	return r.headers
}

// Raw returns the transport response handle. It is borrowed from the
// transport layer; the Result claims no ownership of it.
func (r Result[T]) Raw() *http.Response {
	return r.raw
}

// Data returns the deserialized payload of a success. The zero value is
// returned when the body was absent; HasData tells the two apart.
func (r Result[T]) Data() T {
	return r.data
}

func (r Result[T]) HasData() bool {
	return r.hasData
}

// ErrorBody returns the unread error payload of an error result. It is a
// single-consumption handle owned by the transport; reading it twice is a
// caller error the library does not detect.
func (r Result[T]) ErrorBody() io.ReadCloser {
	return r.errorBody
}

func (r Result[T]) Err() error {
	return r.err
}

// Message is the description of the exception's underlying error, or empty
// for the other variants.
func (r Result[T]) Message() string {
	if r.err == nil {
		return ""
	}
	return r.err.Error()
}
