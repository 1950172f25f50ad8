package rest

// StatusCode is a named HTTP status code. Codes outside the known table are
// represented by Unknown.
type StatusCode int

const (
	Unknown StatusCode = 0

	Continue           StatusCode = 100
	SwitchingProtocols StatusCode = 101
	Processing         StatusCode = 102
	EarlyHints         StatusCode = 103

	OK                          StatusCode = 200
	Created                     StatusCode = 201
	Accepted                    StatusCode = 202
	NonAuthoritativeInformation StatusCode = 203
	NoContent                   StatusCode = 204
	ResetContent                StatusCode = 205
	PartialContent              StatusCode = 206
	MultiStatus                 StatusCode = 207
	AlreadyReported             StatusCode = 208
	IMUsed                      StatusCode = 226

	MultipleChoices   StatusCode = 300
	MovedPermanently  StatusCode = 301
	Found             StatusCode = 302
	SeeOther          StatusCode = 303
	NotModified       StatusCode = 304
	UseProxy          StatusCode = 305
	TemporaryRedirect StatusCode = 307
	PermanentRedirect StatusCode = 308

	BadRequest                  StatusCode = 400
	Unauthorized                StatusCode = 401
	PaymentRequired             StatusCode = 402
	Forbidden                   StatusCode = 403
	NotFound                    StatusCode = 404
	MethodNotAllowed            StatusCode = 405
	NotAcceptable               StatusCode = 406
	ProxyAuthenticationRequired StatusCode = 407
	RequestTimeout              StatusCode = 408
	Conflict                    StatusCode = 409
	Gone                        StatusCode = 410
	LengthRequired              StatusCode = 411
	PreconditionFailed          StatusCode = 412
	PayloadTooLarge             StatusCode = 413
	URITooLong                  StatusCode = 414
	UnsupportedMediaType        StatusCode = 415
	RangeNotSatisfiable         StatusCode = 416
	ExpectationFailed           StatusCode = 417
	Teapot                      StatusCode = 418
	MisdirectedRequest          StatusCode = 421
	UnprocessableEntity         StatusCode = 422
	Locked                      StatusCode = 423
	FailedDependency            StatusCode = 424
	TooEarly                    StatusCode = 425
	UpgradeRequired             StatusCode = 426
	PreconditionRequired        StatusCode = 428
	TooManyRequests             StatusCode = 429
	RequestHeaderFieldsTooLarge StatusCode = 431
	UnavailableForLegalReasons  StatusCode = 451

	InternalServerError           StatusCode = 500
	NotImplemented                StatusCode = 501
	BadGateway                    StatusCode = 502
	ServiceUnavailable            StatusCode = 503
	GatewayTimeout                StatusCode = 504
	HTTPVersionNotSupported       StatusCode = 505
	VariantAlsoNegotiates         StatusCode = 506
	InsufficientStorage           StatusCode = 507
	LoopDetected                  StatusCode = 508
	NotExtended                   StatusCode = 510
	NetworkAuthenticationRequired StatusCode = 511
)

var statusNames = map[StatusCode]string{
	Continue:           "Continue",
	SwitchingProtocols: "SwitchingProtocols",
	Processing:         "Processing",
	EarlyHints:         "EarlyHints",

	OK:                          "OK",
	Created:                     "Created",
	Accepted:                    "Accepted",
	NonAuthoritativeInformation: "NonAuthoritativeInformation",
	NoContent:                   "NoContent",
	ResetContent:                "ResetContent",
	PartialContent:              "PartialContent",
	MultiStatus:                 "MultiStatus",
	AlreadyReported:             "AlreadyReported",
	IMUsed:                      "IMUsed",

	MultipleChoices:   "MultipleChoices",
	MovedPermanently:  "MovedPermanently",
	Found:             "Found",
	SeeOther:          "SeeOther",
	NotModified:       "NotModified",
	UseProxy:          "UseProxy",
	TemporaryRedirect: "TemporaryRedirect",
	PermanentRedirect: "PermanentRedirect",

	BadRequest:                  "BadRequest",
	Unauthorized:                "Unauthorized",
	PaymentRequired:             "PaymentRequired",
	Forbidden:                   "Forbidden",
	NotFound:                    "NotFound",
	MethodNotAllowed:            "MethodNotAllowed",
	NotAcceptable:               "NotAcceptable",
	ProxyAuthenticationRequired: "ProxyAuthenticationRequired",
	RequestTimeout:              "RequestTimeout",
	Conflict:                    "Conflict",
	Gone:                        "Gone",
	LengthRequired:              "LengthRequired",
	PreconditionFailed:          "PreconditionFailed",
	PayloadTooLarge:             "PayloadTooLarge",
	URITooLong:                  "URITooLong",
	UnsupportedMediaType:        "UnsupportedMediaType",
	RangeNotSatisfiable:         "RangeNotSatisfiable",
	ExpectationFailed:           "ExpectationFailed",
	Teapot:                      "Teapot",
	MisdirectedRequest:          "MisdirectedRequest",
	UnprocessableEntity:         "UnprocessableEntity",
	Locked:                      "Locked",
	FailedDependency:            "FailedDependency",
	TooEarly:                    "TooEarly",
	UpgradeRequired:             "UpgradeRequired",
	PreconditionRequired:        "PreconditionRequired",
	TooManyRequests:             "TooManyRequests",
	RequestHeaderFieldsTooLarge: "RequestHeaderFieldsTooLarge",
	UnavailableForLegalReasons:  "UnavailableForLegalReasons",

	InternalServerError:           "InternalServerError",
	NotImplemented:                "NotImplemented",
	BadGateway:                    "BadGateway",
	ServiceUnavailable:            "ServiceUnavailable",
	GatewayTimeout:                "GatewayTimeout",
	HTTPVersionNotSupported:       "HTTPVersionNotSupported",
	VariantAlsoNegotiates:         "VariantAlsoNegotiates",
	InsufficientStorage:           "InsufficientStorage",
	LoopDetected:                  "LoopDetected",
	NotExtended:                   "NotExtended",
	NetworkAuthenticationRequired: "NetworkAuthenticationRequired",
}

// Classify maps a raw numeric status code to its named StatusCode.
// It is total: codes outside the table map to Unknown.
func Classify(code int) StatusCode {
	if _, ok := statusNames[StatusCode(code)]; ok {
		return StatusCode(code)
	}
	return Unknown
}

func (s StatusCode) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "Unknown"
}
