package httpmsg

import "sort"

// StatusCode is an HTTP/1.1 response status code. Only the 45 codes in the
// catalog below are recognized; this is a closed enumeration like Method,
// not a generic integer range.
type StatusCode int

const (
	StatusContinue                      StatusCode = 100
	StatusSwitchingProtocol             StatusCode = 101
	StatusOK                            StatusCode = 200
	StatusCreated                       StatusCode = 201
	StatusAccepted                      StatusCode = 202
	StatusNonAuthoritativeInformation   StatusCode = 203
	StatusNoContent                     StatusCode = 204
	StatusResetContent                  StatusCode = 205
	StatusPartialContent                StatusCode = 206
	StatusMultipleChoices               StatusCode = 300
	StatusMovedPermanently              StatusCode = 301
	StatusFound                         StatusCode = 302
	StatusSeeOther                      StatusCode = 303
	StatusNotModified                   StatusCode = 304
	StatusTemporaryRedirect             StatusCode = 307
	StatusPermanentRedirect             StatusCode = 308
	StatusBadRequest                    StatusCode = 400
	StatusUnauthorized                  StatusCode = 401
	StatusForbidden                     StatusCode = 403
	StatusNotFound                      StatusCode = 404
	StatusMethodNotAllowed              StatusCode = 405
	StatusNotAcceptable                 StatusCode = 406
	StatusProxyAuthenticationRequired   StatusCode = 407
	StatusRequestTimeout                StatusCode = 408
	StatusConflict                      StatusCode = 409
	StatusGone                          StatusCode = 410
	StatusLengthRequired                StatusCode = 411
	StatusPreconditionFailed            StatusCode = 412
	StatusPayloadTooLarge               StatusCode = 413
	StatusURITooLong                    StatusCode = 414
	StatusUnsupportedMediaType          StatusCode = 415
	StatusRangeNotSatisfiable           StatusCode = 416
	StatusExpectationFailed             StatusCode = 417
	StatusUpgradeRequired               StatusCode = 426
	StatusPreconditionRequired          StatusCode = 428
	StatusTooManyRequests               StatusCode = 429
	StatusRequestHeaderFieldsTooLarge   StatusCode = 431
	StatusUnavailableForLegalReasons    StatusCode = 451
	StatusInternalServerError           StatusCode = 500
	StatusNotImplemented                StatusCode = 501
	StatusBadGateway                    StatusCode = 502
	StatusServiceUnavailable            StatusCode = 503
	StatusGatewayTimeout                StatusCode = 504
	StatusHTTPVersionNotSupported       StatusCode = 505
	StatusNetworkAuthenticationRequired StatusCode = 511
)

type statusEntry struct {
	code   StatusCode
	reason string
}

// statusCatalog is sorted by code ascending, matching the reference
// implementation's array so both DescribeStatus and ParseStatusCode can
// binary-search it.
var statusCatalog = [...]statusEntry{
	{StatusContinue, "Continue"},
	{StatusSwitchingProtocol, "Switching Protocol"},
	{StatusOK, "OK"},
	{StatusCreated, "Created"},
	{StatusAccepted, "Accepted"},
	{StatusNonAuthoritativeInformation, "Non-Authoritative Information"},
	{StatusNoContent, "No Content"},
	{StatusResetContent, "Reset Content"},
	{StatusPartialContent, "Partial Content"},
	{StatusMultipleChoices, "Multiple Choices"},
	{StatusMovedPermanently, "Moved Permanently"},
	{StatusFound, "Found"},
	{StatusSeeOther, "See Other"},
	{StatusNotModified, "Not Modified"},
	{StatusTemporaryRedirect, "Temporary Redirect"},
	{StatusPermanentRedirect, "Permanent Redirect"},
	{StatusBadRequest, "Bad Request"},
	{StatusUnauthorized, "Unauthorized"},
	{StatusForbidden, "Forbidden"},
	{StatusNotFound, "Not Found"},
	{StatusMethodNotAllowed, "Method Not Allowed"},
	{StatusNotAcceptable, "Not Acceptable"},
	{StatusProxyAuthenticationRequired, "Proxy Authentication Required"},
	{StatusRequestTimeout, "Request Timeout"},
	{StatusConflict, "Conflict"},
	{StatusGone, "Gone"},
	{StatusLengthRequired, "Length Required"},
	{StatusPreconditionFailed, "Precondition Failed"},
	{StatusPayloadTooLarge, "Payload Too Large"},
	{StatusURITooLong, "URI Too Long"},
	{StatusUnsupportedMediaType, "Unsupported Media Type"},
	{StatusRangeNotSatisfiable, "Range Not Satisfiable"},
	{StatusExpectationFailed, "Expectation Failed"},
	{StatusUpgradeRequired, "Upgrade Required"},
	{StatusPreconditionRequired, "Precondition Required"},
	{StatusTooManyRequests, "Too Many Requests"},
	{StatusRequestHeaderFieldsTooLarge, "Request Header Fields Too Large"},
	{StatusUnavailableForLegalReasons, "Unavailable For Legal Reasons"},
	{StatusInternalServerError, "Internal Server Error"},
	{StatusNotImplemented, "Not Implemented"},
	{StatusBadGateway, "Bad Gateway"},
	{StatusServiceUnavailable, "Service Unavailable"},
	{StatusGatewayTimeout, "Gateway Timeout"},
	{StatusHTTPVersionNotSupported, "HTTP Version Not Supported"},
	{StatusNetworkAuthenticationRequired, "Network Authentication Required"},
}

// DescribeStatus returns the reason phrase for code and true, or ("", false)
// if code isn't recognized.
func DescribeStatus(code StatusCode) (string, bool) {
	i := sort.Search(len(statusCatalog), func(i int) bool { return statusCatalog[i].code >= code })
	if i < len(statusCatalog) && statusCatalog[i].code == code {
		return statusCatalog[i].reason, true
	}
	return "", false
}

// ParseStatusCode validates a raw numeric status code against the catalog,
// returning ErrUnknownStatus if it isn't one of the 45 recognized codes.
func ParseStatusCode(raw int) (StatusCode, error) {
	code := StatusCode(raw)
	if _, ok := DescribeStatus(code); !ok {
		return 0, ErrUnknownStatus
	}
	return code, nil
}
