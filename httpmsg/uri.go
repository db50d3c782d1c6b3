package httpmsg

// PortAbsent is the sentinel URI.PortNumber value meaning no port was
// present in the URI, matching the source's use of a signed port field wide
// enough to hold both -1 and the full 0..65535 range.
const PortAbsent int32 = -1

// URI holds the parsed components of a request-target. At most one of the
// three forms applies at a time:
//   - asterisk-form: PathName == "*", every other field empty.
//   - origin-form: PathName set, SchemeName/UserInfo/HostName empty.
//   - absolute-form: SchemeName and HostName set.
type URI struct {
	SchemeName  string
	UserInfo    string
	HostName    string
	PortNumber  int32
	PathName    string
	QueryString string
	FragmentID  string
}

// NewURI returns a zero URI with PortNumber defaulted to PortAbsent.
func NewURI() URI {
	return URI{PortNumber: PortAbsent}
}
