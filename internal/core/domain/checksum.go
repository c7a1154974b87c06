package domain

// Metadata field names recorded per package in the metadata store.
const (
	FieldChecksumType = "checksum_type"
	FieldChecksumData = "checksum_data"
	FieldFromRepo     = "from_repo"
)

// ChecksumEntry is the checksum of a package file as recorded when it was installed.
type ChecksumEntry struct {
	Type string
	Data string
}

// ChecksumState tells the three lookup outcomes apart.
type ChecksumState uint8

const (
	// ChecksumAbsent means the store has no complete checksum for the package.
	ChecksumAbsent ChecksumState = iota
	// ChecksumPresent means both checksum fields were found.
	ChecksumPresent
	// ChecksumLookupFailed means the store could not be read.
	ChecksumLookupFailed
)

func (s ChecksumState) String() string {
	switch s {
	case ChecksumAbsent:
		return "absent"
	case ChecksumPresent:
		return "present"
	case ChecksumLookupFailed:
		return "lookup failed"
	default:
		return "unknown"
	}
}

// ChecksumResult is the outcome of a checksum lookup.
// Entry is set only when State is ChecksumPresent, Err only when it is ChecksumLookupFailed.
type ChecksumResult struct {
	State ChecksumState
	Entry ChecksumEntry
	Err   error
}

// ChecksumAbsentResult reports that no checksum is recorded.
func ChecksumAbsentResult() ChecksumResult {
	return ChecksumResult{State: ChecksumAbsent}
}

// ChecksumPresentResult reports a recorded checksum.
func ChecksumPresentResult(typ, data string) ChecksumResult {
	return ChecksumResult{
		State: ChecksumPresent,
		Entry: ChecksumEntry{Type: typ, Data: data},
	}
}

// ChecksumFailedResult reports that the lookup itself failed.
func ChecksumFailedResult(err error) ChecksumResult {
	return ChecksumResult{State: ChecksumLookupFailed, Err: err}
}

// ChecksumFromFields builds a result from a metadata record. The checksum is
// present only if both the type and the data field exist.
func ChecksumFromFields(fields map[string]string) ChecksumResult {
	typ, okType := fields[FieldChecksumType]
	data, okData := fields[FieldChecksumData]
	if !okType || !okData {
		return ChecksumAbsentResult()
	}
	return ChecksumPresentResult(typ, data)
}
