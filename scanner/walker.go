package scanner

type Kind int

const (
	HiddenDirectory Kind = iota
	HiddenFile
	PotentialFlag
)

func (k Kind) String() string {
	switch k {
	case HiddenDirectory:
		return "Hidden Directory"
	case HiddenFile:
		return "Hidden File"
	case PotentialFlag:
		return "Potential Flag"
	}
	return "Unknown"
}

// Tag is the short console label for the kind.
func (k Kind) Tag() string {
	switch k {
	case HiddenDirectory:
		return "[DIR]"
	case HiddenFile:
		return "[HIDDEN]"
	case PotentialFlag:
		return "[FLAG?]"
	}
	return "[?]"
}

// ScanResult is a single classified entry. Size is 0 for directories and
// for files whose size could not be read.
type ScanResult struct {
	Kind Kind
	Path string
	Size int64
}

func (r ScanResult) IsDir() bool {
	return r.Kind == HiddenDirectory
}
