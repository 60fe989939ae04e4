package lyricbook

// Status is the lifecycle state of a song in a catalog run.
type Status int

// Song lifecycle states. Skipped, NotFound, Persisted and Failed are terminal.
const (
	StatusPending Status = iota
	StatusSkipped
	StatusResolved
	StatusNotFound
	StatusPersisted
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusSkipped:
		return "skipped"
	case StatusResolved:
		return "resolved"
	case StatusNotFound:
		return "not found"
	case StatusPersisted:
		return "persisted"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome records what happened to one song.
type Outcome struct {
	Song   Song
	Status Status

	// Path is the output file path. Set for every status.
	Path string

	// URL is the resolved lyrics page address, if any.
	URL string

	// Title, ContentHash and Bytes describe the persisted document.
	Title       string
	ContentHash string
	Bytes       int

	// Err is the fault that caused StatusFailed.
	Err error
}

// InManifest reports whether the outcome's file belongs in the manifest.
func (o Outcome) InManifest() bool {
	return o.Status == StatusPersisted || o.Status == StatusSkipped
}

// Manifest returns the paths of persisted and skipped outcomes in order.
func Manifest(outcomes []Outcome) []string {
	var paths []string
	for _, o := range outcomes {
		if o.InManifest() {
			paths = append(paths, o.Path)
		}
	}
	return paths
}
