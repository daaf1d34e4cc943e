package foodb

import "context"

// Source supplies a food dataset from some backing store. Load returns the
// entries, a version string for the dataset revision, and an error when the
// store is unreachable or the data is unreadable. Structural validation is
// not the source's job; Build performs it on whatever Load returns.
type Source interface {
	Load(ctx context.Context) ([]Entry, string, error)
}

// Static is a Source backed by an in-memory slice, mainly for tests and
// embedded datasets.
type Static struct {
	Entries []Entry
	Version string
}

// Load returns a copy of the static entries.
func (s Static) Load(_ context.Context) ([]Entry, string, error) {
	out := make([]Entry, len(s.Entries))
	for i, e := range s.Entries {
		e.Aliases = append([]string(nil), e.Aliases...)
		out[i] = e
	}
	return out, s.Version, nil
}

// Open loads entries from src and builds a validated DB from them.
func Open(ctx context.Context, src Source, norm Normalizer) (*DB, error) {
	entries, version, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}
	return Build(entries, version, norm)
}
