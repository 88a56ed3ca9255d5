package carriers

import "github.com/tripboard/tripboard/src/common/types"

// Dedupe drops segments that repeat an already-seen physical run, first
// occurrence wins, original order preserved. A segment counts as a duplicate
// when any one of its identifying keys (thread uid, number, or title, each
// paired with the departure timestamp) has been seen before. The upstream may
// report the same run through different identifier fields depending on feed
// quality, so matching on a single dimension is enough.
func Dedupe(segments []types.RawSegment) []types.RawSegment {
	seen := make(map[string]struct{}, len(segments)*3)
	kept := make([]types.RawSegment, 0, len(segments))

	for _, segment := range segments {
		keys := dedupeKeys(segment)

		duplicate := false
		for _, key := range keys {
			if _, ok := seen[key]; ok {
				duplicate = true
				break
			}
		}
		if duplicate {
			continue
		}

		for _, key := range keys {
			seen[key] = struct{}{}
		}
		kept = append(kept, segment)
	}

	return kept
}

// dedupeKeys builds the tag-prefixed candidate keys for a segment. Keys are
// only produced for populated identifier fields so that two distinct runs
// with, say, no thread number never collide on an empty key.
func dedupeKeys(segment types.RawSegment) []string {
	keys := make([]string, 0, 3)
	if segment.Thread.UID != "" {
		keys = append(keys, "uid|"+segment.Thread.UID+"|"+segment.Departure)
	}
	if segment.Thread.Number != "" {
		keys = append(keys, "num|"+segment.Thread.Number+"|"+segment.Departure)
	}
	if segment.Thread.Title != "" {
		keys = append(keys, "title|"+segment.Thread.Title+"|"+segment.Departure)
	}
	return keys
}
