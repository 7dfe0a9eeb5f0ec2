package chess

// Tag names written in game records.
const (
	EventTag       = "Event"
	SiteTag        = "Site"
	DateTag        = "Date"
	RoundTag       = "Round"
	WhiteTag       = "White"
	BlackTag       = "Black"
	ResultTag      = "Result"
	SetupTag       = "SetUp"
	FENTag         = "FEN"
	PlyCountTag    = "PlyCount"
	TerminationTag = "Termination"
)

// SevenTagRoster contains the seven required PGN tags in order.
var SevenTagRoster = []string{
	EventTag,
	SiteTag,
	DateTag,
	RoundTag,
	WhiteTag,
	BlackTag,
	ResultTag,
}

// IsSevenTagRosterTag returns true if the tag is one of the seven required tags.
func IsSevenTagRosterTag(tag string) bool {
	for _, t := range SevenTagRoster {
		if t == tag {
			return true
		}
	}
	return false
}

// OrderedTags returns the record's tag names: the seven tag roster first,
// then SetUp and FEN, then any others in the order they were first set.
func (r *GameRecord) OrderedTags() []string {
	names := make([]string, 0, len(r.Tags))
	seen := make(map[string]bool, len(r.Tags))
	add := func(name string) {
		if _, ok := r.Tags[name]; ok && !seen[name] {
			names = append(names, name)
			seen[name] = true
		}
	}
	for _, name := range SevenTagRoster {
		add(name)
	}
	add(SetupTag)
	add(FENTag)
	for _, name := range r.tagOrder {
		add(name)
	}
	return names
}
