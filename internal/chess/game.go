package chess

// Ply is one executed half-move of a game.
type Ply struct {
	Move Move

	// SAN is the algebraic notation of the move in the position it was played from.
	SAN string

	// FEN is the position after the move.
	FEN string
}

// GameRecord is a finished or interrupted game: its tags, starting position,
// the plies played and the status reached.
type GameRecord struct {
	// Tags for this game (e.g., Event, White, Black, Result, FEN).
	Tags map[string]string

	// The FEN the game started from.
	StartFEN string

	// Plies in the order they were played.
	Plies []Ply

	// The status of the final position.
	Status Status

	// tagOrder remembers the order non-roster tags were added.
	tagOrder []string
}

// NewGameRecord creates an empty record starting from the given FEN.
func NewGameRecord(startFEN string) *GameRecord {
	return &GameRecord{
		Tags:     make(map[string]string),
		StartFEN: startFEN,
		Status:   InPlay,
	}
}

// GetTag returns a tag value, or empty string if not present.
func (r *GameRecord) GetTag(name string) string {
	return r.Tags[name]
}

// SetTag sets a tag value.
func (r *GameRecord) SetTag(name, value string) {
	r.ensureTags()
	if _, ok := r.Tags[name]; !ok {
		r.tagOrder = append(r.tagOrder, name)
	}
	r.Tags[name] = value
}

// HasTag returns true if the tag is present.
func (r *GameRecord) HasTag(name string) bool {
	_, ok := r.Tags[name]
	return ok
}

// ensureTags initializes the Tags map if it is nil.
func (r *GameRecord) ensureTags() {
	if r.Tags == nil {
		r.Tags = make(map[string]string)
	}
}

// White returns the White player name.
func (r *GameRecord) White() string {
	return r.GetTag(WhiteTag)
}

// Black returns the Black player name.
func (r *GameRecord) Black() string {
	return r.GetTag(BlackTag)
}

// Result returns the result token of the final status.
func (r *GameRecord) Result() string {
	return r.Status.Result()
}

// PlyCount returns the number of half-moves in the game.
func (r *GameRecord) PlyCount() int {
	return len(r.Plies)
}

// LastPly returns the last ply of the game and whether there was one.
func (r *GameRecord) LastPly() (Ply, bool) {
	if len(r.Plies) == 0 {
		return Ply{}, false
	}
	return r.Plies[len(r.Plies)-1], true
}

// FinalFEN returns the FEN after the last ply, or the starting FEN.
func (r *GameRecord) FinalFEN() string {
	if last, ok := r.LastPly(); ok {
		return last.FEN
	}
	return r.StartFEN
}

// AppendPly adds a ply to the end of the game.
func (r *GameRecord) AppendPly(ply Ply) {
	r.Plies = append(r.Plies, ply)
}
