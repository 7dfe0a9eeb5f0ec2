// Package hashing provides duplicate detection for game records.
package hashing

import (
	"hash/fnv"
	"strings"

	"github.com/lgbarn/chesscore-go/internal/chess"
)

// HashType specifies what to hash for duplicate detection.
type HashType int

const (
	// HashFinalPosition hashes the canonical key of the final position.
	HashFinalPosition HashType = iota
	// HashMoveSequence hashes the moves played.
	HashMoveSequence
)

// ParseHashType maps "position" and "moves" to their hash type.
func ParseHashType(name string) (HashType, bool) {
	switch name {
	case "position":
		return HashFinalPosition, true
	case "moves":
		return HashMoveSequence, true
	default:
		return HashFinalPosition, false
	}
}

// GameSignature stores identifying information about a game.
type GameSignature struct {
	// Hash of the final position or move sequence
	Hash uint64
	// PlyCount is the number of half-moves in the game
	PlyCount int
	// FinalKey is the canonical key of the final position
	FinalKey string
}

// DuplicateDetector tracks seen games. It is not safe for concurrent use.
type DuplicateDetector struct {
	hashTable      map[uint64][]GameSignature
	hashType       HashType
	useExactMatch  bool // also require equal ply counts
	duplicateCount int
}

// NewDuplicateDetector creates a new duplicate detector.
func NewDuplicateDetector(ht HashType, exactMatch bool) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]GameSignature),
		hashType:      ht,
		useExactMatch: exactMatch,
	}
}

// Signature builds the signature of a record under the detector's hash type.
func (d *DuplicateDetector) Signature(r *chess.GameRecord) GameSignature {
	key := CanonicalKey(r.FinalFEN())
	sig := GameSignature{PlyCount: r.PlyCount(), FinalKey: key}
	switch d.hashType {
	case HashMoveSequence:
		sig.Hash = hashMoveSequence(r)
	default:
		sig.Hash = hashString(key)
	}
	return sig
}

// CheckAndAdd checks if a game is a duplicate and adds it to the hash table.
// Returns true if the game is a duplicate.
func (d *DuplicateDetector) CheckAndAdd(r *chess.GameRecord) bool {
	sig := d.Signature(r)

	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return true
		}
	}

	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	return false
}

// signaturesMatch checks if two game signatures match.
func (d *DuplicateDetector) signaturesMatch(a, b GameSignature) bool {
	if a.Hash != b.Hash || a.FinalKey != b.FinalKey {
		return false
	}
	if d.useExactMatch && a.PlyCount != b.PlyCount {
		return false
	}
	return true
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// CanonicalKey returns the first four FEN fields: placement, side to move,
// castling rights and en passant target.
func CanonicalKey(fen string) string {
	fields := strings.Fields(fen)
	if len(fields) > 4 {
		fields = fields[:4]
	}
	return strings.Join(fields, " ")
}

func hashString(s string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(s)) //nolint:errcheck // hash.Hash never returns an error
	return h.Sum64()
}

// hashMoveSequence hashes the UCI text of every ply, separated by spaces.
func hashMoveSequence(r *chess.GameRecord) uint64 {
	h := fnv.New64a()
	for _, ply := range r.Plies {
		h.Write([]byte(ply.Move.UCI())) //nolint:errcheck // hash.Hash never returns an error
		h.Write([]byte{' '})            //nolint:errcheck // hash.Hash never returns an error
	}
	return h.Sum64()
}
