package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chesscore-go/internal/chess"
)

// JSONGame represents a game record in JSON format.
type JSONGame struct {
	Tags       map[string]string `json:"tags"`
	Moves      []JSONMove        `json:"moves,omitempty"`
	Result     string            `json:"result"`
	Status     string            `json:"status"`
	PlyCount   int               `json:"plyCount"`
	InitialFEN string            `json:"initialFEN"`
	FinalFEN   string            `json:"finalFEN"`
}

// JSONMove represents one ply in JSON format.
type JSONMove struct {
	MoveNumber int    `json:"moveNumber,omitempty"`
	Color      string `json:"color"`
	SAN        string `json:"san"`
	UCI        string `json:"uci"`
	From       string `json:"from"`
	To         string `json:"to"`
	Kind       string `json:"kind,omitempty"`
	Captured   string `json:"captured,omitempty"`
	Promotion  string `json:"promotion,omitempty"`
	FEN        string `json:"fen"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// RecordToJSON converts a game record to its JSON form.
func RecordToJSON(r *chess.GameRecord) *JSONGame {
	jg := &JSONGame{
		Tags:       copyTags(r),
		Result:     r.Result(),
		Status:     r.Status.String(),
		PlyCount:   r.PlyCount(),
		InitialFEN: r.StartFEN,
		FinalFEN:   r.FinalFEN(),
	}

	moveNum, isWhite := startCounters(r.StartFEN)
	jg.Moves = make([]JSONMove, 0, len(r.Plies))
	for _, ply := range r.Plies {
		jm := JSONMove{
			Color: colorName(isWhite),
			SAN:   ply.SAN,
			UCI:   ply.Move.UCI(),
			From:  ply.Move.From.String(),
			To:    ply.Move.To.String(),
			FEN:   ply.FEN,
		}
		if isWhite {
			jm.MoveNumber = moveNum
		}
		if ply.Move.Kind != chess.QuietMove {
			jm.Kind = ply.Move.Kind.String()
		}
		if ply.Move.Captured != chess.NoPiece {
			jm.Captured = ply.Move.Captured.String()
		}
		if ply.Move.IsPromotion() {
			jm.Promotion = ply.Move.PromotionKind().String()
		}
		jg.Moves = append(jg.Moves, jm)

		if !isWhite {
			moveNum++
		}
		isWhite = !isWhite
	}
	return jg
}

// copyTags copies the record's tags and fills in the seven tag roster.
func copyTags(r *chess.GameRecord) map[string]string {
	result := make(map[string]string, len(r.Tags)+len(chess.SevenTagRoster))
	for k, v := range r.Tags {
		result[k] = v
	}
	for _, tag := range chess.SevenTagRoster {
		if _, ok := result[tag]; !ok {
			result[tag] = "?"
		}
	}
	result[chess.ResultTag] = r.Result()
	return result
}

func colorName(isWhite bool) string {
	if isWhite {
		return "white"
	}
	return "black"
}

// WriteJSON writes a single record as indented JSON.
func WriteJSON(w io.Writer, r *chess.GameRecord) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(RecordToJSON(r))
}
