package chess

import (
	"reflect"
	"testing"
)

func TestGameRecord_Tags(t *testing.T) {
	r := NewGameRecord("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	r.SetTag(TerminationTag, "normal")
	r.SetTag(FENTag, r.StartFEN)
	r.SetTag(WhiteTag, "random")
	r.SetTag(EventTag, "arena")
	r.SetTag(SetupTag, "1")

	want := []string{EventTag, WhiteTag, SetupTag, FENTag, TerminationTag}
	if got := r.OrderedTags(); !reflect.DeepEqual(got, want) {
		t.Errorf("OrderedTags() = %v; want %v", got, want)
	}
	if r.White() != "random" || r.Black() != "" {
		t.Errorf("White() = %q, Black() = %q", r.White(), r.Black())
	}
	if !r.HasTag(FENTag) || r.HasTag(DateTag) {
		t.Error("HasTag mismatch")
	}
}

func TestGameRecord_Plies(t *testing.T) {
	r := NewGameRecord("start")
	if _, ok := r.LastPly(); ok {
		t.Error("empty record has a last ply")
	}
	if r.FinalFEN() != "start" {
		t.Errorf("FinalFEN() = %q; want start", r.FinalFEN())
	}
	if r.Result() != "*" {
		t.Errorf("Result() = %q; want *", r.Result())
	}

	r.AppendPly(Ply{SAN: "e4", FEN: "after e4"})
	r.AppendPly(Ply{SAN: "e5", FEN: "after e5"})
	r.Status = BlackWins

	if r.PlyCount() != 2 {
		t.Errorf("PlyCount() = %d; want 2", r.PlyCount())
	}
	if last, _ := r.LastPly(); last.SAN != "e5" {
		t.Errorf("LastPly().SAN = %q", last.SAN)
	}
	if r.FinalFEN() != "after e5" || r.Result() != "0-1" {
		t.Errorf("FinalFEN() = %q, Result() = %q", r.FinalFEN(), r.Result())
	}
}

func TestIsSevenTagRosterTag(t *testing.T) {
	if !IsSevenTagRosterTag("Result") || IsSevenTagRosterTag("FEN") {
		t.Error("IsSevenTagRosterTag mismatch")
	}
}
