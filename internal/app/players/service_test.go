package players

import (
	"testing"

	"cricket-bingo-service/internal/domain/categories"
	domainplayers "cricket-bingo-service/internal/domain/players"
	"cricket-bingo-service/internal/store"
)

func TestServiceReads(t *testing.T) {
	st := store.NewMemoryStore()
	st.SetPlayers([]domainplayers.Player{{ID: "p1", Name: "One"}, {ID: "p2", Name: "Two"}})
	st.SetCategories([]categories.Category{{ID: "c1", Label: "Cell"}})

	svc := NewService(st)

	if got := svc.Players(); len(got) != 2 {
		t.Fatalf("Players = %d entries, want 2", len(got))
	}
	p, ok := svc.PlayerByID("p2")
	if !ok || p.Name != "Two" {
		t.Fatalf("PlayerByID = %+v ok=%v", p, ok)
	}
	if _, ok := svc.PlayerByID("ghost"); ok {
		t.Fatalf("unknown ID resolved")
	}

	if got := svc.Categories(); len(got) != 1 {
		t.Fatalf("Categories = %d entries, want 1", len(got))
	}
	c, ok := svc.CategoryByID("c1")
	if !ok || c.Label != "Cell" {
		t.Fatalf("CategoryByID = %+v ok=%v", c, ok)
	}
}
